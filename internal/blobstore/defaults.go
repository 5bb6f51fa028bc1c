package blobstore

const (
	defaultTool = "gsutil"

	// maxArtifactSize bounds how much of an artifact is held in memory. Anything larger than this is almost
	// certainly not a JUnit report.
	maxArtifactSize = 4 * 1024 * 1024
)
