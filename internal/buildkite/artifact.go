package buildkite

import "github.com/google/uuid"

// Artifact is a single file that a build job uploaded, as returned by the Buildkite API. The download URL does not
// serve the file contents directly; see `Client.ResolveStorageLocation`.
type Artifact struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	Path        string    `json:"path"`
	Filename    string    `json:"filename"`
	State       string    `json:"state"`
	DownloadURL string    `json:"download_url"`
	FileSize    int64     `json:"file_size"`
}
