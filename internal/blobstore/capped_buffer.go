package blobstore

import (
	"bytes"

	"github.com/spotter-ci/spotter-cli/internal/errors"
)

// cappedBuffer is an in-memory writer that refuses to grow past a fixed number of bytes. The external fetch tool
// writes artifact contents into it; exceeding the cap aborts the copy with an ArtifactTooLargeError.
type cappedBuffer struct {
	buf      *bytes.Buffer
	capacity int
	err      error
}

func newCappedBuffer(capacity int) *cappedBuffer {
	return &cappedBuffer{buf: new(bytes.Buffer), capacity: capacity}
}

func (c *cappedBuffer) Write(p []byte) (int, error) {
	if c.buf.Len()+len(p) > c.capacity {
		c.err = errors.NewArtifactTooLargeError(
			"the artifact is larger than the maximum supported size of %d bytes", c.capacity,
		)

		return 0, c.err
	}

	return c.buf.Write(p)
}

func (c *cappedBuffer) Bytes() []byte {
	return c.buf.Bytes()
}

// Err returns the error that aborted an earlier write, if any.
func (c *cappedBuffer) Err() error {
	return c.err
}
