package buildkite

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/spotter-ci/spotter-cli/internal/errors"
)

// ResolveStorageLocation turns an artifact record into the location of its contents on the backing blob storage.
// The artifact download endpoint does not serve the file itself - it answers with a short-lived pointer to the
// storage system that holds it. The location expires quickly & must never be cached.
func (c Client) ResolveStorageLocation(ctx context.Context, artifact Artifact) (*url.URL, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, artifact.DownloadURL, nil)
	if err != nil {
		return nil, errors.NewInternalError("unable to construct HTTP request: %s", err)
	}

	resp, err := c.RoundTrip(req)
	if err != nil {
		return nil, errors.NewStorageResolutionError("unable to resolve the storage location of %q: %s", artifact.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, errors.NewStorageResolutionError(
			"unable to resolve the storage location of %q. Endpoint was %q, Status Code %d",
			artifact.Path,
			artifact.DownloadURL,
			resp.StatusCode,
		)
	}

	respBody := struct {
		URL string `json:"url"`
	}{}

	if err := json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return nil, errors.NewStorageResolutionError(
			"unable to resolve the storage location of %q: unable to parse the response body: %s",
			artifact.Path,
			err,
		)
	}

	if respBody.URL == "" {
		return nil, errors.NewStorageResolutionError(
			"the API response for %q did not include a storage location",
			artifact.Path,
		)
	}

	storageLocation, err := url.Parse(respBody.URL)
	if err != nil {
		return nil, errors.NewStorageResolutionError("unable to parse the storage location %q: %s", respBody.URL, err)
	}

	return storageLocation, nil
}
