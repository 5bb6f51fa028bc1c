package buildkite

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/spotter-ci/spotter-cli/internal/errors"
)

// ListArtifacts returns all artifacts that were uploaded for a specific build, across all jobs. The Buildkite API
// paginates this listing; the client follows the `Link` headers until the last page was received.
func (c Client) ListArtifacts(ctx context.Context, ref BuildReference) ([]Artifact, error) {
	endpoint := fmt.Sprintf(
		"/v2/organizations/%s/pipelines/%s/builds/%s/artifacts",
		ref.OrganizationSlug,
		ref.PipelineSlug,
		ref.Number,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewInternalError("unable to construct HTTP request: %s", err)
	}

	queryValues := req.URL.Query()
	queryValues.Add("per_page", strconv.Itoa(artifactsPerPage))
	req.URL.RawQuery = queryValues.Encode()

	var artifacts []Artifact

	// Pagination is strictly sequential - the next page's URL is only known once the previous page was received.
	for {
		page, nextPage, err := c.artifactsPage(req, endpoint)
		if err != nil {
			return nil, err
		}

		artifacts = append(artifacts, page...)

		if nextPage == "" {
			break
		}

		req, err = http.NewRequestWithContext(ctx, http.MethodGet, nextPage, nil)
		if err != nil {
			return nil, errors.NewInternalError("unable to construct HTTP request: %s", err)
		}
	}

	return artifacts, nil
}

// artifactsPage retrieves one page of an artifact listing. Alongside the page it returns the URL of the next page,
// or an empty string on the last one.
func (c Client) artifactsPage(req *http.Request, endpoint string) ([]Artifact, string, error) {
	resp, err := c.RoundTrip(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, "", errors.NewInternalError(
			"API backend encountered an error. Endpoint was %q, Status Code %d",
			endpoint,
			resp.StatusCode,
		)
	}

	var page []Artifact
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, "", errors.NewInternalError(
			"unable to parse the response body. Endpoint was %q, Content-Type %q. Original Error: %s",
			endpoint,
			resp.Header.Get(headerContentType),
			err,
		)
	}

	return page, nextPageURL(resp), nil
}

// NamedArtifacts filters an artifact listing down to the artifacts whose file name matches exactly. File names are
// case-sensitive; `junit.XML` does not match `junit.xml`. An empty result is an error - it usually points at a
// mis-configured artifact upload step, not at a build without test results.
func NamedArtifacts(artifacts []Artifact, filename string) ([]Artifact, error) {
	named := make([]Artifact, 0, len(artifacts))

	for _, artifact := range artifacts {
		if artifact.Filename == filename {
			named = append(named, artifact)
		}
	}

	if len(named) == 0 {
		return nil, errors.NewNoArtifactsFoundError("no artifacts named %q were uploaded for this build", filename)
	}

	return named, nil
}

// nextPageURL extracts the URL of the next page from a response's `Link` header. It returns an empty string on the
// last page.
func nextPageURL(resp *http.Response) string {
	for _, link := range resp.Header.Values(headerLink) {
		if matches := nextPageLinkRegexp.FindStringSubmatch(link); matches != nil {
			return matches[1]
		}
	}

	return ""
}
