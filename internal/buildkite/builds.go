package buildkite

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spotter-ci/spotter-cli/internal/errors"
)

// BuildForCommit looks up the most recent build of a pipeline for a specific commit. All failure modes collapse into
// a BuildNotFoundError - from the caller's point of view there is no actionable difference between a failed request,
// an empty listing, or an unexpected response shape.
func (c Client) BuildForCommit(ctx context.Context, organizationSlug string, pipelineSlug string, commitSha string,
) (BuildReference, error) {
	endpoint := fmt.Sprintf("/v2/organizations/%s/pipelines/%s/builds/", organizationSlug, pipelineSlug)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return BuildReference{}, errors.NewInternalError("unable to construct HTTP request: %s", err)
	}

	queryValues := req.URL.Query()
	queryValues.Add("commit", commitSha)
	req.URL.RawQuery = queryValues.Encode()

	resp, err := c.RoundTrip(req)
	if err != nil {
		return BuildReference{}, errors.NewBuildNotFoundError("no build found for commit %q: %s", commitSha, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return BuildReference{}, errors.NewBuildNotFoundError(
			"no build found for commit %q. Endpoint was %q, Status Code %d",
			commitSha,
			endpoint,
			resp.StatusCode,
		)
	}

	respBody := []struct {
		Number json.Number `json:"number"`
	}{}

	if err := json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return BuildReference{}, errors.NewBuildNotFoundError(
			"no build found for commit %q: unable to parse the response body: %s",
			commitSha,
			err,
		)
	}

	if len(respBody) == 0 {
		return BuildReference{}, errors.NewBuildNotFoundError(
			"no build found for commit %q on pipeline %q",
			commitSha,
			pipelineSlug,
		)
	}

	return BuildReference{
		OrganizationSlug: organizationSlug,
		PipelineSlug:     pipelineSlug,
		Number:           respBody[0].Number.String(),
	}, nil
}
