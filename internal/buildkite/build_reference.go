package buildkite

import (
	"fmt"
	"net/url"

	"github.com/spotter-ci/spotter-cli/internal/errors"
)

// BuildReference identifies a single build of a pipeline on Buildkite.
type BuildReference struct {
	OrganizationSlug string
	PipelineSlug     string
	Number           string
}

// String renders the reference in its canonical `organization/pipeline/number` form.
func (r BuildReference) String() string {
	return fmt.Sprintf("%s/%s/%s", r.OrganizationSlug, r.PipelineSlug, r.Number)
}

// ParseBuildURL extracts a build reference from a URL as shown in the browser, for example
// `https://buildkite.com/my-org/my-pipeline/builds/123`. Only the path is inspected; query parameters and fragments
// (such as the job anchors that Buildkite appends) are ignored.
func ParseBuildURL(buildURL string) (BuildReference, error) {
	parsedURL, err := url.Parse(buildURL)
	if err != nil {
		return BuildReference{}, errors.NewMalformedReferenceError("unable to parse the build URL %q: %s", buildURL, err)
	}

	matches := buildPathRegexp.FindStringSubmatch(parsedURL.Path)
	if matches == nil {
		return BuildReference{}, errors.NewMalformedReferenceError(
			"%q does not look like a build URL. Expected a path of the form '/<organization>/<pipeline>/builds/<number>'",
			buildURL,
		)
	}

	return BuildReference{
		OrganizationSlug: matches[1],
		PipelineSlug:     matches[2],
		Number:           matches[3],
	}, nil
}
