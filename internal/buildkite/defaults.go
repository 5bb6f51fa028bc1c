package buildkite

import "regexp"

const (
	defaultHost = "api.buildkite.com"

	artifactsPerPage = 100

	headerContentType = "Content-Type"
	headerLink        = "Link"
)

var (
	buildPathRegexp    = regexp.MustCompile(`^/([^/]+)/([^/]+)/builds/([0-9]+)/?$`)
	nextPageLinkRegexp = regexp.MustCompile(`<([^>]+)>;\s*rel="next"`)

	bearerTokenRegexp     = regexp.MustCompile(`Bearer.*`)
	setCookieHeaderRegexp = regexp.MustCompile(`Set-Cookie:.*`)
)
