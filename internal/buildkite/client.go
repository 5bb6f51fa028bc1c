// Package buildkite holds the API client for Buildkite's REST API & supporting types. Overall, this should be a
// fairly transparent package, mapping HTTP calls to Go methods - however some endpoints are a bit more complex &
// require multiple calls back-and forth.
package buildkite

import (
	"fmt"
	"net/http"
	"net/http/httputil"

	"github.com/spotter-ci/spotter-cli/internal/errors"
)

// Client is the main client for the Buildkite REST API.
type Client struct {
	ClientConfig
	RoundTrip func(*http.Request) (*http.Response, error)
}

// NewClient is the preferred constructor for the API client. It makes sure that the configuration is valid & necessary
// defaults are applied.
func NewClient(cfg ClientConfig) (Client, error) {
	cfg = cfg.WithDefaults()

	if err := cfg.Validate(); err != nil {
		return Client{}, err
	}

	// The artifact download endpoint answers with a redirect that only works in a browser session. We always want
	// the immediate response, never the redirect target.
	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	roundTrip := func(req *http.Request) (*http.Response, error) {
		// Every request this client performs targets the configured API host - including the absolute URLs
		// taken from `Link` headers or artifact records. Pinning scheme & host here keeps the access token
		// from being sent anywhere else.
		req.URL.Scheme = "https"
		if cfg.Insecure {
			req.URL.Scheme = "http"
		}

		req.URL.Host = cfg.Host
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", cfg.AccessToken))

		if cfg.Debug {
			hasBody := req.Body != nil
			dump, _ := httputil.DumpRequest(req, hasBody)
			sanitizedDump := bearerTokenRegexp.ReplaceAll(dump, []byte("<redacted>"))
			cfg.Log.Debugf("Executing following HTTP request:\n\n%s\n", sanitizedDump)
		}

		resp, err := client.Do(req)
		if err != nil {
			return resp, errors.NewSystemError("unable to perform HTTP request to %q: %s", req.URL, err)
		}

		if cfg.Debug {
			dump, _ := httputil.DumpResponse(resp, true)
			sanitizedDump := setCookieHeaderRegexp.ReplaceAll(dump, []byte("Set-Cookie: <redacted>"))
			cfg.Log.Debugf("Received following response:\n\n%s\n", sanitizedDump)
		}

		return resp, nil
	}

	return Client{cfg, roundTrip}, nil
}
