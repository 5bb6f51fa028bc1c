package buildkite_test

import (
	"context"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/spotter-ci/spotter-cli/internal/buildkite"
	"github.com/spotter-ci/spotter-cli/internal/errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ResolveStorageLocation", func() {
	var (
		apiClient        buildkite.Client
		mockRoundTripper func(*http.Request) (*http.Response, error)
		artifact         buildkite.Artifact
	)

	JustBeforeEach(func() {
		apiClientConfig := buildkite.ClientConfig{Log: zap.NewNop().Sugar()}
		apiClient = buildkite.Client{ClientConfig: apiClientConfig, RoundTrip: mockRoundTripper}
	})

	BeforeEach(func() {
		artifact = buildkite.Artifact{
			Path:        "tmp/junit.xml",
			DownloadURL: "https://api.buildkite.com/v2/artifacts/0eca4616/download",
		}
	})

	Context("when the API answers with a storage location", func() {
		BeforeEach(func() {
			mockRoundTripper = func(req *http.Request) (*http.Response, error) {
				var resp http.Response

				Expect(req.Method).To(Equal(http.MethodGet))
				Expect(req.URL.String()).To(Equal(artifact.DownloadURL))

				resp.Body = io.NopCloser(strings.NewReader(
					`{ "url": "https://storage.example.com/bucket-name/junit.xml?signature=abc" }`,
				))
				resp.StatusCode = 302

				return &resp, nil
			}
		})

		It("returns the parsed location", func() {
			location, err := apiClient.ResolveStorageLocation(context.Background(), artifact)
			Expect(err).NotTo(HaveOccurred())
			Expect(location.Host).To(Equal("storage.example.com"))
			Expect(location.Path).To(Equal("/bucket-name/junit.xml"))
		})
	})

	Context("when the storage location is missing from the response", func() {
		BeforeEach(func() {
			mockRoundTripper = func(req *http.Request) (*http.Response, error) {
				var resp http.Response
				resp.Body = io.NopCloser(strings.NewReader(`{}`))
				resp.StatusCode = 200
				return &resp, nil
			}
		})

		It("returns a StorageResolutionError", func() {
			_, err := apiClient.ResolveStorageLocation(context.Background(), artifact)
			Expect(err).To(HaveOccurred())

			_, ok := errors.AsStorageResolutionError(err)
			Expect(ok).To(BeTrue())
		})
	})

	Context("when the API returns an error status", func() {
		BeforeEach(func() {
			mockRoundTripper = func(req *http.Request) (*http.Response, error) {
				var resp http.Response
				resp.Body = io.NopCloser(strings.NewReader(`{ "message": "forbidden" }`))
				resp.StatusCode = 403
				return &resp, nil
			}
		})

		It("returns a StorageResolutionError", func() {
			_, err := apiClient.ResolveStorageLocation(context.Background(), artifact)
			Expect(err).To(HaveOccurred())

			_, ok := errors.AsStorageResolutionError(err)
			Expect(ok).To(BeTrue())
		})
	})

	Context("when the request itself fails", func() {
		BeforeEach(func() {
			mockRoundTripper = func(req *http.Request) (*http.Response, error) {
				return nil, errors.NewSystemError("connection refused")
			}
		})

		It("returns a StorageResolutionError", func() {
			_, err := apiClient.ResolveStorageLocation(context.Background(), artifact)
			Expect(err).To(HaveOccurred())

			_, ok := errors.AsStorageResolutionError(err)
			Expect(ok).To(BeTrue())
		})
	})
})
