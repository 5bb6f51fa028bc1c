package cli_test

import (
	"bytes"
	"context"

	"github.com/bradleyjkemp/cupaloy"
	"github.com/google/uuid"
	"go.uber.org/zap/zaptest"

	"github.com/spotter-ci/spotter-cli/internal/buildkite"
	"github.com/spotter-ci/spotter-cli/internal/cli"
	"github.com/spotter-ci/spotter-cli/internal/errors"
	"github.com/spotter-ci/spotter-cli/internal/mocks"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const ordersReport = `<?xml version="1.0" encoding="UTF-8"?>
<testsuites>
  <testsuite name="order-service" tests="3" failures="1">
    <testcase classname="orders.CheckoutTest" name="completes a purchase" />
    <testcase classname="orders.RefundTest" name="rejects stale refunds">
      <failure message="expected 422, got 500" />
    </testcase>
    <testcase classname="orders.CartTest" name="merges guest carts" />
  </testsuite>
</testsuites>`

const billingReport = `<?xml version="1.0" encoding="UTF-8"?>
<testsuites>
  <testsuite name="billing-service" tests="2" failures="0">
    <testcase classname="billing.InvoiceTest" name="emits an invoice" />
    <testcase classname="billing.LedgerTest" name="balances the ledger" />
  </testsuite>
</testsuites>`

var _ = Describe("ListTests", func() {
	var (
		ctx        context.Context
		err        error
		listConfig cli.ListTestsConfig
		output     *bytes.Buffer
		service    cli.Service

		fetchedKeys   []string
		refreshedKeys []string
		listedBuilds  []string
	)

	BeforeEach(func() {
		ctx = context.Background()
		err = nil
		output = new(bytes.Buffer)
		fetchedKeys = nil
		refreshedKeys = nil
		listedBuilds = nil

		service = cli.Service{
			API:        new(mocks.API),
			Cache:      new(mocks.ResultCache),
			Contents:   new(mocks.ArtifactContentSource),
			FileSystem: new(mocks.FileSystem),
			Log:        zaptest.NewLogger(GinkgoT()).Sugar(),
			Output:     output,
		}

		listConfig = cli.ListTestsConfig{
			ArtifactName: "junit.xml",
			BuildURL:     "https://buildkite.com/acme-inc/order-pipeline/builds/4242",
			Cache:        true,
			Sort:         true,
		}

		artifacts := []buildkite.Artifact{
			{ID: uuid.New(), Filename: "junit.xml", Path: "order-service/junit.xml", State: "finished"},
			{ID: uuid.New(), Filename: "coverage.xml", Path: "coverage.xml", State: "finished"},
			{ID: uuid.New(), Filename: "junit.xml", Path: "billing-service/junit.xml", State: "finished"},
		}

		service.API.(*mocks.API).MockListArtifacts = func(
			_ context.Context,
			ref buildkite.BuildReference,
		) ([]buildkite.Artifact, error) {
			listedBuilds = append(listedBuilds, ref.String())
			return artifacts, nil
		}

		service.Contents.(*mocks.ArtifactContentSource).MockArtifactContents = func(
			_ context.Context,
			artifact buildkite.Artifact,
		) ([]byte, error) {
			switch artifact.Path {
			case "order-service/junit.xml":
				return []byte(ordersReport), nil
			case "billing-service/junit.xml":
				return []byte(billingReport), nil
			default:
				return nil, errors.NewInternalError("unexpected artifact %q", artifact.Path)
			}
		}

		mockCache := service.Cache.(*mocks.ResultCache)
		mockCache.MockFetch = func(key string, producer func() ([]string, error)) ([]string, error) {
			fetchedKeys = append(fetchedKeys, key)
			return producer()
		}
		mockCache.MockRefresh = func(key string, producer func() ([]string, error)) ([]string, error) {
			refreshedKeys = append(refreshedKeys, key)
			return producer()
		}
	})

	JustBeforeEach(func() {
		err = service.ListTests(ctx, listConfig)
	})

	Context("under expected conditions", func() {
		It("doesn't return an error", func() {
			Expect(err).ToNot(HaveOccurred())
		})

		It("prints the test names in sorted order", func() {
			Expect(output.String()).To(Equal(
				"billing.InvoiceTest\nbilling.LedgerTest\norders.CartTest\norders.CheckoutTest\norders.RefundTest\n",
			))
		})

		It("keys the cache by build reference", func() {
			Expect(fetchedKeys).To(Equal([]string{"acme-inc/order-pipeline/4242"}))
			Expect(refreshedKeys).To(BeEmpty())
		})

		It("queries the artifact listing once", func() {
			Expect(listedBuilds).To(Equal([]string{"acme-inc/order-pipeline/4242"}))
		})

		It("renders a stable listing", func() {
			cupaloy.SnapshotT(GinkgoT(), output.String())
		})
	})

	Context("with failures only", func() {
		BeforeEach(func() {
			listConfig.FailuresOnly = true
		})

		It("doesn't return an error", func() {
			Expect(err).ToNot(HaveOccurred())
		})

		It("prints only the names of failed tests", func() {
			Expect(output.String()).To(Equal("orders.RefundTest\n"))
		})
	})

	Context("with sorting disabled", func() {
		BeforeEach(func() {
			listConfig.Sort = false
		})

		It("prints the test names in document order", func() {
			Expect(output.String()).To(Equal(
				"orders.CheckoutTest\norders.RefundTest\norders.CartTest\nbilling.InvoiceTest\nbilling.LedgerTest\n",
			))
		})
	})

	Context("with caching disabled", func() {
		BeforeEach(func() {
			listConfig.Cache = false
		})

		It("refreshes the cache instead of reading through it", func() {
			Expect(refreshedKeys).To(Equal([]string{"acme-inc/order-pipeline/4242"}))
			Expect(fetchedKeys).To(BeEmpty())
		})

		It("still prints the full listing", func() {
			Expect(output.String()).To(Equal(
				"billing.InvoiceTest\nbilling.LedgerTest\norders.CartTest\norders.CheckoutTest\norders.RefundTest\n",
			))
		})
	})

	Context("with previously cached documents", func() {
		BeforeEach(func() {
			service.Cache.(*mocks.ResultCache).MockFetch = func(
				key string,
				_ func() ([]string, error),
			) ([]string, error) {
				fetchedKeys = append(fetchedKeys, key)
				return []string{billingReport}, nil
			}
		})

		It("doesn't query the API", func() {
			Expect(listedBuilds).To(BeEmpty())
		})

		It("prints the test names from the cached documents", func() {
			Expect(output.String()).To(Equal("billing.InvoiceTest\nbilling.LedgerTest\n"))
		})
	})

	Context("with a malformed build URL", func() {
		BeforeEach(func() {
			listConfig.BuildURL = "https://buildkite.com/acme-inc/order-pipeline"
		})

		It("returns a malformed reference error", func() {
			Expect(err).To(HaveOccurred())

			_, ok := errors.AsMalformedReferenceError(err)
			Expect(ok).To(BeTrue(), "Error is a malformed reference error")
		})

		It("doesn't write any output", func() {
			Expect(output.Len()).To(BeZero())
		})
	})

	Context("without a build URL", func() {
		BeforeEach(func() {
			listConfig.BuildURL = ""
		})

		It("returns a configuration error", func() {
			Expect(err).To(HaveOccurred())

			_, ok := errors.AsConfigurationError(err)
			Expect(ok).To(BeTrue(), "Error is a configuration error")
		})
	})

	Context("when no artifacts match the configured name", func() {
		BeforeEach(func() {
			listConfig.ArtifactName = "missing.xml"
		})

		It("returns a no-artifacts-found error", func() {
			Expect(err).To(HaveOccurred())

			_, ok := errors.AsNoArtifactsFoundError(err)
			Expect(ok).To(BeTrue(), "Error is a no-artifacts-found error")
			Expect(err.Error()).To(ContainSubstring(`no artifacts named "missing.xml"`))
		})
	})

	Context("when one artifact fetch fails", func() {
		BeforeEach(func() {
			service.Contents.(*mocks.ArtifactContentSource).MockArtifactContents = func(
				_ context.Context,
				artifact buildkite.Artifact,
			) ([]byte, error) {
				if artifact.Path == "order-service/junit.xml" {
					return []byte(ordersReport), nil
				}

				return nil, errors.NewBlobFetchError("gsutil", "gsutil exited with status 1")
			}
		})

		It("returns the fetch error", func() {
			Expect(err).To(HaveOccurred())

			_, ok := errors.AsBlobFetchError(err)
			Expect(ok).To(BeTrue(), "Error is a blob fetch error")
		})

		It("doesn't write any output", func() {
			Expect(output.Len()).To(BeZero())
		})
	})

	Context("when an artifact holds no parseable XML", func() {
		BeforeEach(func() {
			service.Contents.(*mocks.ArtifactContentSource).MockArtifactContents = func(
				_ context.Context,
				_ buildkite.Artifact,
			) ([]byte, error) {
				return []byte("this is not XML"), nil
			}
		})

		It("returns an input error", func() {
			Expect(err).To(HaveOccurred())

			_, ok := errors.AsInputError(err)
			Expect(ok).To(BeTrue(), "Error is an input error")
		})

		It("doesn't write any output", func() {
			Expect(output.Len()).To(BeZero())
		})
	})
})
