package junit_test

import (
	"strings"

	"github.com/spotter-ci/spotter-cli/internal/errors"
	"github.com/spotter-ci/spotter-cli/internal/junit"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TestNames", func() {
	Context("with a report of three test cases where one failed", func() {
		fixture := `
			<?xml version="1.0" encoding="UTF-8"?>
			<testsuites>
				<testsuite name="spec.models" tests="3" failures="1">
					<testcase classname="spec.models.user.creation" name="creates a user" time="0.01"/>
					<testcase classname="spec.models.user.deletion" name="deletes a user" time="0.02">
						<failure message="expected user to be gone">stacktrace here</failure>
					</testcase>
					<testcase classname="spec.models.user.update" name="updates a user" time="0.01"/>
				</testsuite>
			</testsuites>
		`

		It("returns all class names in document order", func() {
			testNames, err := junit.TestNames(strings.NewReader(fixture), false)
			Expect(err).NotTo(HaveOccurred())
			Expect(testNames).To(Equal([]string{
				"spec.models.user.creation",
				"spec.models.user.deletion",
				"spec.models.user.update",
			}))
		})

		It("returns only the failed class name with failuresOnly", func() {
			testNames, err := junit.TestNames(strings.NewReader(fixture), true)
			Expect(err).NotTo(HaveOccurred())
			Expect(testNames).To(Equal([]string{"spec.models.user.deletion"}))
		})
	})

	Context("with test cases that errored instead of failed", func() {
		fixture := `
			<testsuites>
				<testsuite name="spec.api">
					<testcase classname="spec.api.login" name="logs in"/>
					<testcase classname="spec.api.logout" name="logs out">
						<error message="connection refused"/>
					</testcase>
				</testsuite>
			</testsuites>
		`

		It("counts them as failed", func() {
			testNames, err := junit.TestNames(strings.NewReader(fixture), true)
			Expect(err).NotTo(HaveOccurred())
			Expect(testNames).To(Equal([]string{"spec.api.logout"}))
		})
	})

	Context("with multiple test suites", func() {
		fixture := `
			<testsuites>
				<testsuite name="suite-one">
					<testcase classname="b.second" name="two"/>
					<testcase classname="a.first" name="one"/>
				</testsuite>
				<testsuite name="suite-two">
					<testcase classname="b.second" name="two"/>
				</testsuite>
			</testsuites>
		`

		It("preserves document order across suites and keeps duplicates", func() {
			testNames, err := junit.TestNames(strings.NewReader(fixture), false)
			Expect(err).NotTo(HaveOccurred())
			Expect(testNames).To(Equal([]string{"b.second", "a.first", "b.second"}))
		})
	})

	Context("with slightly malformed XML", func() {
		// An HTML entity, an unclosed `<br>`, and a missing end tag at the end of the document.
		fixture := `
			<testsuites>
				<testsuite name="spec.flaky">
					<testcase classname="spec.flaky.retry" name="retries">
						<failure message="expected&nbsp;success">got<br>failure</failure>
					</testcase>
				</testsuite>
		`

		It("still extracts the class names", func() {
			testNames, err := junit.TestNames(strings.NewReader(fixture), false)
			Expect(err).NotTo(HaveOccurred())
			Expect(testNames).To(Equal([]string{"spec.flaky.retry"}))
		})
	})

	Context("with a document that is not a JUnit report", func() {
		It("returns an InputError", func() {
			_, err := junit.TestNames(strings.NewReader(`{ "tests": [] }`), false)
			Expect(err).To(HaveOccurred())

			_, ok := errors.AsInputError(err)
			Expect(ok).To(BeTrue())
		})
	})

	Context("with an empty report", func() {
		It("returns no test names", func() {
			testNames, err := junit.TestNames(strings.NewReader(`<testsuites></testsuites>`), false)
			Expect(err).NotTo(HaveOccurred())
			Expect(testNames).To(BeEmpty())
		})
	})
})
