// Package junit extracts test case identifiers from JUnit XML reports. It understands just enough of the format to
// answer which tests ran & which of them failed - everything else in a report is ignored.
package junit

import (
	"encoding/xml"
	"io"

	"github.com/spotter-ci/spotter-cli/internal/errors"
)

type jUnitReport struct {
	XMLName   xml.Name        `xml:"testsuites"`
	TestCases []jUnitTestCase `xml:"testsuite>testcase"`
}

type jUnitTestCase struct {
	ClassName string    `xml:"classname,attr"`
	Error     *struct{} `xml:"error"`
	Failure   *struct{} `xml:"failure"`
}

// TestNames returns the `classname` attributes of all test cases in a JUnit report, in document order. Duplicates are
// preserved; a test that ran in multiple suites appears multiple times. With `failuresOnly`, the listing is restricted
// to test cases that carry a `failure` child - or an `error` child, which reporters emit for tests that could not run
// at all.
//
// CI tools are not always careful about producing well-formed XML, so the decoder runs in its lenient mode: missing
// end tags, HTML-style entities & unclosed HTML void elements do not abort the extraction.
func TestNames(content io.Reader, failuresOnly bool) ([]string, error) {
	decoder := xml.NewDecoder(content)
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose
	decoder.Entity = xml.HTMLEntity

	var report jUnitReport
	if err := decoder.Decode(&report); err != nil {
		return nil, errors.NewInputError("unable to parse document as XML: %s", err)
	}

	testNames := make([]string, 0, len(report.TestCases))

	for _, testCase := range report.TestCases {
		if failuresOnly && testCase.Failure == nil && testCase.Error == nil {
			continue
		}

		testNames = append(testNames, testCase.ClassName)
	}

	return testNames, nil
}
