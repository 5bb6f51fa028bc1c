package helpers

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/onsi/gomega"
)

// ReadEnvFromFile parses an env file into a map. The file is sourced through a shell so that quotations, comments,
// and variable references all behave as expected.
func ReadEnvFromFile(fileName string) map[string]string {
	// #nosec G204 -- test where we control the filename
	cmd := exec.Command("env", "-i", "bash", "-c", fmt.Sprintf("source %s && env", fileName))
	output, err := cmd.Output()

	gomega.Expect(err).ToNot(gomega.HaveOccurred())

	readEnv := map[string]string{}
	for _, line := range strings.Split(string(output), "\n") {
		fields := strings.SplitN(line, "=", 2)
		if fields[0] == "_" || fields[0] == "SHLVL" || fields[0] == "PWD" || len(fields) != 2 {
			continue
		}
		readEnv[fields[0]] = fields[1]
	}
	return readEnv
}
