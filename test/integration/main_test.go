package integration_test

import (
	"fmt"
	"os"
	"testing"

	"chime/test/integration/harness"
)

func TestMain(m *testing.M) {
	if _, err := harness.BuildBinary(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build chime binary: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	harness.CleanupBinary()
	os.Exit(code)
}
