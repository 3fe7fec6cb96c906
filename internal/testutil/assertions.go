package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertFindingCount checks how many finding blocks with the given message
// appear in an error log. A block starts with the message on its own line.
func AssertFindingCount(t *testing.T, log, message string, want int) {
	t.Helper()

	got := 0
	for _, line := range strings.Split(log, "\n") {
		if line == message {
			got++
		}
	}
	require.Equal(t, want, got, "finding %q count mismatch in log:\n%s", message, log)
}
