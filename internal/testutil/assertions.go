package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertLogged checks that the captured log output contains a record with
// the given message and, for every key/value pair in attrs, the rendered
// key=value attribute on the same line.
func AssertLogged(t *testing.T, logs *SafeBuffer, msg string, attrs ...string) {
	t.Helper()

	for _, line := range strings.Split(logs.String(), "\n") {
		if !strings.Contains(line, msg) {
			continue
		}
		if hasAttrs(line, attrs) {
			return
		}
	}
	require.Failf(t, "log record not found", "message %q with attributes %v was not logged", msg, attrs)
}

func hasAttrs(line string, attrs []string) bool {
	for i := 0; i+1 < len(attrs); i += 2 {
		if !strings.Contains(line, attrs[i]+"="+attrs[i+1]) {
			return false
		}
	}
	return true
}
