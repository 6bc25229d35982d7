package testutil

import (
	"testing"

	"github.com/vk/hyago/internal/capability"
)

// RequireCapability skips the test when c was compiled out.
func RequireCapability(t *testing.T, c capability.Capability) {
	t.Helper()
	if !capability.Available(c) {
		t.Skipf("%s support compiled out (-tags %s)", c, c.BuildTag())
	}
}
