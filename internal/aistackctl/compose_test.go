package aistackctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeArgs(t *testing.T) {
	t.Parallel()

	target := DeriveTarget("https://github.com/org/stack")
	args := ComposeArgs(target, HardwareGPUNvidia)
	assert.Equal(t, []string{
		"compose",
		"--env-file", "/opt/stack/.env",
		"--profile", "gpu-nvidia",
	}, args)
}
