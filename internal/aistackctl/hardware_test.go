package aistackctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHardwareProfile(t *testing.T) {
	t.Parallel()

	for _, p := range HardwareProfiles() {
		got, err := ParseHardwareProfile(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	for _, s := range []string{"", "gpu", "GPU-NVIDIA", "cpu ", "nvidia"} {
		_, err := ParseHardwareProfile(s)
		assert.Error(t, err, s)
	}
}
