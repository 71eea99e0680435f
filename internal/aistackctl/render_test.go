package aistackctl

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeployment(t *testing.T) *Deployment {
	t.Helper()
	d, err := NewDeployment(
		"n8n.example.com",
		"ops@example.com",
		"https://github.com/n8n-io/self-hosted-ai-starter-kit",
		HardwareGPUNvidia,
	)
	require.NoError(t, err)
	return d
}

func TestRenderNginxConf(t *testing.T) {
	t.Parallel()

	conf, err := RenderNginxConf(testDeployment(t))
	require.NoError(t, err)

	assert.Contains(t, conf, "server_name n8n.example.com;")
	assert.Contains(t, conf, fmt.Sprintf("proxy_pass http://127.0.0.1:%d;", appPort))
	assert.Contains(t, conf, "listen 80;")
	// Websocket upgrade headers are required for the editor UI.
	assert.Contains(t, conf, "proxy_set_header Upgrade $http_upgrade;")
	assert.Contains(t, conf, `proxy_set_header Connection "upgrade";`)
	assert.NotContains(t, conf, "{{")
}

func TestRenderServiceUnit(t *testing.T) {
	t.Parallel()

	d := testDeployment(t)
	unit, err := RenderServiceUnit(d)
	require.NoError(t, err)

	assert.Contains(t, unit, "WorkingDirectory=/opt/self-hosted-ai-starter-kit")
	assert.Contains(t, unit, "--env-file /opt/self-hosted-ai-starter-kit/.env")
	assert.Contains(t, unit, "--profile gpu-nvidia up")
	assert.Contains(t, unit, "Requires=docker.service")
	assert.Contains(t, unit, "Restart=always")
	assert.Contains(t, unit, "RestartSec=10")
	assert.Contains(t, unit, "WantedBy=multi-user.target")
	assert.NotContains(t, unit, "{{")
}

func TestRenderStringMissingKeyFails(t *testing.T) {
	t.Parallel()

	_, err := renderString("{{.DoesNotExist}}", renderData{})
	assert.Error(t, err)
}
