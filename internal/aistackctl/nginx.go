package aistackctl

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const nginxConfDir = "/etc/nginx/conf.d"

// RenderNginxConf produces the server block for this deployment: one block
// per domain, forwarding to the fixed local app port.
func RenderNginxConf(d *Deployment) (string, error) {
	return renderTemplate("nginx.conf.tmpl", d.renderData())
}

// ConfigureNginx writes the server block, validates the full nginx
// configuration, and reloads the daemon.
func ConfigureNginx(d *Deployment, log *zap.Logger) error {
	text, err := RenderNginxConf(d)
	if err != nil {
		return fmt.Errorf("render nginx config: %w", err)
	}

	confPath := filepath.Join(nginxConfDir, d.Target.Service+".conf")
	if err := os.WriteFile(confPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", confPath, err)
	}
	log.Info("wrote nginx server block", zap.String("path", confPath))

	if out, err := RunCmdCapture("nginx", "-t"); err != nil {
		return fmt.Errorf("nginx config test failed: %w\n%s", err, out)
	}
	if err := RunCmdStream("systemctl", "reload", "nginx"); err != nil {
		return fmt.Errorf("reload nginx: %w", err)
	}
	return nil
}
