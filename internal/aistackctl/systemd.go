package aistackctl

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const systemdUnitDir = "/etc/systemd/system"

// RenderServiceUnit produces the supervised-process unit for this
// deployment: compose in the foreground under systemd, restarted on failure
// with a 10-second backoff.
func RenderServiceUnit(d *Deployment) (string, error) {
	return renderTemplate("stack.service.tmpl", d.renderData())
}

// RegisterService installs the unit, reloads the manager, and enables plus
// starts the stack in one shot.
func RegisterService(d *Deployment, log *zap.Logger) error {
	text, err := RenderServiceUnit(d)
	if err != nil {
		return fmt.Errorf("render service unit: %w", err)
	}

	unitPath := filepath.Join(systemdUnitDir, d.Target.Service+".service")
	if err := os.WriteFile(unitPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", unitPath, err)
	}
	log.Info("installed service unit", zap.String("unit", unitPath))

	if err := RunCmdStream("systemctl", "daemon-reload"); err != nil {
		return fmt.Errorf("daemon-reload: %w", err)
	}
	if err := RunCmdStream("systemctl", "enable", "--now", d.Target.Service); err != nil {
		return fmt.Errorf("enable %s: %w", d.Target.Service, err)
	}
	return nil
}

// StopService disables the unit and stops the stack.
func StopService(target DeploymentTarget, log *zap.Logger) error {
	log.Info("stopping service", zap.String("service", target.Service))
	if err := RunCmdStream("systemctl", "disable", "--now", target.Service); err != nil {
		return fmt.Errorf("disable %s: %w", target.Service, err)
	}
	return nil
}
