package aistackctl

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ComposeArgs builds the compose argument prefix for a deployment. The
// hardware profile selects which optional accelerator services are active.
func ComposeArgs(target DeploymentTarget, hw HardwareProfile) []string {
	return []string{
		"compose",
		"--env-file", filepath.Join(target.Dir, ".env"),
		"--profile", string(hw),
	}
}

// ComposePull fetches the stack images ahead of service start so the first
// systemd start does not block on downloads.
func ComposePull(d *Deployment) error {
	args := append(ComposeArgs(d.Target, d.Hardware), "pull")
	if err := RunCmdStreamIn(d.Target.Dir, "docker", args...); err != nil {
		return fmt.Errorf("pull stack images: %w", err)
	}
	return nil
}

// ComposeUp brings the stack up detached, outside of systemd supervision.
func ComposeUp(target DeploymentTarget, hw HardwareProfile) error {
	args := append(ComposeArgs(target, hw), "up", "-d", "--remove-orphans")
	if err := RunCmdStreamIn(target.Dir, "docker", args...); err != nil {
		return fmt.Errorf("compose up: %w", err)
	}
	return nil
}

// ComposeDown stops and removes the stack containers.
func ComposeDown(target DeploymentTarget, hw HardwareProfile) error {
	args := append(ComposeArgs(target, hw), "down")
	if err := RunCmdStreamIn(target.Dir, "docker", args...); err != nil {
		return fmt.Errorf("compose down: %w", err)
	}
	return nil
}

// ComposePS captures the container table for status output.
func ComposePS(target DeploymentTarget, hw HardwareProfile) (string, error) {
	args := append(ComposeArgs(target, hw), "ps")
	out, err := runCmdCaptureIn(target.Dir, "docker", args...)
	return strings.TrimSpace(out), err
}
