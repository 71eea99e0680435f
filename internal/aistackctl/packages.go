package aistackctl

import (
	"fmt"

	"go.uber.org/zap"
)

// InstallBasePackages refreshes the package index and installs the stack's
// host dependencies through the detected package manager. Both calls block
// until completion; failure aborts the deployment.
func InstallBasePackages(distro DistroProfile, log *zap.Logger) error {
	log.Info("updating package index",
		zap.String("package_manager", distro.PackageManager))
	if err := RunCmdStream(distro.PackageManager, distro.UpdateArgs...); err != nil {
		return fmt.Errorf("update package index (%s): %w", distro.PackageManager, err)
	}

	args := append(append([]string{}, distro.InstallArgs...), distro.BasePackages...)
	log.Info("installing base packages", zap.Strings("packages", distro.BasePackages))
	if err := RunCmdStream(distro.PackageManager, args...); err != nil {
		return fmt.Errorf("install base packages (%s): %w", distro.PackageManager, err)
	}

	if err := RunCmdStream("systemctl", "enable", "--now", "docker"); err != nil {
		return fmt.Errorf("enable docker service: %w", err)
	}
	return nil
}
