package aistackctl

import (
	"fmt"

	"go.uber.org/zap"
)

// ConfigureFirewall opens HTTP/HTTPS (and keeps SSH reachable) through the
// distro's firewall backend.
func ConfigureFirewall(distro DistroProfile, log *zap.Logger) error {
	log.Info("configuring firewall", zap.String("backend", string(distro.Firewall)))

	switch distro.Firewall {
	case FirewallUFW:
		rules := [][]string{
			{"allow", "OpenSSH"},
			{"allow", "80/tcp"},
			{"allow", "443/tcp"},
		}
		for _, rule := range rules {
			if err := RunCmdStream("ufw", rule...); err != nil {
				return fmt.Errorf("ufw %v: %w", rule, err)
			}
		}
		if err := RunCmdStream("ufw", "--force", "enable"); err != nil {
			return fmt.Errorf("enable ufw: %w", err)
		}

	case FirewallFirewalld:
		if err := RunCmdStream("systemctl", "enable", "--now", "firewalld"); err != nil {
			return fmt.Errorf("enable firewalld: %w", err)
		}
		for _, svc := range []string{"ssh", "http", "https"} {
			if err := RunCmdStream("firewall-cmd", "--permanent", "--add-service="+svc); err != nil {
				return fmt.Errorf("firewall-cmd add %s: %w", svc, err)
			}
		}
		if err := RunCmdStream("firewall-cmd", "--reload"); err != nil {
			return fmt.Errorf("firewall-cmd reload: %w", err)
		}

	default:
		return fmt.Errorf("unknown firewall backend: %q", distro.Firewall)
	}
	return nil
}
