package aistackctl

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// appPort is the fixed local port the application listens on behind the
// reverse proxy.
const appPort = 5678

// warmupDelay gives the containers time to come up after service start
// before the health probe runs.
const warmupDelay = 10 * time.Second

// VerifyStack is the post-deployment health probe: wait out the warm-up
// window, confirm the unit is active, then hit the app over loopback.
func VerifyStack(d *Deployment, log *zap.Logger) error {
	log.Info("waiting for stack warm-up", zap.Duration("delay", warmupDelay))
	time.Sleep(warmupDelay)

	if err := RunCmdQuiet("systemctl", "is-active", "--quiet", d.Target.Service); err != nil {
		return fmt.Errorf("service %s is not active: %w", d.Target.Service, err)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	url := fmt.Sprintf("http://127.0.0.1:%d/healthz", appPort)
	if err := probeHealth(client, url); err != nil {
		return err
	}
	log.Info("stack is healthy", zap.String("url", url))
	return nil
}

func probeHealth(client *http.Client, url string) error {
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("health probe %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 500 {
		return fmt.Errorf("health probe %s: %s", url, resp.Status)
	}
	return nil
}
