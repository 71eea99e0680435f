package aistackctl

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrTLSUnavailable wraps certificate issuance failures. It is the one
// provisioner error a caller may explicitly downgrade ("continue without
// TLS") instead of aborting the deployment.
var ErrTLSUnavailable = errors.New("certificate issuance failed")

// IssueCertificate requests a certificate for the deployment domain and
// rewrites the nginx server block for TLS. The renewal dry-run afterwards is
// informational only and never fails the step.
func IssueCertificate(d *Deployment, log *zap.Logger) error {
	log.Info("requesting certificate",
		zap.String("domain", d.Domain), zap.String("email", d.Email))
	err := RunCmdStream("certbot", "--nginx",
		"-d", d.Domain,
		"-m", d.Email,
		"--agree-tos", "--redirect", "--non-interactive")
	if err != nil {
		return fmt.Errorf("%w for %s: %v", ErrTLSUnavailable, d.Domain, err)
	}

	if err := RunCmdStream("certbot", "renew", "--dry-run"); err != nil {
		log.Warn("renewal dry-run failed", zap.Error(err))
	}
	return nil
}
