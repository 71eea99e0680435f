package aistackctl

import (
	"fmt"
)

// Deployment is the single configuration value threaded through every
// pipeline stage. Inputs are validated before construction; everything else
// is filled in by the steps that produce it.
type Deployment struct {
	Domain   string
	Email    string
	RepoURL  string
	Hardware HardwareProfile

	Target DeploymentTarget
	Distro DistroProfile

	// SkipTLS is set when the operator explicitly chooses to continue after
	// certificate issuance fails.
	SkipTLS bool

	EnvValues map[string]string
	EnvResult ReconcileResult
}

// NewDeployment validates the collected inputs and derives the deployment
// target. The distro profile is resolved later by the first pipeline step.
func NewDeployment(domain, email, repoURL string, hw HardwareProfile) (*Deployment, error) {
	if err := ValidateDomain(domain); err != nil {
		return nil, err
	}
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := ValidateRepoURL(repoURL); err != nil {
		return nil, err
	}
	if _, err := ParseHardwareProfile(string(hw)); err != nil {
		return nil, err
	}
	return &Deployment{
		Domain:   domain,
		Email:    email,
		RepoURL:  repoURL,
		Hardware: hw,
		Target:   DeriveTarget(repoURL),
	}, nil
}

// Secrets holds the generated (or manually supplied) credentials that end up
// in the environment file.
type Secrets struct {
	BasicAuthPassword string
	PostgresPassword  string
	EncryptionKey     string
	JWTSecret         string
}

// GenerateSecrets draws all credentials from the secure random source.
// Failure means the source is unavailable; callers either abort or fall back
// to interactive entry, never to weaker generation.
func GenerateSecrets() (Secrets, error) {
	basicAuthPass, err := GeneratePassword(20)
	if err != nil {
		return Secrets{}, err
	}
	pgPass, err := GeneratePassword(20)
	if err != nil {
		return Secrets{}, err
	}
	encKey, err := GenerateEncryptionKey()
	if err != nil {
		return Secrets{}, err
	}
	jwtSecret, err := GenerateJWTSecret()
	if err != nil {
		return Secrets{}, err
	}
	return Secrets{
		BasicAuthPassword: basicAuthPass,
		PostgresPassword:  pgPass,
		EncryptionKey:     encKey,
		JWTSecret:         jwtSecret,
	}, nil
}

// SetEnvValues fills EnvValues with the full recognized key set from the
// operator-supplied domain and the given secrets.
func (d *Deployment) SetEnvValues(s Secrets) {
	base := fmt.Sprintf("https://%s/", d.Domain)
	d.EnvValues = map[string]string{
		"DOMAIN":                         d.Domain,
		"N8N_PROTOCOL":                   "https",
		"N8N_HOST":                       d.Domain,
		"WEBHOOK_URL":                    base,
		"WEBHOOK_TUNNEL_URL":             base,
		"N8N_BASIC_AUTH_ACTIVE":          "true",
		"N8N_BASIC_AUTH_USER":            "admin",
		"N8N_BASIC_AUTH_PASSWORD":        s.BasicAuthPassword,
		"POSTGRES_USER":                  "n8n",
		"POSTGRES_PASSWORD":              s.PostgresPassword,
		"POSTGRES_DB":                    "n8n",
		"N8N_ENCRYPTION_KEY":             s.EncryptionKey,
		"N8N_USER_MANAGEMENT_JWT_SECRET": s.JWTSecret,
	}
}

// CollectEnvValues populates EnvValues with generated secrets unless a
// caller already supplied them.
func (d *Deployment) CollectEnvValues() error {
	if d.EnvValues != nil {
		return nil
	}
	secrets, err := GenerateSecrets()
	if err != nil {
		return err
	}
	d.SetEnvValues(secrets)
	return nil
}

func (d *Deployment) renderData() renderData {
	return renderData{
		Domain:   d.Domain,
		Email:    d.Email,
		Dir:      d.Target.Dir,
		Service:  d.Target.Service,
		Hardware: string(d.Hardware),
		AppPort:  appPort,
	}
}
