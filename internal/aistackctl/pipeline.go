package aistackctl

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Step is one named stage of the deployment pipeline. Steps run strictly in
// order and the pipeline stops at the first failure: fail fast, no partial
// retry.
type Step struct {
	Name string
	Run  func(*Deployment) error
}

// PipelineOptions carries the caller-side policy decisions the pipeline
// itself cannot make.
type PipelineOptions struct {
	Log *zap.Logger

	// ContinueWithoutTLS is consulted when certificate issuance fails. A
	// true return downgrades the failure and the pipeline continues with
	// SkipTLS set. Nil means never continue.
	ContinueWithoutTLS func(error) bool
}

// BuildInstallSteps assembles the full deployment pipeline. Distro detection
// runs first so an unsupported OS terminates before any package
// installation is attempted.
func BuildInstallSteps(log *zap.Logger) []Step {
	if log == nil {
		log = zap.NewNop()
	}
	return []Step{
		{Name: "detect operating system", Run: func(d *Deployment) error {
			distro, err := DetectDistro()
			if err != nil {
				return err
			}
			d.Distro = distro
			log.Info("detected distribution", zap.String("id", distro.ID),
				zap.String("package_manager", distro.PackageManager))
			return nil
		}},
		{Name: "install packages", Run: func(d *Deployment) error {
			return InstallBasePackages(d.Distro, log)
		}},
		{Name: "configure firewall", Run: func(d *Deployment) error {
			return ConfigureFirewall(d.Distro, log)
		}},
		{Name: "clone repository", Run: func(d *Deployment) error {
			return CloneRepository(d.Target, log)
		}},
		{Name: "resolve environment file", Run: func(d *Deployment) error {
			if err := d.CollectEnvValues(); err != nil {
				return err
			}
			tpl, err := EnvTemplatePath(d.Target.Dir)
			if err != nil {
				return err
			}
			result, err := ResolveEnvFile(d.Target.Dir, tpl, d.EnvValues)
			if err != nil {
				return err
			}
			d.EnvResult = result
			log.Info("environment file ready",
				zap.String("path", result.Path), zap.String("source", result.Source.String()))
			return nil
		}},
		{Name: "write deployment record", Run: func(d *Deployment) error {
			return WriteState(d.Target.Dir, DeployState{
				Domain:   d.Domain,
				Email:    d.Email,
				RepoURL:  d.RepoURL,
				Hardware: d.Hardware,
			})
		}},
		{Name: "configure reverse proxy", Run: func(d *Deployment) error {
			return ConfigureNginx(d, log)
		}},
		{Name: "issue tls certificate", Run: func(d *Deployment) error {
			return IssueCertificate(d, log)
		}},
		{Name: "pull stack images", Run: func(d *Deployment) error {
			return ComposePull(d)
		}},
		{Name: "register service", Run: func(d *Deployment) error {
			return RegisterService(d, log)
		}},
		{Name: "verify deployment", Run: func(d *Deployment) error {
			return VerifyStack(d, log)
		}},
	}
}

// RunPipeline executes steps in order, short-circuiting on the first error.
// Certificate failures may be downgraded through opts.ContinueWithoutTLS;
// everything else is fatal.
func RunPipeline(d *Deployment, steps []Step, opts PipelineOptions) error {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	for _, step := range steps {
		log.Info("step starting", zap.String("step", step.Name))
		if err := step.Run(d); err != nil {
			if errors.Is(err, ErrTLSUnavailable) && opts.ContinueWithoutTLS != nil && opts.ContinueWithoutTLS(err) {
				d.SkipTLS = true
				log.Warn("continuing without TLS", zap.Error(err))
				continue
			}
			log.Error("step failed", zap.String("step", step.Name), zap.Error(err))
			return fmt.Errorf("%s: %w", step.Name, err)
		}
		log.Info("step complete", zap.String("step", step.Name))
	}
	return nil
}
