package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/aistackctl/internal/aistackctl"
	"github.com/example/aistackctl/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "aistackctl",
		Short: "Deploy a self-hosted AI workflow stack behind nginx with TLS",
		Long: `aistackctl provisions a fresh Linux host with docker, nginx and certbot,
clones a compose-based AI workflow stack, reconciles its environment file
and registers it as a systemd service.

Run without arguments to start the interactive wizard.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.StartWizard()
		},
	}

	root.AddCommand(
		newSetupCmd(),
		newInstallCmd(),
		newStatusCmd(),
		newUpCmd(),
		newDownCmd(),
		newVerifyCmd(),
		newDoctorCmd(),
	)
	return root
}

func newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Start the interactive deployment wizard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.StartWizard()
		},
	}
}

func newInstallCmd() *cobra.Command {
	var (
		domain   string
		email    string
		repo     string
		hardware string
		skipTLS  bool
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Run a non-interactive deployment",
		RunE: func(cmd *cobra.Command, args []string) error {
			hw, err := aistackctl.ParseHardwareProfile(hardware)
			if err != nil {
				return err
			}
			dep, err := aistackctl.NewDeployment(domain, email, repo, hw)
			if err != nil {
				return err
			}
			if err := collectSecrets(dep); err != nil {
				return err
			}

			log, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer log.Sync()

			warnPreflight(os.Stderr)

			opts := aistackctl.PipelineOptions{
				Log:                log,
				ContinueWithoutTLS: promptContinueWithoutTLS,
			}
			if skipTLS {
				opts.ContinueWithoutTLS = func(error) bool { return true }
			}
			if err := aistackctl.RunPipeline(dep, aistackctl.BuildInstallSteps(log), opts); err != nil {
				return err
			}

			scheme := "https"
			if dep.SkipTLS {
				scheme = "http"
			}
			fmt.Printf("\nDeployment complete. Stack %s is reachable at %s://%s/\n",
				dep.Target.Service, scheme, dep.Domain)
			return nil
		},
	}

	cmd.Flags().StringVar(&domain, "domain", "", "fully qualified domain pointing at this host")
	cmd.Flags().StringVar(&email, "email", "", "contact email for certificate registration")
	cmd.Flags().StringVar(&repo, "repo", tui.DefaultRepoURL, "git repository of the compose stack")
	cmd.Flags().StringVar(&hardware, "hardware", string(aistackctl.HardwareCPU), "hardware profile: cpu, gpu-nvidia or gpu-amd")
	cmd.Flags().BoolVar(&skipTLS, "skip-tls", false, "continue over plain HTTP if certificate issuance fails")
	cmd.MarkFlagRequired("domain")
	cmd.MarkFlagRequired("email")
	return cmd
}

// collectSecrets generates the stack credentials, falling back to manual
// entry when the random source is unavailable. Manual entry re-prompts until
// each value meets its length constraint.
func collectSecrets(dep *aistackctl.Deployment) error {
	secrets, err := aistackctl.GenerateSecrets()
	if err == nil {
		dep.SetEnvValues(secrets)
		return nil
	}
	if !isTerminal(os.Stdin) {
		return fmt.Errorf("generating secrets: %w", err)
	}

	fmt.Fprintf(os.Stderr, "secure random source unavailable (%v); entering secrets manually\n", err)
	in := bufio.NewReader(os.Stdin)
	secrets.EncryptionKey = promptUntil(in, "Encryption key (exactly 32 characters): ", aistackctl.ValidateEncryptionKey)
	secrets.JWTSecret = promptUntil(in, "JWT secret (at least 16 characters): ", aistackctl.ValidateJWTSecret)
	secrets.BasicAuthPassword = promptUntil(in, "Basic auth password: ", notEmpty)
	secrets.PostgresPassword = promptUntil(in, "Postgres password: ", notEmpty)
	dep.SetEnvValues(secrets)
	return nil
}

func promptUntil(in *bufio.Reader, prompt string, validate func(string) error) string {
	for {
		fmt.Print(prompt)
		line, err := in.ReadString('\n')
		line = strings.TrimSpace(line)
		vErr := validate(line)
		if vErr == nil {
			return line
		}
		fmt.Fprintln(os.Stderr, "  invalid:", vErr)
		if err != nil {
			// stdin closed mid-prompt, nothing more to read
			fmt.Fprintln(os.Stderr, "error: input closed before a valid value was entered")
			os.Exit(1)
		}
	}
}

func notEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("value must not be empty")
	}
	return nil
}

func promptContinueWithoutTLS(cause error) bool {
	fmt.Fprintf(os.Stderr, "\ncertificate issuance failed: %v\n", cause)
	if !isTerminal(os.Stdin) {
		return false
	}
	fmt.Fprint(os.Stderr, "Continue without TLS over plain HTTP? [y/N]: ")
	in := bufio.NewReader(os.Stdin)
	line, _ := in.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// warnPreflight prints failed environment checks without blocking the run;
// the wizard path surfaces the same checks interactively.
func warnPreflight(w *os.File) {
	for _, res := range aistackctl.RunChecks() {
		if !res.OK {
			fmt.Fprintf(w, "warning: %s: %v\n", res.Name, res.Err)
		}
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show deployed stacks and their container state",
		RunE: func(cmd *cobra.Command, args []string) error {
			dirs := aistackctl.FindDeployments()
			if len(dirs) == 0 {
				fmt.Println("No deployments found.")
				return nil
			}
			for _, dir := range dirs {
				st, err := aistackctl.LoadState(dir)
				if err != nil {
					fmt.Printf("%s: unreadable deployment record: %v\n", dir, err)
					continue
				}
				target := aistackctl.DeriveTarget(st.RepoURL)
				fmt.Printf("%s\n  domain:   %s\n  hardware: %s\n  service:  %s\n  created:  %s\n",
					dir, st.Domain, st.Hardware, target.Service, st.CreatedAt)
				out, err := aistackctl.ComposePS(target, st.Hardware)
				if err != nil {
					fmt.Printf("  containers: %v\n", err)
					continue
				}
				for _, line := range strings.Split(out, "\n") {
					fmt.Println(" ", line)
				}
			}
			return nil
		},
	}
}

func newUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up [dir]",
		Short: "Start a deployed stack's containers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return forEachDeployment(args, func(dir string, st aistackctl.DeployState) error {
				target := aistackctl.DeriveTarget(st.RepoURL)
				fmt.Printf("Starting %s...\n", target.Service)
				return aistackctl.ComposeUp(target, st.Hardware)
			})
		},
	}
}

func newDownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down [dir]",
		Short: "Stop a deployed stack and its systemd service",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer log.Sync()
			return forEachDeployment(args, func(dir string, st aistackctl.DeployState) error {
				target := aistackctl.DeriveTarget(st.RepoURL)
				fmt.Printf("Stopping %s...\n", target.Service)
				if err := aistackctl.StopService(target, log); err != nil {
					return err
				}
				return aistackctl.ComposeDown(target, st.Hardware)
			})
		},
	}
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [dir]",
		Short: "Check that deployed stacks are active and answering",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := zap.NewNop()
			return forEachDeployment(args, func(dir string, st aistackctl.DeployState) error {
				dep, err := aistackctl.NewDeployment(st.Domain, st.Email, st.RepoURL, st.Hardware)
				if err != nil {
					return fmt.Errorf("%s: %w", dir, err)
				}
				if err := aistackctl.VerifyStack(dep, log); err != nil {
					return fmt.Errorf("%s: %w", dep.Target.Service, err)
				}
				fmt.Printf("%s: healthy\n", dep.Target.Service)
				return nil
			})
		},
	}
}

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the host for deployment prerequisites",
		RunE: func(cmd *cobra.Command, args []string) error {
			return aistackctl.RunDoctor()
		},
	}
}

// forEachDeployment runs fn over the deployment named in args, or over every
// recorded deployment when no argument is given.
func forEachDeployment(args []string, fn func(string, aistackctl.DeployState) error) error {
	var dirs []string
	if len(args) == 1 {
		dirs = []string{args[0]}
	} else {
		dirs = aistackctl.FindDeployments()
	}
	if len(dirs) == 0 {
		return fmt.Errorf("no deployments found")
	}
	for _, dir := range dirs {
		st, err := aistackctl.LoadState(dir)
		if err != nil {
			return fmt.Errorf("reading deployment record in %s: %w", dir, err)
		}
		if err := fn(dir, st); err != nil {
			return err
		}
	}
	return nil
}
