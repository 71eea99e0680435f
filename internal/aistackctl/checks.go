package aistackctl

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"syscall"
)

type CheckResult struct {
	Name string
	OK   bool
	Err  error
}

// RunChecks probes the host for everything the installer is about to rely
// on. Results are advisory: the wizard lets the operator continue past
// warnings, except the distro check which is always fatal later anyway.
func RunChecks() []CheckResult {
	checks := []struct {
		name string
		fn   func() error
	}{
		{"running as root", func() error {
			if os.Geteuid() != 0 {
				return errors.New("installer needs root to write /opt and /etc")
			}
			return nil
		}},
		{"supported distribution", func() error {
			_, err := DetectDistro()
			return err
		}},
		{"docker binary", func() error {
			_, err := exec.LookPath("docker")
			return err
		}},
		{"docker compose", func() error {
			_, err := RunCmdCapture("docker", "compose", "version")
			return err
		}},
		{"docker daemon", func() error {
			_, err := RunCmdCapture("docker", "info")
			return err
		}},
		{"git binary", func() error {
			_, err := exec.LookPath("git")
			return err
		}},
		{"/opt writable", func() error {
			return writableCheck(installRoot)
		}},
		{"disk space >= 5GiB on /opt", func() error {
			return diskCheck(installRoot, 5)
		}},
		{"ports 80/443 status", func() error {
			out, err := RunCmdCapture("ss", "-ltn")
			if err != nil {
				return err
			}
			if strings.Contains(out, ":80 ") || strings.Contains(out, ":443 ") {
				return errors.New("ports 80/443 already in use")
			}
			return nil
		}},
	}

	results := make([]CheckResult, 0, len(checks))
	for _, c := range checks {
		err := c.fn()
		results = append(results, CheckResult{Name: c.name, OK: err == nil, Err: err})
	}
	return results
}

// RunDoctor prints the check results in the plain CLI format.
func RunDoctor() error {
	fmt.Println("aistackctl doctor")
	fmt.Printf("runtime: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	for _, r := range RunChecks() {
		if r.OK {
			fmt.Printf("[ OK ] %s\n", r.Name)
		} else {
			fmt.Printf("[WARN] %s: %v\n", r.Name, r.Err)
		}
	}
	return nil
}

func writableCheck(dir string) error {
	if err := ensureDir(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "aistackctl-write-check-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return nil
}

func diskCheck(path string, minGiB uint64) error {
	var stat syscall.Statfs_t
	if err := syscall.Statfs(path, &stat); err != nil {
		return err
	}
	free := (stat.Bavail * uint64(stat.Bsize)) / (1024 * 1024 * 1024)
	if free < minGiB {
		return fmt.Errorf("free space %dGiB < %dGiB", free, minGiB)
	}
	return nil
}
