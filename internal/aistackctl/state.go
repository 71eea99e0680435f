package aistackctl

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const stateFileName = "aistack.yml"

// DeployState is the per-deployment record written next to the stack so
// status and verify runs do not need to re-prompt for anything.
type DeployState struct {
	Domain    string          `yaml:"domain"`
	Email     string          `yaml:"email"`
	RepoURL   string          `yaml:"repo"`
	Hardware  HardwareProfile `yaml:"hardware"`
	CreatedAt string          `yaml:"created_at"`
}

func LoadState(dir string) (DeployState, error) {
	b, err := os.ReadFile(filepath.Join(dir, stateFileName))
	if err != nil {
		return DeployState{}, err
	}
	var st DeployState
	if err := yaml.Unmarshal(b, &st); err != nil {
		return DeployState{}, err
	}
	return st, nil
}

func WriteState(dir string, st DeployState) error {
	if st.CreatedAt == "" {
		st.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	out, err := yaml.Marshal(st)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, stateFileName), out, 0o640)
}

// FindDeployments scans the install root for directories carrying a
// deployment record.
func FindDeployments() []string {
	entries, err := os.ReadDir(installRoot)
	if err != nil {
		return nil
	}
	var dirs []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(installRoot, e.Name())
		if fileExists(filepath.Join(dir, stateFileName)) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
