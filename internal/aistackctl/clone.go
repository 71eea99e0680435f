package aistackctl

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
)

// CloneRepository clones the stack repository into the target directory. A
// directory that already holds a checkout is updated in place instead; a
// failed update is not fatal since the existing checkout still works.
func CloneRepository(target DeploymentTarget, log *zap.Logger) error {
	if DirExists(filepath.Join(target.Dir, ".git")) {
		log.Info("repository already present, updating", zap.String("dir", target.Dir))
		if err := RunCmdStream("git", "-C", target.Dir, "pull", "--ff-only"); err != nil {
			log.Warn("repository update failed, keeping existing checkout", zap.Error(err))
		}
		return nil
	}

	if err := ensureDir(installRoot, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", installRoot, err)
	}
	log.Info("cloning repository",
		zap.String("repo", target.RepoURL), zap.String("dir", target.Dir))
	if err := RunCmdStream("git", "clone", target.RepoURL, target.Dir); err != nil {
		return fmt.Errorf("clone %s: %w", target.RepoURL, err)
	}
	return nil
}
