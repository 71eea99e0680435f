package aistackctl

import (
	"path"
	"strings"
)

const installRoot = "/opt"

// DeploymentTarget identifies where a stack lives on disk and under which
// systemd unit it runs. Dir and Service are derived from RepoURL alone, so
// two repositories that share a final path segment resolve to the same
// target. That collision is a known property of the naming scheme and is
// intentionally not resolved here.
type DeploymentTarget struct {
	RepoURL string
	Dir     string
	Service string
}

// DeriveTarget maps a repository URL to its deployment target. The URL is
// assumed to be syntactically valid (ValidateRepoURL runs before this).
func DeriveTarget(repoURL string) DeploymentTarget {
	trimmed := strings.TrimSuffix(repoURL, "/")
	trimmed = strings.TrimSuffix(trimmed, ".git")
	name := trimmed
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		name = trimmed[i+1:]
	}
	return DeploymentTarget{
		RepoURL: repoURL,
		Dir:     path.Join(installRoot, name),
		Service: name + "-service",
	}
}
