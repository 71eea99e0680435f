package aistackctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		repoURL     string
		wantDir     string
		wantService string
	}{
		{
			name:        "plain https url",
			repoURL:     "https://github.com/n8n-io/self-hosted-ai-starter-kit",
			wantDir:     "/opt/self-hosted-ai-starter-kit",
			wantService: "self-hosted-ai-starter-kit-service",
		},
		{
			name:        "git suffix stripped",
			repoURL:     "https://github.com/org/my-repo.git",
			wantDir:     "/opt/my-repo",
			wantService: "my-repo-service",
		},
		{
			name:        "trailing slash stripped",
			repoURL:     "https://github.com/org/my-repo/",
			wantDir:     "/opt/my-repo",
			wantService: "my-repo-service",
		},
		{
			name:        "trailing slash then git suffix",
			repoURL:     "https://github.com/org/my-repo.git/",
			wantDir:     "/opt/my-repo",
			wantService: "my-repo-service",
		},
		{
			name:        "self-hosted git server",
			repoURL:     "http://git.internal/stacks/automation.git",
			wantDir:     "/opt/automation",
			wantService: "automation-service",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := DeriveTarget(tt.repoURL)
			assert.Equal(t, tt.repoURL, got.RepoURL)
			assert.Equal(t, tt.wantDir, got.Dir)
			assert.Equal(t, tt.wantService, got.Service)
		})
	}
}

func TestDeriveTargetCollision(t *testing.T) {
	t.Parallel()

	// Two different forges hosting a repo with the same final segment map to
	// the same directory and unit. The naming scheme accepts this.
	a := DeriveTarget("https://github.com/alice/stack.git")
	b := DeriveTarget("https://gitlab.com/bob/stack")
	assert.Equal(t, a.Dir, b.Dir)
	assert.Equal(t, a.Service, b.Service)
}
