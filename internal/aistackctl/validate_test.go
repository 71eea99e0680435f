package aistackctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDomain(t *testing.T) {
	t.Parallel()

	valid := []string{
		"example.com",
		"n8n.example.com",
		"a.b.c.example.co.uk",
		"xn--bcher-kva.example",
		"host-1.example.io",
	}
	for _, d := range valid {
		assert.NoError(t, ValidateDomain(d), d)
	}

	invalid := []string{
		"",
		"example",
		"example..com",
		".example.com",
		"example.com.",
		"-example.com",
		"example-.com",
		"exa mple.com",
		"example.c",
		"http://example.com",
	}
	for _, d := range invalid {
		assert.Error(t, ValidateDomain(d), d)
	}
}

func TestIsBareDomain(t *testing.T) {
	t.Parallel()

	assert.True(t, IsBareDomain("example.com"))
	assert.False(t, IsBareDomain("n8n.example.com"))
	assert.False(t, IsBareDomain("a.b.example.com"))
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"ops@example.com",
		"first.last@example.co.uk",
		"user+tag@example.io",
	}
	for _, e := range valid {
		assert.NoError(t, ValidateEmail(e), e)
	}

	invalid := []string{
		"",
		"ops",
		"ops@",
		"@example.com",
		"ops@example",
		"ops example@example.com",
	}
	for _, e := range invalid {
		assert.Error(t, ValidateEmail(e), e)
	}
}

func TestValidateRepoURL(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateRepoURL("https://github.com/org/repo"))
	assert.NoError(t, ValidateRepoURL("http://git.internal/repo.git"))

	assert.Error(t, ValidateRepoURL(""))
	assert.Error(t, ValidateRepoURL("github.com/org/repo"))
	assert.Error(t, ValidateRepoURL("git@github.com:org/repo.git"))
	assert.Error(t, ValidateRepoURL("https://"))
	assert.Error(t, ValidateRepoURL("http://   "))
}
