package aistackctl

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Recognized environment keys, in the order they are appended when missing
// from a template.
var RecognizedKeys = []string{
	"DOMAIN",
	"N8N_PROTOCOL",
	"N8N_HOST",
	"WEBHOOK_URL",
	"WEBHOOK_TUNNEL_URL",
	"N8N_BASIC_AUTH_ACTIVE",
	"N8N_BASIC_AUTH_USER",
	"N8N_BASIC_AUTH_PASSWORD",
	"POSTGRES_USER",
	"POSTGRES_PASSWORD",
	"POSTGRES_DB",
	"N8N_ENCRYPTION_KEY",
	"N8N_USER_MANAGEMENT_JWT_SECRET",
}

// The environment file holds operator secrets; owner read/write only.
const envFileMode os.FileMode = 0o600

const (
	defaultFallbackEnvPath = "/root/.env"
	fallbackEnvPathEnvVar  = "AISTACK_ENV_FALLBACK"
)

// EnvSource records which candidate produced the authoritative env file.
type EnvSource int

const (
	EnvSourceTarget EnvSource = iota
	EnvSourceWorkDir
	EnvSourceFallback
	EnvSourceTemplate
)

func (s EnvSource) String() string {
	switch s {
	case EnvSourceTarget:
		return "existing file in target directory"
	case EnvSourceWorkDir:
		return "file from working directory"
	case EnvSourceFallback:
		return "file from fallback path"
	case EnvSourceTemplate:
		return "generated from template"
	}
	return "unknown"
}

type ReconcileResult struct {
	Source EnvSource
	Path   string
}

// FallbackEnvPath is the well-known system location checked last for a
// pre-existing env file. Overridable through the environment for tests.
func FallbackEnvPath() string {
	if v := strings.TrimSpace(os.Getenv(fallbackEnvPathEnvVar)); v != "" {
		return v
	}
	return defaultFallbackEnvPath
}

// ResolveEnvFile produces exactly one env file at targetDir/.env without
// destroying operator-supplied secrets. Candidate sources are checked in
// fixed precedence order:
//
//  1. targetDir/.env itself — authoritative, left byte-for-byte unchanged.
//  2. .env in the invoking user's working directory — copied verbatim.
//  3. The fixed fallback path — copied verbatim.
//
// Pre-existing files are assumed complete; no substitution is performed on
// them. Only when none exist is the template at templatePath rendered with
// the collected values. Every branch leaves the result at mode 0600. Any
// write failure aborts the deployment; there is no partial retry.
func ResolveEnvFile(targetDir, templatePath string, values map[string]string) (ReconcileResult, error) {
	target := filepath.Join(targetDir, ".env")

	if fileExists(target) {
		if err := os.Chmod(target, envFileMode); err != nil {
			return ReconcileResult{}, fmt.Errorf("restrict %s: %w", target, err)
		}
		return ReconcileResult{Source: EnvSourceTarget, Path: target}, nil
	}

	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, ".env")
		if fileExists(local) {
			if err := copyFile(local, target, envFileMode); err != nil {
				return ReconcileResult{}, fmt.Errorf("copy %s: %w", local, err)
			}
			return ReconcileResult{Source: EnvSourceWorkDir, Path: target}, nil
		}
	}

	if fb := FallbackEnvPath(); fileExists(fb) {
		if err := copyFile(fb, target, envFileMode); err != nil {
			return ReconcileResult{}, fmt.Errorf("copy %s: %w", fb, err)
		}
		return ReconcileResult{Source: EnvSourceFallback, Path: target}, nil
	}

	content, err := os.ReadFile(templatePath)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("read env template: %w", err)
	}
	rendered := substituteEnv(string(content), values)
	if err := os.WriteFile(target, []byte(rendered), envFileMode); err != nil {
		return ReconcileResult{}, fmt.Errorf("write %s: %w", target, err)
	}
	if err := os.Chmod(target, envFileMode); err != nil {
		return ReconcileResult{}, fmt.Errorf("restrict %s: %w", target, err)
	}
	return ReconcileResult{Source: EnvSourceTemplate, Path: target}, nil
}

// substituteEnv rewrites recognized keys in place, preserving comments,
// ordering, and unrecognized lines. Recognized keys absent from the template
// are appended under a labeled block rather than dropped: template
// completeness is not guaranteed.
func substituteEnv(content string, values map[string]string) string {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	seen := map[string]bool{}

	recognized := map[string]bool{}
	for _, k := range RecognizedKeys {
		recognized[k] = true
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		name, _, ok := strings.Cut(trimmed, "=")
		if !ok {
			continue
		}
		key := strings.TrimSpace(name)
		if !recognized[key] {
			continue
		}
		seen[key] = true
		if v, ok := values[key]; ok {
			lines[i] = key + "=" + v
		}
	}

	var missing []string
	for _, key := range RecognizedKeys {
		v, ok := values[key]
		if !ok || seen[key] {
			continue
		}
		missing = append(missing, key+"="+v)
	}
	if len(missing) > 0 {
		for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
			lines = lines[1:]
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, "# Values missing from the template, added during setup")
		lines = append(lines, missing...)
	}

	return strings.Join(lines, "\n") + "\n"
}

// EnvTemplatePath returns the env template shipped inside the cloned
// repository, materializing the built-in template when the checkout does not
// carry one. Template completeness is not guaranteed either way; see
// substituteEnv.
func EnvTemplatePath(targetDir string) (string, error) {
	path := filepath.Join(targetDir, ".env.example")
	if fileExists(path) {
		return path, nil
	}
	b, err := templateFS.ReadFile("templates/env.example")
	if err != nil {
		return "", fmt.Errorf("load built-in env template: %w", err)
	}
	if err := os.WriteFile(path, b, 0o640); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// ReadDotEnv parses a KEY=VALUE file, skipping comments and blank lines.
func ReadDotEnv(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	vars := map[string]string{}
	s := bufio.NewScanner(file)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		k := strings.TrimSpace(name)
		v := strings.Trim(strings.TrimSpace(value), `"`)
		vars[k] = v
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return vars, nil
}
