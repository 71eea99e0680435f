package aistackctl

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	domainRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?)*\.[a-zA-Z]{2,}$`)
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// ValidateDomain checks that s looks like a multi-label hostname. Consecutive
// dots and leading/trailing dots or hyphens are rejected by the label
// structure of the pattern.
func ValidateDomain(s string) error {
	if !domainRegex.MatchString(s) {
		return fmt.Errorf("invalid domain: %q", s)
	}
	return nil
}

// IsBareDomain reports whether s has fewer than three dot-separated labels,
// i.e. looks like a root domain rather than a subdomain. This is a soft
// warning condition, not a validation failure.
func IsBareDomain(s string) bool {
	return strings.Count(s, ".") < 2
}

func ValidateEmail(s string) error {
	if !emailRegex.MatchString(s) {
		return fmt.Errorf("invalid email: %q", s)
	}
	return nil
}

// ValidateRepoURL requires an HTTP(S) scheme and a non-empty remainder.
func ValidateRepoURL(s string) error {
	var rest string
	switch {
	case strings.HasPrefix(s, "https://"):
		rest = strings.TrimPrefix(s, "https://")
	case strings.HasPrefix(s, "http://"):
		rest = strings.TrimPrefix(s, "http://")
	default:
		return fmt.Errorf("repository URL must start with http:// or https://: %q", s)
	}
	if strings.TrimSpace(rest) == "" {
		return fmt.Errorf("repository URL has no host: %q", s)
	}
	return nil
}
