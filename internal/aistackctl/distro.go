package aistackctl

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrUnsupportedDistro is returned when the host distribution cannot be
// mapped to a package-manager profile. Installation must not proceed past
// this point.
var ErrUnsupportedDistro = errors.New("unsupported distribution")

type FirewallBackend string

const (
	FirewallUFW       FirewallBackend = "ufw"
	FirewallFirewalld FirewallBackend = "firewalld"
)

// DistroProfile carries the resolved package-manager command set for a
// detected OS family. Immutable once detected.
type DistroProfile struct {
	ID             string
	PackageManager string
	UpdateArgs     []string
	InstallArgs    []string
	BasePackages   []string
	Firewall       FirewallBackend
}

var distroProfiles = map[string]DistroProfile{
	"debian": {
		ID:             "debian",
		PackageManager: "apt-get",
		UpdateArgs:     []string{"update"},
		InstallArgs:    []string{"install", "-y"},
		BasePackages: []string{
			"docker.io", "docker-compose-v2", "nginx", "certbot",
			"python3-certbot-nginx", "git", "ufw",
		},
		Firewall: FirewallUFW,
	},
	"fedora": {
		ID:             "fedora",
		PackageManager: "dnf",
		UpdateArgs:     []string{"makecache"},
		InstallArgs:    []string{"install", "-y"},
		BasePackages: []string{
			"docker", "docker-compose", "nginx", "certbot",
			"python3-certbot-nginx", "git", "firewalld",
		},
		Firewall: FirewallFirewalld,
	},
	"rhel": {
		ID:             "rhel",
		PackageManager: "yum",
		UpdateArgs:     []string{"makecache"},
		InstallArgs:    []string{"install", "-y"},
		BasePackages: []string{
			"docker", "docker-compose", "nginx", "certbot",
			"python3-certbot-nginx", "git", "firewalld",
		},
		Firewall: FirewallFirewalld,
	},
	"arch": {
		ID:             "arch",
		PackageManager: "pacman",
		UpdateArgs:     []string{"-Sy"},
		InstallArgs:    []string{"-S", "--noconfirm"},
		BasePackages: []string{
			"docker", "docker-compose", "nginx", "certbot",
			"certbot-nginx", "git", "ufw",
		},
		Firewall: FirewallUFW,
	},
	"suse": {
		ID:             "suse",
		PackageManager: "zypper",
		UpdateArgs:     []string{"refresh"},
		InstallArgs:    []string{"install", "-y"},
		BasePackages: []string{
			"docker", "docker-compose", "nginx", "certbot",
			"python3-certbot-nginx", "git", "firewalld",
		},
		Firewall: FirewallFirewalld,
	},
}

// distroAliases maps /etc/os-release IDs onto the profile families above.
var distroAliases = map[string]string{
	"debian":              "debian",
	"ubuntu":              "debian",
	"raspbian":            "debian",
	"linuxmint":           "debian",
	"pop":                 "debian",
	"fedora":              "fedora",
	"centos":              "rhel",
	"rhel":                "rhel",
	"rocky":               "rhel",
	"almalinux":           "rhel",
	"arch":                "arch",
	"manjaro":             "arch",
	"opensuse-leap":       "suse",
	"opensuse-tumbleweed": "suse",
	"sles":                "suse",
}

// DetectDistro identifies the host OS family and returns its package-manager
// profile. An unrecognized distribution is a hard error: no partial support
// is attempted.
func DetectDistro() (DistroProfile, error) {
	id, err := detectDistroID()
	if err != nil {
		return DistroProfile{}, err
	}
	return lookupDistro(id)
}

func detectDistroID() (string, error) {
	if b, err := os.ReadFile("/etc/os-release"); err == nil {
		if id := parseOSReleaseID(string(b)); id != "" {
			return id, nil
		}
	}
	// Legacy release markers for hosts without os-release.
	legacy := []struct {
		path string
		id   string
	}{
		{"/etc/debian_version", "debian"},
		{"/etc/redhat-release", "rhel"},
		{"/etc/arch-release", "arch"},
		{"/etc/SuSE-release", "sles"},
	}
	for _, m := range legacy {
		if _, err := os.Stat(m.path); err == nil {
			return m.id, nil
		}
	}
	return "", fmt.Errorf("%w: no release descriptor found", ErrUnsupportedDistro)
}

// parseOSReleaseID extracts the normalized ID field from os-release content.
func parseOSReleaseID(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "ID=") {
			continue
		}
		id := strings.TrimPrefix(line, "ID=")
		id = strings.Trim(id, `"'`)
		return strings.ToLower(strings.TrimSpace(id))
	}
	return ""
}

func lookupDistro(id string) (DistroProfile, error) {
	family, ok := distroAliases[strings.ToLower(id)]
	if !ok {
		return DistroProfile{}, fmt.Errorf("%w: %s", ErrUnsupportedDistro, id)
	}
	return distroProfiles[family], nil
}
