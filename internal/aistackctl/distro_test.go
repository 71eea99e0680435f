package aistackctl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOSReleaseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "plain id",
			content: "NAME=\"Debian GNU/Linux\"\nID=debian\nVERSION_ID=\"12\"\n",
			want:    "debian",
		},
		{
			name:    "quoted id",
			content: "ID=\"opensuse-leap\"\nVERSION_ID=\"15.5\"\n",
			want:    "opensuse-leap",
		},
		{
			name:    "single quoted id",
			content: "ID='ubuntu'\n",
			want:    "ubuntu",
		},
		{
			name:    "uppercase normalized",
			content: "ID=Fedora\n",
			want:    "fedora",
		},
		{
			name:    "id like line ignored",
			content: "ID_LIKE=debian\nVERSION=1\n",
			want:    "",
		},
		{
			name:    "missing id",
			content: "NAME=Something\n",
			want:    "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, parseOSReleaseID(tt.content))
		})
	}
}

func TestLookupDistroAliases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id         string
		wantFamily string
		wantPM     string
	}{
		{"debian", "debian", "apt-get"},
		{"ubuntu", "debian", "apt-get"},
		{"pop", "debian", "apt-get"},
		{"fedora", "fedora", "dnf"},
		{"centos", "rhel", "yum"},
		{"rocky", "rhel", "yum"},
		{"almalinux", "rhel", "yum"},
		{"arch", "arch", "pacman"},
		{"manjaro", "arch", "pacman"},
		{"opensuse-tumbleweed", "suse", "zypper"},
		{"sles", "suse", "zypper"},
		{"CentOS", "rhel", "yum"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.id, func(t *testing.T) {
			t.Parallel()
			profile, err := lookupDistro(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFamily, profile.ID)
			assert.Equal(t, tt.wantPM, profile.PackageManager)
			assert.NotEmpty(t, profile.BasePackages)
			assert.NotEmpty(t, profile.Firewall)
		})
	}
}

func TestLookupDistroUnsupported(t *testing.T) {
	t.Parallel()

	_, err := lookupDistro("gentoo")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedDistro))
	assert.Contains(t, err.Error(), "gentoo")
}

func TestDistroProfilesCoverAliases(t *testing.T) {
	t.Parallel()

	for id, family := range distroAliases {
		_, ok := distroProfiles[family]
		assert.True(t, ok, "alias %s points at unknown family %s", id, family)
	}
}
