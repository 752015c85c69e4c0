package model

import (
	"strings"

	"golang.org/x/mod/semver"
)

// develVersion is the version the Go toolchain reports for binaries built
// from a local checkout.
const develVersion = "(devel)"

// Version represents a module version.
type Version string

// NewVersion creates a new version from a version string.
func NewVersion(version string) Version {
	return Version(strings.TrimSpace(version))
}

// IsValid checks if the version is a valid semantic version.
func (v Version) IsValid() bool {
	return semver.IsValid(string(v))
}

// String returns the string representation of the version. An empty version
// is reported as "(devel)".
func (v Version) String() string {
	if v == "" {
		return develVersion
	}
	return string(v)
}
