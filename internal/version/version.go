// Package version reads the version strings carried by documents, such as the asyncapi field,
// and compares them with semantic versioning rules.
package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is a strict major.minor.patch version with an optional prerelease.
type Version struct {
	Major      int
	Minor      int
	Patch      int
	Prerelease string
}

// New creates a release version.
func New(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// Parse reads a strict major.minor.patch version. Partial versions and a leading "v" are rejected.
func Parse(s string) (Version, error) {
	sv, err := semver.StrictNewVersion(s)
	if err != nil {
		return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
	}
	return Version{
		Major:      int(sv.Major()),
		Minor:      int(sv.Minor()),
		Patch:      int(sv.Patch()),
		Prerelease: sv.Prerelease(),
	}, nil
}

func (v Version) String() string {
	return v.semver().String()
}

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal to or after other.
// A prerelease sorts before the release it precedes.
func (v Version) Compare(other Version) int {
	return v.semver().Compare(other.semver())
}

// SameMajor reports whether v and other share a major version, the unit of compatibility between documents.
func (v Version) SameMajor(other Version) bool {
	return v.Major == other.Major
}

// Satisfies reports whether v matches a constraint such as ">= 3.0.0, < 4.0.0".
func (v Version) Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("invalid constraint %q: %w", constraint, err)
	}
	return c.Check(v.semver()), nil
}

func (v Version) semver() *semver.Version {
	return semver.New(uint64(v.Major), uint64(v.Minor), uint64(v.Patch), v.Prerelease, "")
}
