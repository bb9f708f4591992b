package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckCompatible reports whether version satisfies the requires constraint.
// An empty constraint, or a version that is not semver (development builds),
// is always compatible. A malformed constraint is an error.
func CheckCompatible(requires, version string) (bool, error) {
	if strings.TrimSpace(requires) == "" {
		return true, nil
	}

	constraint, err := semver.NewConstraint(requires)
	if err != nil {
		return false, fmt.Errorf("parsing version constraint %q: %w", requires, err)
	}

	v, err := parseSemver(version)
	if err != nil {
		return true, nil
	}
	return constraint.Check(v), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
