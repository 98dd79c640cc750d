// Package semver implements the three-component version arithmetic behind
// chlog's version bumps. A severity rank selects the component to increment:
// rank 0 bumps major and zeroes the rest, rank 1 bumps minor and zeroes
// patch, rank 2 bumps patch alone.
package semver

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is an exact triple of non-negative integers.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Parse parses a dot-separated triple (e.g., "1.4.2") into a Version.
// Returns an error if the format is invalid or any component is negative.
func Parse(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version format: %s (expected X.Y.Z)", s)
	}

	major, err := parseComponent(parts[0], "major")
	if err != nil {
		return Version{}, err
	}
	minor, err := parseComponent(parts[1], "minor")
	if err != nil {
		return Version{}, err
	}
	patch, err := parseComponent(parts[2], "patch")
	if err != nil {
		return Version{}, err
	}

	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

func parseComponent(s, name string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid %s version: %s", name, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative %s version: %s", name, s)
	}
	return n, nil
}

// String returns the version in X.Y.Z format.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Bump returns the next version for a change of the given severity. The
// three components are walked by index: indexes below the severity are kept,
// the index equal to it is incremented, and everything after is reset to
// zero. Callers short-circuit before Bump when no rule triggered at all.
func Bump(v Version, severity int) Version {
	components := [3]int{v.Major, v.Minor, v.Patch}
	for i := range components {
		switch {
		case i < severity:
			// keep
		case i == severity:
			components[i]++
		default:
			components[i] = 0
		}
	}
	return Version{Major: components[0], Minor: components[1], Patch: components[2]}
}
