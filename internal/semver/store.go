package semver

import (
	"fmt"
	"os"
	"strings"
)

// ReadFile returns the version persisted at path. A missing, unreadable, or
// malformed file yields 0.0.0 rather than an error, so a first run starts
// counting from scratch.
func ReadFile(path string) Version {
	data, err := os.ReadFile(path)
	if err != nil {
		return Version{}
	}
	v, err := Parse(strings.TrimSpace(string(data)))
	if err != nil {
		return Version{}
	}
	return v
}

// WriteFile overwrites path with the dot-joined triple, no trailing newline.
func WriteFile(path string, v Version) error {
	if err := os.WriteFile(path, []byte(v.String()), 0o644); err != nil {
		return fmt.Errorf("writing version file %s: %w", path, err)
	}
	return nil
}
