// Package config provides configuration management for chlog using koanf.
// Values are loaded with priority: CHLOG_* environment variables > project
// config (.chlog.yml, legacy .chlog.json) > built-in defaults. The
// classification taxonomy is part of the configuration so custom commit
// conventions can map to their own sections and severity ranks.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

const (
	// ProjectConfigFile is the YAML project config, resolved against the
	// working directory.
	ProjectConfigFile = ".chlog.yml"
	// LegacyProjectConfigFile is the deprecated JSON form, still loaded
	// with a migration warning.
	LegacyProjectConfigFile = ".chlog.json"
)

// Configuration holds the three file/heading knobs and the ordered
// classification taxonomy.
type Configuration struct {
	// ChangelogFile is the changelog document name inside the working
	// directory.
	ChangelogFile string `koanf:"changelog"`
	// VersionFile holds the persisted version triple.
	VersionFile string `koanf:"version_file"`
	// Heading is the top-level heading all version sections nest under.
	Heading string `koanf:"heading"`
	// Rules is the ordered classification taxonomy. Empty means the stock
	// taxonomy.
	Rules []RuleSpec `koanf:"rules"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// Dir is the working directory the project config is resolved against.
	Dir string
	// ProjectConfigPath overrides the project config location entirely.
	ProjectConfigPath string
	// WarningWriter receives deprecation warnings (default: os.Stderr).
	WarningWriter io.Writer
	// SkipWarnings suppresses deprecation warnings.
	SkipWarnings bool
}

// Load loads configuration for the given working directory.
func Load(dir string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{Dir: dir})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	warningWriter := opts.WarningWriter
	if warningWriter == nil {
		warningWriter = os.Stderr
	}

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if err := loadProjectConfig(k, opts, warningWriter); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider("CHLOG_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if len(cfg.Rules) == 0 {
		cfg.Rules = DefaultRules()
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadProjectConfig loads the project-level file, YAML preferred over legacy
// JSON. A custom path always wins and must exist.
func loadProjectConfig(k *koanf.Koanf, opts LoadOptions, warningWriter io.Writer) error {
	if opts.ProjectConfigPath != "" {
		return loadYAMLConfig(k, opts.ProjectConfigPath)
	}

	yamlPath := filepath.Join(opts.Dir, ProjectConfigFile)
	legacyPath := filepath.Join(opts.Dir, LegacyProjectConfigFile)

	switch {
	case fileExists(yamlPath):
		if err := loadYAMLConfig(k, yamlPath); err != nil {
			return err
		}
		if fileExists(legacyPath) && !opts.SkipWarnings {
			fmt.Fprintf(warningWriter, "Warning: legacy JSON config at %s ignored (using %s)\n", legacyPath, yamlPath)
		}
	case fileExists(legacyPath):
		if err := k.Load(file.Provider(legacyPath), json.Parser()); err != nil {
			return fmt.Errorf("loading legacy config %s: %w", legacyPath, err)
		}
		if !opts.SkipWarnings {
			fmt.Fprintf(warningWriter, "Warning: using deprecated JSON config at %s; migrate it to %s\n", legacyPath, ProjectConfigFile)
		}
	}
	return nil
}

// loadYAMLConfig validates the YAML syntax up front so a broken file
// produces a parse error rather than silently falling back to defaults.
func loadYAMLConfig(k *koanf.Koanf, path string) error {
	if err := validateYAMLSyntax(path); err != nil {
		return err
	}
	if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
		return fmt.Errorf("loading config %s: %w", path, err)
	}
	return nil
}

func validateYAMLSyntax(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	return nil
}

// Validate checks the loaded configuration for holes a run would trip over.
func Validate(cfg *Configuration) error {
	if cfg.ChangelogFile == "" {
		return fmt.Errorf("config: changelog filename must not be empty")
	}
	if cfg.VersionFile == "" {
		return fmt.Errorf("config: version filename must not be empty")
	}
	if cfg.Heading == "" {
		return fmt.Errorf("config: heading must not be empty")
	}
	return ValidateRules(cfg.Rules)
}

// envTransform converts environment variable names to config keys.
// Example: CHLOG_VERSION_FILE -> version_file.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "CHLOG_"))
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
