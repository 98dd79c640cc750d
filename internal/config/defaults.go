package config

// Default filenames and heading. Changelog.org keeps the org-mode lineage of
// the changelog format; all three can be overridden per project.
const (
	DefaultChangelogFile = "Changelog.org"
	DefaultVersionFile   = "VERSION"
	DefaultHeading       = "Changelog"
)

// DefaultRules returns the stock taxonomy. BREAKING CHANGES matches the `!`
// marker regardless of type; the catch-all matches every type not claimed by
// another rule, so a breaking feat is counted under both the breaking and
// feat sections but not under the catch-all.
func DefaultRules() []RuleSpec {
	return []RuleSpec{
		{Heading: "BREAKING CHANGES", Rank: 0, Breaking: true},
		{Heading: "New features", Rank: 1, Types: []string{"feat"}},
		{Heading: "Bugfixes", Rank: 2, Types: []string{"fix"}},
		{Heading: "Other changes", Rank: 2, Fallback: true},
	}
}

// GetDefaults returns the default configuration values keyed for koanf.
// Rules default in code after unmarshal so a partial rules list in a config
// file fully replaces the taxonomy instead of merging with it.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"changelog":    DefaultChangelogFile,
		"version_file": DefaultVersionFile,
		"heading":      DefaultHeading,
	}
}

// GetDefaultConfigTemplate returns a fully commented config template written
// by `chlog init`.
func GetDefaultConfigTemplate() string {
	return `# chlog configuration
# All keys are optional; the values below are the defaults.

changelog: Changelog.org     # Changelog document, relative to the working directory
version_file: VERSION        # File holding the current version triple
heading: Changelog           # Top-level heading the version sections nest under

# Classification taxonomy. Rules are evaluated independently and in order;
# a commit may appear under several sections. Rank decides the version bump:
# 0 = major, 1 = minor, 2 = patch. The most severe (lowest) triggered rank
# wins. Each rule needs exactly one matcher: breaking, types, or fallback.
#rules:
#  - heading: BREAKING CHANGES
#    rank: 0
#    breaking: true
#  - heading: New features
#    rank: 1
#    types: [feat]
#  - heading: Bugfixes
#    rank: 2
#    types: [fix]
#  - heading: Other changes
#    rank: 2
#    fallback: true
`
}
