package config

import (
	"fmt"

	"github.com/raveheart1/chlog/internal/classify"
	"github.com/raveheart1/chlog/internal/commits"
)

// RuleSpec is the declarative form of a classification rule as it appears in
// .chlog.yml. Exactly one matcher must be set: Types, Breaking, or Fallback.
// Rules are evaluated independently and in order, so a commit may land under
// several sections.
type RuleSpec struct {
	// Heading is the section heading in the changelog.
	Heading string `koanf:"heading" yaml:"heading"`
	// Rank is the severity; lower values bump a more significant version
	// component.
	Rank int `koanf:"rank" yaml:"rank"`
	// Types matches commits whose conventional type is in the list.
	Types []string `koanf:"types" yaml:"types,omitempty"`
	// Breaking matches commits carrying the breaking-change marker.
	Breaking bool `koanf:"breaking" yaml:"breaking,omitempty"`
	// Fallback matches commits whose type is not claimed by any typed rule
	// in the list.
	Fallback bool `koanf:"fallback" yaml:"fallback,omitempty"`
}

// Compile turns the declarative rule list into classifier rules. A fallback
// rule's predicate excludes only the types claimed by the typed rules in the
// same list; it says nothing about the breaking marker, which keeps the
// commit/section relationship many-to-many.
func Compile(specs []RuleSpec) ([]classify.Rule, error) {
	claimed := make(map[string]bool)
	for _, s := range specs {
		for _, t := range s.Types {
			claimed[t] = true
		}
	}

	rules := make([]classify.Rule, 0, len(specs))
	for _, s := range specs {
		match, err := s.predicate(claimed)
		if err != nil {
			return nil, err
		}
		rules = append(rules, classify.Rule{Heading: s.Heading, Rank: s.Rank, Match: match})
	}
	return rules, nil
}

func (s RuleSpec) predicate(claimed map[string]bool) (func(commits.Commit) bool, error) {
	switch {
	case s.Breaking:
		return func(c commits.Commit) bool { return c.Breaking }, nil
	case len(s.Types) > 0:
		types := make(map[string]bool, len(s.Types))
		for _, t := range s.Types {
			types[t] = true
		}
		return func(c commits.Commit) bool { return types[c.Type] }, nil
	case s.Fallback:
		return func(c commits.Commit) bool { return !claimed[c.Type] }, nil
	}
	return nil, fmt.Errorf("rule %q: one of types, breaking, or fallback must be set", s.Heading)
}

// ValidateRules checks the declarative rule list without compiling it.
func ValidateRules(specs []RuleSpec) error {
	if len(specs) == 0 {
		return fmt.Errorf("config: at least one classification rule is required")
	}
	for i, s := range specs {
		if s.Heading == "" {
			return fmt.Errorf("config: rules[%d]: heading must not be empty", i)
		}
		if s.Rank < 0 || s.Rank > 2 {
			return fmt.Errorf("config: rule %q: rank %d out of range 0-2", s.Heading, s.Rank)
		}
		if _, err := s.predicate(nil); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}
