// Package classify evaluates the ordered classification-rule list against
// parsed commits and assembles the per-rule changelog sections.
package classify

import (
	"fmt"
	"strings"

	"github.com/raveheart1/chlog/internal/commits"
)

// Rule pairs a section heading with a severity rank and a predicate over a
// single commit. Lower ranks are more significant and decide which version
// component gets bumped.
type Rule struct {
	Heading string
	Rank    int
	Match   func(commits.Commit) bool
}

// Section is one rendered group: its heading, the rank of the rule that
// produced it, and the concatenated formatted entries.
type Section struct {
	Heading string
	Rank    int
	Body    string
}

// Apply evaluates every rule independently against the full commit list, so
// a single commit may appear under several sections (a breaking feat lands
// under both the breaking rule and the feat rule). Rules with no matches are
// dropped. Entry order within a section follows the input order, newest
// first.
func Apply(rules []Rule, list []commits.Commit) []Section {
	var sections []Section
	for _, rule := range rules {
		var b strings.Builder
		for _, c := range list {
			if rule.Match(c) {
				b.WriteString(FormatEntry(c))
			}
		}
		if b.Len() == 0 {
			continue
		}
		sections = append(sections, Section{
			Heading: rule.Heading,
			Rank:    rule.Rank,
			Body:    b.String(),
		})
	}
	return sections
}

// FormatEntry renders one commit as a list entry:
//
//	" - message (hash)"            without a scope
//	" - *scope* : message (hash)"  with one
//
// The asterisks are literal markup.
func FormatEntry(c commits.Commit) string {
	if c.Scope != "" {
		return fmt.Sprintf(" - *%s* : %s (%s)\n", c.Scope, c.Message, c.Hash)
	}
	return fmt.Sprintf(" - %s (%s)\n", c.Message, c.Hash)
}

// Severity returns the minimum rank among the sections, i.e. the most
// significant triggered rule. Callers short-circuit on an empty
// classification before any version math, so sections must be non-empty.
func Severity(sections []Section) int {
	min := sections[0].Rank
	for _, s := range sections[1:] {
		if s.Rank < min {
			min = s.Rank
		}
	}
	return min
}
