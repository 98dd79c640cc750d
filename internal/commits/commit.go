// Package commits turns raw git log lines into typed commit records and
// decomposes conventional-commit subjects (`type[(scope)][!]: message`) into
// their fields.
package commits

// Commit is one parsed log line. It is created once at parse time and never
// mutated. Type and Scope are empty when the subject does not follow the
// conventional grammar; Message then carries the full subject verbatim.
type Commit struct {
	// Hash is the short commit identifier.
	Hash string
	// Email identifies the author.
	Email string
	// Subject is the raw first line of the commit message.
	Subject string
	// Type is the conventional-commit type token ("feat", "fix", ...).
	Type string
	// Scope is the parenthesized scope token, without parentheses.
	Scope string
	// Breaking is true when a single `!` appears immediately before the
	// colon.
	Breaking bool
	// Message is the human-readable remainder after the type/scope prefix.
	Message string
}
