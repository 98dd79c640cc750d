package commits

import (
	"regexp"
	"strings"
)

// The two conventional grammars, tried in order. Keeping them separate
// (rather than one combined pattern) preserves which grammar claims a
// subject that could superficially match both.
var (
	typedPattern  = regexp.MustCompile(`^([a-z]+)(!?): (.*)$`)
	scopedPattern = regexp.MustCompile(`^([a-z]+)\(([^()]*)\)(!?): (.*)$`)
)

// ParseLog splits raw log text into commits, one per line, preserving the
// newest-first input order. Lines that do not carry at least a hash, an
// author email, and a subject are skipped.
func ParseLog(raw string) []Commit {
	var out []Commit
	for _, line := range strings.Split(raw, "\n") {
		if c, ok := ParseLine(line); ok {
			out = append(out, c)
		}
	}
	return out
}

// ParseLine parses one `<hash> <email> <subject>` log line. The subject keeps
// its internal whitespace. Returns false when the line holds fewer than three
// whitespace-separated tokens.
func ParseLine(line string) (Commit, bool) {
	hash, rest, ok := cutToken(line)
	if !ok {
		return Commit{}, false
	}
	email, rest, ok := cutToken(rest)
	if !ok {
		return Commit{}, false
	}
	subject := strings.TrimSpace(rest)
	if subject == "" {
		return Commit{}, false
	}

	c := Commit{Hash: hash, Email: email, Subject: subject}
	c.Type, c.Scope, c.Breaking, c.Message = parseSubject(subject)
	return c, true
}

// cutToken splits off the first whitespace-delimited token. ok is false when
// nothing follows the token.
func cutToken(s string) (token, rest string, ok bool) {
	s = strings.TrimLeft(s, " \t")
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}

// parseSubject applies the grammars in order: bare `type!?: message` first,
// then `type(scope)!?: message`, then the verbatim fallback.
func parseSubject(subject string) (typ, scope string, breaking bool, message string) {
	if m := typedPattern.FindStringSubmatch(subject); m != nil {
		return m[1], "", m[2] == "!", m[3]
	}
	if m := scopedPattern.FindStringSubmatch(subject); m != nil {
		return m[1], m[2], m[3] == "!", m[4]
	}
	return "", "", false, subject
}
