// Package changelog renders classified commits into an org-mode changelog
// document. The existing document is treated as opaque text with a single
// located insertion point: everything already present is preserved byte for
// byte, and a run only ever inserts.
package changelog

import (
	"fmt"
	"os"
	"strings"

	"github.com/raveheart1/chlog/internal/classify"
	"github.com/raveheart1/chlog/internal/semver"
)

// Render produces the block inserted for one release: the dated version
// heading, a blank line, then every section in the order the classifier
// produced them (configured rule order, not severity order).
func Render(v semver.Version, dateISO string, sections []classify.Section) string {
	var b strings.Builder
	fmt.Fprintf(&b, "** [%s] v%s\n\n", dateISO, v)
	for _, s := range sections {
		fmt.Fprintf(&b, "*** %s\n%s\n", s.Heading, s.Body)
	}
	return b.String()
}

// Insert splices block into doc immediately after the top-level heading
// line. When the heading is absent it is created at the document start; an
// existing heading is never duplicated across runs.
func Insert(doc, heading, block string) string {
	headingLine := "* " + heading
	lines := strings.SplitAfter(doc, "\n")

	for i, line := range lines {
		if strings.TrimRight(line, "\r\n") != headingLine {
			continue
		}
		var b strings.Builder
		for _, l := range lines[:i+1] {
			b.WriteString(l)
		}
		if !strings.HasSuffix(line, "\n") {
			// heading was the last line of a file without a final newline
			b.WriteString("\n")
		}
		b.WriteString(block)
		for _, l := range lines[i+1:] {
			b.WriteString(l)
		}
		return b.String()
	}

	return headingLine + "\n" + block + doc
}

// UpdateFile reads the document at path (a missing file is an empty
// document), inserts block under heading, and writes the result back.
func UpdateFile(path, heading, block string) error {
	doc := ""
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		doc = string(data)
	case !os.IsNotExist(err):
		return fmt.Errorf("reading changelog %s: %w", path, err)
	}

	updated := Insert(doc, heading, block)
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("writing changelog %s: %w", path, err)
	}
	return nil
}
