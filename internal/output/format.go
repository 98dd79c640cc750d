// Package output provides terminal output helpers for the chlog CLI. It is
// kept dependency-light to avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	successMark = color.New(color.FgGreen, color.Bold).SprintFunc()
	fileName    = color.New(color.FgCyan).SprintFunc()
	dimText     = color.New(color.Faint).SprintFunc()
)

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the terminal width, defaulting to 80 when
// unavailable.
func TerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// PrintUpdated prints the post-run summary line.
func PrintUpdated(w io.Writer, file, version string) {
	fmt.Fprintf(w, "%s %s updated to %s\n", successMark("✓"), fileName(file), version)
}

// PrintNoChanges reports the no-op outcome. It is informational, not an
// error: nothing was written.
func PrintNoChanges(w io.Writer, scanned int) {
	fmt.Fprintf(w, "No changes found %s\n", dimText(fmt.Sprintf("(%d commits scanned)", scanned)))
}

// PrintDryRun prints the block that a real run would have inserted.
func PrintDryRun(w io.Writer, file, version, block string) {
	fmt.Fprintf(w, "Would update %s to %s:\n\n%s", fileName(file), version, block)
}
