// Package cli implements the chlog command tree. Running chlog with no
// subcommand is the same as `chlog update`.
package cli

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cerrors "github.com/raveheart1/chlog/internal/errors"
)

var (
	flagConfig string
	flagPlain  bool
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "chlog [dir]",
	Short: "Derive a changelog and version bump from conventional commits",
	Long: `chlog reads the commits made since the changelog was last updated,
classifies them by their conventional-commit subject (type(scope)!: message),
inserts a dated section into the changelog, and bumps the version file by the
most significant change found.

Running chlog with no subcommand is the same as 'chlog update'.`,
	Example: `  chlog                       # update the current directory
  chlog ~/src/project         # update another working directory
  chlog update --dry-run      # show the section without writing
  chlog init                  # write a commented .chlog.yml template`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runUpdate,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Project config path (default: .chlog.yml in the working directory)")
	pf.BoolVar(&flagPlain, "plain", false, "Plain output (no colors or spinner)")
	pf.BoolVar(&flagDebug, "debug", false, "Verbose diagnostics on stderr")

	pf.StringVar(&updateChangelogFlag, "changelog", "", "Changelog filename override")
	pf.StringVar(&updateVersionFileFlag, "version-file", "", "Version filename override")
	pf.StringVar(&updateHeadingFlag, "heading", "", "Top-level heading override")
	pf.BoolVar(&updateDryRunFlag, "dry-run", false, "Print the section that would be inserted, write nothing")
}

// Execute runs the root command and maps the outcome to a process exit
// code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return ExitUpdated
	}

	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}

	if cliErr := cerrors.AsCLIError(err); cliErr != nil {
		cerrors.PrintError(cliErr)
		return exitCodeFor(cliErr.Category)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return ExitFailure
}

func exitCodeFor(category cerrors.ErrorCategory) int {
	switch category {
	case cerrors.Argument:
		return ExitInvalidArguments
	case cerrors.Configuration:
		return ExitConfigError
	case cerrors.Git:
		return ExitGitError
	case cerrors.Write:
		return ExitWriteError
	default:
		return ExitFailure
	}
}
