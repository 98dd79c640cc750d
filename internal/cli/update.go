package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/config"
	cerrors "github.com/raveheart1/chlog/internal/errors"
	gitsrc "github.com/raveheart1/chlog/internal/git"
	"github.com/raveheart1/chlog/internal/output"
	"github.com/raveheart1/chlog/internal/update"
)

var (
	updateChangelogFlag   string
	updateVersionFileFlag string
	updateHeadingFlag     string
	updateDryRunFlag      bool
)

var updateCmd = &cobra.Command{
	Use:   "update [dir]",
	Short: "Update the changelog and version from new commits",
	Long: `Update the changelog and version file from the commits made since the
changelog was last touched.

Commits are classified by their conventional-commit subject. The most
significant matching rule decides the bump: breaking changes bump major, new
features bump minor, everything else bumps patch. When no rule matches, both
files are left untouched and chlog exits with code 1.

Examples:
  chlog update                       # update the current directory
  chlog update ~/src/project         # update another working directory
  chlog update --dry-run             # show the section without writing
  chlog update --heading History     # nest sections under '* History'`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	if flagPlain {
		color.NoColor = true
	}

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return cerrors.NewWithUsage(
			fmt.Sprintf("not a directory: %s", dir),
			"chlog [dir]",
			"Pass the repository working directory, or run chlog from inside one",
		)
	}

	cfg, err := config.LoadWithOptions(config.LoadOptions{
		Dir:               dir,
		ProjectConfigPath: flagConfig,
		WarningWriter:     cmd.ErrOrStderr(),
	})
	if err != nil {
		return cerrors.Wrap(err, cerrors.Configuration, "loading configuration",
			"Run 'chlog init' to write a fresh config template")
	}
	applyFlagOverrides(cmd, cfg)

	updater := update.New(cfg, gitsrc.Repo{})
	if flagDebug {
		updater.Debug = func(format string, args ...any) {
			fmt.Fprintf(cmd.ErrOrStderr(), "[debug] "+format+"\n", args...)
		}
	}

	spin := startSpinner()
	res, err := updater.Run(dir, updateDryRunFlag)
	stopSpinner(spin)
	if err != nil {
		return err
	}

	switch {
	case !res.Updated:
		output.PrintNoChanges(cmd.OutOrStdout(), res.Scanned)
		return NewExitError(ExitNoChanges)
	case updateDryRunFlag:
		output.PrintDryRun(cmd.OutOrStdout(), cfg.ChangelogFile, "v"+res.Version.String(), res.Block)
		return nil
	default:
		output.PrintUpdated(cmd.OutOrStdout(), cfg.ChangelogFile, "v"+res.Version.String())
		return nil
	}
}

// applyFlagOverrides lets the three knob flags win over file and environment
// configuration.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Configuration) {
	if cmd.Flags().Changed("changelog") {
		cfg.ChangelogFile = updateChangelogFlag
	}
	if cmd.Flags().Changed("version-file") {
		cfg.VersionFile = updateVersionFileFlag
	}
	if cmd.Flags().Changed("heading") {
		cfg.Heading = updateHeadingFlag
	}
}

// startSpinner shows progress while the history scan runs. Skipped when the
// output is not a terminal or --plain was given.
func startSpinner() *spinner.Spinner {
	if flagPlain || !output.IsTerminal(os.Stdout) {
		return nil
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " scanning commit history..."
	s.Start()
	return s
}

func stopSpinner(s *spinner.Spinner) {
	if s != nil {
		s.Stop()
	}
}
