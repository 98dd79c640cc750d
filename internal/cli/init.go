package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/config"
	cerrors "github.com/raveheart1/chlog/internal/errors"
)

var initForceFlag bool

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a commented .chlog.yml config template",
	Long: `Write a commented .chlog.yml template into the working directory.

The template documents the three knobs (changelog filename, version filename,
top heading) and the classification taxonomy, all at their default values.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		path := filepath.Join(dir, config.ProjectConfigFile)

		if !initForceFlag {
			if _, err := os.Stat(path); err == nil {
				return cerrors.New(cerrors.Argument, path+" already exists",
					"Use --force to overwrite it")
			}
		}

		if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
			return cerrors.Wrap(err, cerrors.Write, "writing config template")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForceFlag, "force", false, "Overwrite an existing config file")
}
