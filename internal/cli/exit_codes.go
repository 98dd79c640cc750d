package cli

// Exit codes for the chlog CLI. "No changes" is a successful run but gets
// its own code so scripts can gate release steps on whether the changelog
// actually moved.
const (
	// ExitUpdated indicates the changelog and version file were updated.
	ExitUpdated = 0

	// ExitNoChanges indicates no rule matched any commit; nothing was
	// written.
	ExitNoChanges = 1

	// ExitFailure indicates an uncategorized failure.
	ExitFailure = 2

	// ExitInvalidArguments indicates invalid command arguments.
	ExitInvalidArguments = 3

	// ExitGitError indicates the repository could not be read.
	ExitGitError = 4

	// ExitConfigError indicates the configuration failed to load or
	// validate.
	ExitConfigError = 5

	// ExitWriteError indicates the changelog or version file could not be
	// written.
	ExitWriteError = 6
)
