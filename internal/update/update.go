// Package update wires the chlog pipeline into one run: find the last
// changelog-touching commit, list and parse the commits after it, classify
// them, bump the version, and persist the new changelog section and version
// file. Data flows strictly one way through those stages.
package update

import (
	"path/filepath"
	"time"

	"github.com/raveheart1/chlog/internal/changelog"
	"github.com/raveheart1/chlog/internal/classify"
	"github.com/raveheart1/chlog/internal/commits"
	"github.com/raveheart1/chlog/internal/config"
	cerrors "github.com/raveheart1/chlog/internal/errors"
	gitsrc "github.com/raveheart1/chlog/internal/git"
	"github.com/raveheart1/chlog/internal/semver"
)

// Updater runs the pipeline for one working directory.
type Updater struct {
	Config *config.Configuration
	Source gitsrc.Source
	// Now supplies the release date; tests pin it.
	Now func() time.Time
	// Debug, when set, receives diagnostic notes.
	Debug func(format string, args ...any)
}

// Result reports what a run did. Updated is false for the no-op outcome, in
// which case Version equals Previous and no file was touched.
type Result struct {
	Updated  bool
	Previous semver.Version
	Version  semver.Version
	Scanned  int
	Sections []classify.Section
	// Block is the text that was (or, on a dry run, would be) inserted.
	Block string
}

// New builds an Updater with the real clock.
func New(cfg *config.Configuration, src gitsrc.Source) *Updater {
	return &Updater{Config: cfg, Source: src, Now: time.Now}
}

// Run executes the pipeline against dir. With dryRun set it computes
// everything but writes nothing.
//
// The changelog is written before the version file and the two writes are
// not transactional: a failure between them leaves the changelog one release
// ahead of the version file, which needs a manual VERSION fix before the
// next run (see README).
func (u *Updater) Run(dir string, dryRun bool) (Result, error) {
	rules, err := config.Compile(u.Config.Rules)
	if err != nil {
		return Result{}, cerrors.Wrap(err, cerrors.Configuration, "compiling classification rules",
			"Check the rules section of "+config.ProjectConfigFile)
	}

	changelogPath := filepath.Join(dir, u.Config.ChangelogFile)
	versionPath := filepath.Join(dir, u.Config.VersionFile)

	current := semver.ReadFile(versionPath)

	last, err := u.Source.LastChangelogCommit(dir, u.Config.ChangelogFile)
	if err != nil {
		return Result{}, cerrors.Wrap(err, cerrors.Git, "finding last changelog commit",
			"Run chlog inside a git repository, or pass its directory as an argument")
	}
	u.debug("last changelog commit: %q", last)

	raw, err := u.Source.CommitsSince(dir, last)
	if err != nil {
		return Result{}, cerrors.Wrap(err, cerrors.Git, "listing commits")
	}

	list := commits.ParseLog(raw)
	u.debug("parsed %d commits since %q", len(list), last)

	sections := classify.Apply(rules, list)
	if len(sections) == 0 {
		return Result{Previous: current, Version: current, Scanned: len(list)}, nil
	}

	next := semver.Bump(current, classify.Severity(sections))
	block := changelog.Render(next, u.Now().Format("2006-01-02"), sections)

	res := Result{
		Updated:  true,
		Previous: current,
		Version:  next,
		Scanned:  len(list),
		Sections: sections,
		Block:    block,
	}
	if dryRun {
		return res, nil
	}

	if err := changelog.UpdateFile(changelogPath, u.Config.Heading, block); err != nil {
		return Result{}, cerrors.Wrap(err, cerrors.Write, "updating changelog",
			"Check write permissions on "+changelogPath)
	}
	if err := semver.WriteFile(versionPath, next); err != nil {
		return Result{}, cerrors.Wrap(err, cerrors.Write, "persisting version",
			"The changelog was already written for v"+next.String(),
			"Write "+next.String()+" to "+versionPath+" by hand before the next run")
	}
	return res, nil
}

func (u *Updater) debug(format string, args ...any) {
	if u.Debug != nil {
		u.Debug(format, args...)
	}
}
