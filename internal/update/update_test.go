// Package update tests the full pipeline against a fake commit source and
// temp-dir files.
package update

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raveheart1/chlog/internal/config"
	"github.com/raveheart1/chlog/internal/semver"
)

// fakeSource satisfies git.Source without a repository.
type fakeSource struct {
	last     string
	log      string
	lastErr  error
	logErr   error
	gotSince string
	gotFile  string
}

func (f *fakeSource) LastChangelogCommit(dir, file string) (string, error) {
	f.gotFile = file
	return f.last, f.lastErr
}

func (f *fakeSource) CommitsSince(dir, since string) (string, error) {
	f.gotSince = since
	return f.log, f.logErr
}

func defaultConfig() *config.Configuration {
	return &config.Configuration{
		ChangelogFile: config.DefaultChangelogFile,
		VersionFile:   config.DefaultVersionFile,
		Heading:       config.DefaultHeading,
		Rules:         config.DefaultRules(),
	}
}

func newTestUpdater(cfg *config.Configuration, src *fakeSource) *Updater {
	u := New(cfg, src)
	u.Now = func() time.Time { return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC) }
	return u
}

func TestRunFirstRelease(t *testing.T) {
	// Empty version file, three commits, stock rules: severity 1, 0.1.0.
	dir := t.TempDir()
	src := &fakeSource{
		log: "aaa1111 a@example.com feat: add login\n" +
			"bbb2222 b@example.com fix(auth): token bug\n" +
			"ccc3333 c@example.com chore: cleanup\n",
	}

	res, err := newTestUpdater(defaultConfig(), src).Run(dir, false)
	require.NoError(t, err)

	assert.True(t, res.Updated)
	assert.Equal(t, semver.Version{Major: 0, Minor: 0, Patch: 0}, res.Previous)
	assert.Equal(t, semver.Version{Major: 0, Minor: 1, Patch: 0}, res.Version)
	assert.Equal(t, 3, res.Scanned)

	require.Len(t, res.Sections, 3)
	assert.Equal(t, "New features", res.Sections[0].Heading)
	assert.Equal(t, "Bugfixes", res.Sections[1].Heading)
	assert.Equal(t, "Other changes", res.Sections[2].Heading)

	doc, err := os.ReadFile(filepath.Join(dir, "Changelog.org"))
	require.NoError(t, err)
	assert.Contains(t, string(doc), "* Changelog\n** [2026-08-29] v0.1.0\n")
	assert.Contains(t, string(doc), " - add login (aaa1111)\n")
	assert.Contains(t, string(doc), " - *auth* : token bug (bbb2222)\n")

	assert.Equal(t, semver.Version{Major: 0, Minor: 1, Patch: 0}, semver.ReadFile(filepath.Join(dir, "VERSION")))
}

func TestRunBreakingChangeMajorBump(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, semver.WriteFile(filepath.Join(dir, "VERSION"), semver.Version{Major: 1, Minor: 2, Patch: 3}))

	src := &fakeSource{
		last: "ddd4444",
		log:  "aaa1111 a@example.com feat!: drop old API\n",
	}

	res, err := newTestUpdater(defaultConfig(), src).Run(dir, false)
	require.NoError(t, err)

	assert.Equal(t, semver.Version{Major: 2, Minor: 0, Patch: 0}, res.Version)
	assert.Equal(t, "ddd4444", src.gotSince, "scan resumes after the last changelog commit")
	assert.Equal(t, "Changelog.org", src.gotFile)

	// The breaking feat shows up under both sections.
	doc, err := os.ReadFile(filepath.Join(dir, "Changelog.org"))
	require.NoError(t, err)
	assert.Contains(t, string(doc), "*** BREAKING CHANGES\n - drop old API (aaa1111)\n")
	assert.Contains(t, string(doc), "*** New features\n - drop old API (aaa1111)\n")
}

func TestRunNoChangesWritesNothing(t *testing.T) {
	dir := t.TempDir()
	src := &fakeSource{log: ""}

	res, err := newTestUpdater(defaultConfig(), src).Run(dir, false)
	require.NoError(t, err)

	assert.False(t, res.Updated)
	assert.Equal(t, res.Previous, res.Version)
	assert.NoFileExists(t, filepath.Join(dir, "Changelog.org"))
	assert.NoFileExists(t, filepath.Join(dir, "VERSION"))
}

func TestRunVersionUnchangedWhenOnlySkippedLines(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, semver.WriteFile(filepath.Join(dir, "VERSION"), semver.Version{Major: 1, Minor: 2, Patch: 3}))
	src := &fakeSource{log: "malformed\nanother bad\n"}

	res, err := newTestUpdater(defaultConfig(), src).Run(dir, false)
	require.NoError(t, err)

	assert.False(t, res.Updated)
	assert.Equal(t, semver.Version{Major: 1, Minor: 2, Patch: 3}, semver.ReadFile(filepath.Join(dir, "VERSION")))
}

func TestRunDryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	src := &fakeSource{log: "aaa1111 a@example.com feat: add login\n"}

	res, err := newTestUpdater(defaultConfig(), src).Run(dir, true)
	require.NoError(t, err)

	assert.True(t, res.Updated)
	assert.Equal(t, semver.Version{Major: 0, Minor: 1, Patch: 0}, res.Version)
	assert.Contains(t, res.Block, "** [2026-08-29] v0.1.0\n")
	assert.NoFileExists(t, filepath.Join(dir, "Changelog.org"))
	assert.NoFileExists(t, filepath.Join(dir, "VERSION"))
}

func TestRunSecondReleaseStacksAboveFirst(t *testing.T) {
	dir := t.TempDir()
	cfg := defaultConfig()

	src := &fakeSource{log: "aaa1111 a@example.com feat: first\n"}
	u := newTestUpdater(cfg, src)
	_, err := u.Run(dir, false)
	require.NoError(t, err)

	src.last = "aaa1111"
	src.log = "bbb2222 b@example.com fix: second\n"
	res, err := u.Run(dir, false)
	require.NoError(t, err)
	assert.Equal(t, semver.Version{Major: 0, Minor: 1, Patch: 1}, res.Version)

	doc, err := os.ReadFile(filepath.Join(dir, "Changelog.org"))
	require.NoError(t, err)
	text := string(doc)
	assert.Equal(t, 1, strings.Count(text, "* Changelog\n"))
	assert.Less(t, strings.Index(text, "v0.1.1"), strings.Index(text, "v0.1.0"))
}

func TestRunGitErrorAbortsBeforeAnyWrite(t *testing.T) {
	tests := map[string]*fakeSource{
		"finding the boundary commit fails": {lastErr: assert.AnError},
		"listing commits fails":             {logErr: assert.AnError},
	}

	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()

			_, err := newTestUpdater(defaultConfig(), src).Run(dir, false)
			require.Error(t, err)
			assert.NoFileExists(t, filepath.Join(dir, "Changelog.org"))
			assert.NoFileExists(t, filepath.Join(dir, "VERSION"))
		})
	}
}

func TestRunCustomTaxonomy(t *testing.T) {
	dir := t.TempDir()
	cfg := defaultConfig()
	cfg.Rules = []config.RuleSpec{
		{Heading: "Performance", Rank: 1, Types: []string{"perf"}},
		{Heading: "The rest", Rank: 2, Fallback: true},
	}

	src := &fakeSource{log: "aaa1111 a@example.com perf: faster parse\n"}
	res, err := newTestUpdater(cfg, src).Run(dir, false)
	require.NoError(t, err)

	require.Len(t, res.Sections, 1)
	assert.Equal(t, "Performance", res.Sections[0].Heading)
	assert.Equal(t, semver.Version{Major: 0, Minor: 1, Patch: 0}, res.Version)
}
