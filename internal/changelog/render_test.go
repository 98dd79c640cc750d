// Package changelog tests section rendering and pure-insertion document
// updates.
package changelog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raveheart1/chlog/internal/classify"
	"github.com/raveheart1/chlog/internal/semver"
)

func sampleSections() []classify.Section {
	return []classify.Section{
		{Heading: "New features", Rank: 1, Body: " - add login (aaa1111)\n"},
		{Heading: "Bugfixes", Rank: 2, Body: " - *auth* : token bug (bbb2222)\n"},
	}
}

func TestRender(t *testing.T) {
	got := Render(semver.Version{Major: 0, Minor: 1, Patch: 0}, "2026-08-29", sampleSections())

	want := "** [2026-08-29] v0.1.0\n" +
		"\n" +
		"*** New features\n" +
		" - add login (aaa1111)\n" +
		"\n" +
		"*** Bugfixes\n" +
		" - *auth* : token bug (bbb2222)\n" +
		"\n"
	assert.Equal(t, want, got)
}

func TestRenderKeepsConfiguredSectionOrder(t *testing.T) {
	// Sections arrive in rule order and must not be re-sorted by rank.
	sections := []classify.Section{
		{Heading: "Other changes", Rank: 2, Body: " - cleanup (ccc3333)\n"},
		{Heading: "New features", Rank: 1, Body: " - add login (aaa1111)\n"},
	}

	got := Render(semver.Version{Major: 1, Minor: 0, Patch: 0}, "2026-08-29", sections)
	assert.Less(t, strings.Index(got, "Other changes"), strings.Index(got, "New features"))
}

func TestInsert(t *testing.T) {
	block := "** [2026-08-29] v0.1.0\n\n*** New features\n - add login (aaa1111)\n\n"

	tests := map[string]struct {
		doc  string
		want string
	}{
		"empty document gains the heading": {
			doc:  "",
			want: "* Changelog\n" + block,
		},
		"insert directly under existing heading": {
			doc:  "* Changelog\n** [2026-01-01] v0.0.1\n\n*** Bugfixes\n - old (zzz9999)\n",
			want: "* Changelog\n" + block + "** [2026-01-01] v0.0.1\n\n*** Bugfixes\n - old (zzz9999)\n",
		},
		"heading without trailing newline": {
			doc:  "* Changelog",
			want: "* Changelog\n" + block,
		},
		"missing heading is created before existing text": {
			doc:  "Some preamble the tool never wrote.\n",
			want: "* Changelog\n" + block + "Some preamble the tool never wrote.\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Insert(tt.doc, "Changelog", block))
		})
	}
}

func TestInsertTwiceKeepsOneHeading(t *testing.T) {
	first := "** [2026-08-29] v0.1.0\n\n*** New features\n - add login (aaa1111)\n\n"
	second := "** [2026-09-02] v0.2.0\n\n*** New features\n - add logout (bbb2222)\n\n"

	doc := Insert("", "Changelog", first)
	doc = Insert(doc, "Changelog", second)

	assert.Equal(t, 1, strings.Count(doc, "* Changelog\n"))
	// The newer section sits above the older one.
	assert.Less(t, strings.Index(doc, "v0.2.0"), strings.Index(doc, "v0.1.0"))
}

func TestInsertPreservesExistingContent(t *testing.T) {
	existing := "* Changelog\n** [2026-01-01] v0.0.1\n\n*** Bugfixes\n - old (zzz9999)\n\ntrailing notes\n"
	block := "** [2026-08-29] v0.1.0\n\n"

	got := Insert(existing, "Changelog", block)
	assert.True(t, strings.HasSuffix(got, "trailing notes\n"))
	assert.Contains(t, got, "*** Bugfixes\n - old (zzz9999)\n")
}

func TestUpdateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Changelog.org")
	block := "** [2026-08-29] v0.1.0\n\n*** New features\n - add login (aaa1111)\n\n"

	require.NoError(t, UpdateFile(path, "Changelog", block))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "* Changelog\n"+block, string(data))

	// A second run inserts under the same heading.
	require.NoError(t, UpdateFile(path, "Changelog", "** [2026-09-02] v0.2.0\n\n"))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "* Changelog\n"))
	assert.Contains(t, string(data), "v0.2.0")
	assert.Contains(t, string(data), "v0.1.0")
}
