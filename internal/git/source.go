// Package git retrieves commit history for chlog. It uses the go-git library
// so no git binary is required. The Source interface keeps the rest of the
// pipeline independent of the version-control system, so tests can
// substitute a fake without touching a repository.
package git

import (
	"errors"
	"fmt"
	"io"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// shortHashLen matches git's default abbreviated hash width.
const shortHashLen = 7

// Source is the narrow view of the version-control system the pipeline
// needs.
type Source interface {
	// LastChangelogCommit returns the short hash of the most recent commit
	// that touched file inside dir's repository, or "" when the file has
	// never been committed.
	LastChangelogCommit(dir, file string) (string, error)

	// CommitsSince returns raw log text, one `<hash> <email> <subject>`
	// line per commit, newest first. since is exclusive and matched by
	// short-hash prefix; "" means full history.
	CommitsSince(dir, since string) (string, error)
}

// Repo reads history from an on-disk repository via go-git.
type Repo struct{}

// errStopIteration aborts a log walk once the boundary commit is reached.
var errStopIteration = errors.New("stop iteration")

func (Repo) LastChangelogCommit(dir, file string) (string, error) {
	repo, err := openRepo(dir)
	if err != nil {
		return "", err
	}

	iter, err := repo.Log(&git.LogOptions{FileName: &file})
	if err != nil {
		if isEmptyHistory(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading history of %s: %w", file, err)
	}
	defer iter.Close()

	commit, err := iter.Next()
	if err != nil {
		if err == io.EOF {
			// The changelog has never been committed.
			return "", nil
		}
		return "", fmt.Errorf("reading history of %s: %w", file, err)
	}
	return shortHash(commit), nil
}

func (Repo) CommitsSince(dir, since string) (string, error) {
	repo, err := openRepo(dir)
	if err != nil {
		return "", err
	}

	iter, err := repo.Log(&git.LogOptions{})
	if err != nil {
		if isEmptyHistory(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading history: %w", err)
	}
	defer iter.Close()

	var b strings.Builder
	err = iter.ForEach(func(c *object.Commit) error {
		if since != "" && strings.HasPrefix(c.Hash.String(), since) {
			return errStopIteration
		}
		fmt.Fprintf(&b, "%s %s %s\n", shortHash(c), c.Author.Email, subjectLine(c.Message))
		return nil
	})
	if err != nil && !errors.Is(err, errStopIteration) {
		return "", fmt.Errorf("walking history: %w", err)
	}
	return b.String(), nil
}

// openRepo opens the repository containing dir, traversing up the directory
// tree to find the repository root.
func openRepo(dir string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", dir, err)
	}
	return repo, nil
}

// isEmptyHistory reports whether err means the repository has no commits yet
// (unborn HEAD). That is a normal state for chlog, not a failure.
func isEmptyHistory(err error) bool {
	return errors.Is(err, plumbing.ErrReferenceNotFound)
}

func shortHash(c *object.Commit) string {
	return c.Hash.String()[:shortHashLen]
}

// subjectLine returns the first line of a commit message.
func subjectLine(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		message = message[:i]
	}
	return strings.TrimSpace(message)
}
