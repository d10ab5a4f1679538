// Package revision stamps builds with the commit of the site's repository.
package revision

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

const shortLen = 7

// Revision identifies the commit a site was built from. The zero value means
// the site is not under version control.
type Revision struct {
	Hash   string
	Branch string
	When   time.Time
	Dirty  bool
}

// Commit returns the abbreviated hash alone. Unlike Short it does not depend
// on the worktree, which changes as soon as a build writes its output.
func (r Revision) Commit() string {
	if len(r.Hash) > shortLen {
		return r.Hash[:shortLen]
	}
	return r.Hash
}

// Short returns the abbreviated hash, suffixed with "+dirty" when the
// worktree has uncommitted changes.
func (r Revision) Short() string {
	s := r.Commit()
	if s != "" && r.Dirty {
		s += "+dirty"
	}
	return s
}

// IsZero reports whether no revision was found.
func (r Revision) IsZero() bool {
	return r.Hash == ""
}

// Read opens the repository containing dir, searching parent directories,
// and describes its HEAD. A directory outside any repository, or a
// repository without commits, yields the zero Revision and no error.
func Read(dir string) (Revision, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return Revision{}, nil
	}
	if err != nil {
		return Revision{}, fmt.Errorf("open repository: %w", err)
	}

	head, err := repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return Revision{}, nil
	}
	if err != nil {
		return Revision{}, fmt.Errorf("resolve HEAD: %w", err)
	}

	rev := Revision{Hash: head.Hash().String()}
	if head.Name().IsBranch() {
		rev.Branch = head.Name().Short()
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return Revision{}, fmt.Errorf("read commit %s: %w", rev.Short(), err)
	}
	rev.When = commit.Committer.When

	wt, err := repo.Worktree()
	if err == nil {
		status, err := wt.Status()
		if err != nil {
			return Revision{}, fmt.Errorf("worktree status: %w", err)
		}
		rev.Dirty = !status.IsClean()
	}

	return rev, nil
}
