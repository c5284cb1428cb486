// Package gitutils summarizes the git repository a directory belongs
// to, for display in the navigator's status bar.
package gitutils

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// RepoSummary is a one-line summary of a repository's working tree.
type RepoSummary struct {
	Branch       string
	FilesChanged int
}

// String renders the summary with tview color tags, e.g.
// "[darkgray]main[-] [yellow]±3[-]". A nil summary renders empty.
func (s *RepoSummary) String() string {
	if s == nil {
		return ""
	}
	if s.FilesChanged == 0 {
		return fmt.Sprintf("[darkgray]%s[-]", s.Branch)
	}
	return fmt.Sprintf("[darkgray]%s[-] [yellow]±%d[-]", s.Branch, s.FilesChanged)
}

// Summarize finds the repository containing dir and counts its
// working-tree changes. It returns (nil, nil) when dir is not inside a
// worktree, so callers can treat "no repo" as an empty summary.
func Summarize(ctx context.Context, dir string) (*RepoSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, nil
		}
		return nil, err
	}

	summary := &RepoSummary{Branch: branchName(repo)}

	worktree, err := repo.Worktree()
	if err != nil {
		return summary, err
	}
	status, err := worktree.Status()
	if err != nil {
		return summary, err
	}
	for _, fileStatus := range status {
		if fileStatus.Worktree != git.Unmodified || fileStatus.Staging != git.Unmodified {
			summary.FilesChanged++
		}
	}
	return summary, nil
}

func branchName(repo *git.Repository) string {
	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "(no commits)"
		}
		return ""
	}
	if name := head.Name(); name.IsBranch() {
		return name.Short()
	}
	return head.Hash().String()[:7] // detached HEAD
}
