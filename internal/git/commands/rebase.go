package commands

// rebase.go - Simulated Git Rebase Command
//
// Replays the current branch's own commits on top of the target as brand-new
// commits. The originals stay in the snapshot; only the branch pointer moves,
// which is exactly what makes the "rebase rewrites history" lesson visible in
// the graph.

import (
	"context"
	"fmt"

	"github.com/kurobon/gitdojo/backend/internal/git"
	"github.com/kurobon/gitdojo/backend/internal/repo"
)

func init() {
	git.RegisterCommand("rebase", func() git.Command { return &RebaseCommand{} })
}

type RebaseCommand struct{}

var _ git.Command = (*RebaseCommand)(nil)

func (c *RebaseCommand) Execute(ctx context.Context, inv git.Invocation) (*repo.Snapshot, string, error) {
	if len(inv.Args) < 2 {
		return nil, "", fmt.Errorf("usage: git rebase <upstream>")
	}
	token := inv.Args[1]

	if !inv.Snap.Head.Attached() {
		return nil, "", errNotOnBranch()
	}
	branch, ok := inv.Snap.CurrentBranch()
	if !ok {
		return nil, "", errNotOnBranch()
	}
	target, ok := inv.Snap.ResolveRef(token)
	if !ok {
		return nil, "", fmt.Errorf("fatal: invalid upstream '%s'", token)
	}

	// Walk the first-parent chain from the branch tip and keep everything
	// the target cannot already reach. Oldest first, so replay preserves
	// the original order.
	var toReplay []repo.Commit
	for _, id := range inv.Snap.FirstParentChain(branch.CommitID) {
		if inv.Snap.IsAncestor(id, target) {
			break
		}
		commit, ok := inv.Snap.FindCommit(id)
		if !ok {
			break
		}
		toReplay = append([]repo.Commit{*commit}, toReplay...)
	}

	if len(toReplay) == 0 {
		return inv.Snap, fmt.Sprintf("Current branch %s is up to date.", branch.Name), nil
	}

	next := inv.Snap.Clone()
	current, ok := next.CurrentBranch()
	if !ok {
		return nil, "", errNotOnBranch()
	}

	base := target
	for _, original := range toReplay {
		ts := next.NextTimestamp(inv.Now)
		id := repo.NewCommitID(next, original.Message, base, ts)
		next.Commits = append(next.Commits, repo.Commit{
			ID:        id,
			Message:   original.Message,
			ParentID:  base,
			Timestamp: ts,
			Author:    original.Author,
		})
		base = id
	}
	current.CommitID = base

	return next, fmt.Sprintf("Successfully rebased and updated refs/heads/%s.", current.Name), nil
}

func (c *RebaseCommand) Help() string {
	return `📘 GIT-REBASE (1)                                       Git Manual

 💡 DESCRIPTION
    ・現在のブランチ固有のコミットを、指定した対象の先端へ
      新しいコミットとして積み直す
    ・元のコミットはグラフに残り、履歴がどう書き換わったかを
      そのまま観察できます

 📋 SYNOPSIS
    git rebase <upstream>`
}
