package commands

// merge.go - Simulated Git Merge Command
//
// Joins the target history into the current branch. Moving a pointer is
// enough when the target is ahead (fast-forward); otherwise a two-parent
// merge commit is created. Content conflicts do not exist here, so a merge
// commit always succeeds.

import (
	"context"
	"fmt"

	"github.com/kurobon/gitdojo/backend/internal/git"
	"github.com/kurobon/gitdojo/backend/internal/repo"
)

func init() {
	git.RegisterCommand("merge", func() git.Command { return &MergeCommand{} })
}

type MergeCommand struct{}

// Ensure MergeCommand implements git.Command
var _ git.Command = (*MergeCommand)(nil)

func (c *MergeCommand) Execute(ctx context.Context, inv git.Invocation) (*repo.Snapshot, string, error) {
	if len(inv.Args) < 2 {
		return nil, "", fmt.Errorf("usage: git merge <branch>")
	}
	token := inv.Args[1]

	if !inv.Snap.Head.Attached() {
		return nil, "", errNotOnBranch()
	}
	target, ok := inv.Snap.ResolveRef(token)
	if !ok {
		return nil, "", fmt.Errorf("merge: %s - not something we can merge", token)
	}

	headCommit := inv.Snap.EffectiveHeadCommit()
	if target == headCommit {
		return inv.Snap, "Already up to date.", nil
	}

	// Fast-forward: the current tip is already part of the target's history
	if inv.Snap.IsAncestor(headCommit, target) {
		next := inv.Snap.Clone()
		branch, ok := next.CurrentBranch()
		if !ok {
			return nil, "", errNotOnBranch()
		}
		branch.CommitID = target
		return next, fmt.Sprintf("Updating %s..%s\nFast-forward", headCommit, target), nil
	}

	next := inv.Snap.Clone()
	branch, ok := next.CurrentBranch()
	if !ok {
		return nil, "", errNotOnBranch()
	}

	message := mergeMessage(inv.Snap, token)
	ts := next.NextTimestamp(inv.Now)
	id := repo.NewCommitID(next, message, headCommit, ts)
	next.Commits = append(next.Commits, repo.Commit{
		ID:             id,
		Message:        message,
		ParentID:       headCommit,
		SecondParentID: target,
		Timestamp:      ts,
		Author:         repo.DefaultAuthor,
	})
	branch.CommitID = id

	return next, "Merge made by the 'ort' strategy.", nil
}

func mergeMessage(s *repo.Snapshot, token string) string {
	if _, isBranch := s.FindBranch(token); isBranch {
		if isRemoteBranch(token) {
			return fmt.Sprintf("Merge remote-tracking branch '%s'", token)
		}
		return fmt.Sprintf("Merge branch '%s'", token)
	}
	return fmt.Sprintf("Merge commit '%s'", token)
}

func (c *MergeCommand) Help() string {
	return `📘 GIT-MERGE (1)                                        Git Manual

 💡 DESCRIPTION
    ・別ブランチの履歴を現在のブランチに統合する
    ・fast-forward できる場合はポインタ移動のみ、できない場合は
      マージコミットを作成します

 📋 SYNOPSIS
    git merge <branch>`
}
