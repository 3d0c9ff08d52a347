package commands

// revert.go - Simulated Git Revert Command
//
// Adds an inverse commit on top of HEAD naming the commit it undoes. With
// no file content to invert, the new commit is the record of the undo, not
// an actual patch application.

import (
	"context"
	"fmt"

	"github.com/kurobon/gitdojo/backend/internal/git"
	"github.com/kurobon/gitdojo/backend/internal/repo"
)

func init() {
	git.RegisterCommand("revert", func() git.Command { return &RevertCommand{} })
}

type RevertCommand struct{}

var _ git.Command = (*RevertCommand)(nil)

func (c *RevertCommand) Execute(ctx context.Context, inv git.Invocation) (*repo.Snapshot, string, error) {
	if len(inv.Args) < 2 {
		return nil, "", fmt.Errorf("usage: git revert <commit>")
	}
	token := inv.Args[1]

	target, ok := inv.Snap.ResolveRef(token)
	if !ok {
		return nil, "", fmt.Errorf("fatal: bad revision '%s'", token)
	}

	next := inv.Snap.Clone()
	source, found := next.FindCommit(target)
	if !found {
		return nil, "", fmt.Errorf("fatal: bad revision '%s'", token)
	}

	message := fmt.Sprintf("Revert \"%s\"", firstLine(source.Message))
	parent := next.EffectiveHeadCommit()
	ts := next.NextTimestamp(inv.Now)
	id := repo.NewCommitID(next, message, parent, ts)
	next.Commits = append(next.Commits, repo.Commit{
		ID:        id,
		Message:   message,
		ParentID:  parent,
		Timestamp: ts,
		Author:    repo.DefaultAuthor,
	})
	advanceHead(next, id)

	return next, fmt.Sprintf("[%s %s] %s", headLabel(next), id, message), nil
}

func (c *RevertCommand) Help() string {
	return `usage: git revert <commit>

Create a new commit that records undoing the given commit.`
}
