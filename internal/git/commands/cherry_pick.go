package commands

// cherry_pick.go - Simulated Git Cherry-Pick Command
//
// Copies one commit onto the current HEAD: same message and author, fresh
// id and timestamp. The source commit stays where it is.

import (
	"context"
	"fmt"

	"github.com/kurobon/gitdojo/backend/internal/git"
	"github.com/kurobon/gitdojo/backend/internal/repo"
)

func init() {
	git.RegisterCommand("cherry-pick", func() git.Command { return &CherryPickCommand{} })
}

type CherryPickCommand struct{}

var _ git.Command = (*CherryPickCommand)(nil)

func (c *CherryPickCommand) Execute(ctx context.Context, inv git.Invocation) (*repo.Snapshot, string, error) {
	if len(inv.Args) < 2 {
		return nil, "", fmt.Errorf("usage: git cherry-pick <commit>")
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

	message := source.Message
	author := source.Author
	parent := next.EffectiveHeadCommit()
	ts := next.NextTimestamp(inv.Now)
	id := repo.NewCommitID(next, message, parent, ts)
	next.Commits = append(next.Commits, repo.Commit{
		ID:        id,
		Message:   message,
		ParentID:  parent,
		Timestamp: ts,
		Author:    author,
	})
	advanceHead(next, id)

	return next, fmt.Sprintf("[%s %s] %s", headLabel(next), id, firstLine(message)), nil
}

func (c *CherryPickCommand) Help() string {
	return `usage: git cherry-pick <commit>

Apply the given commit on top of the current HEAD as a new commit.`
}
