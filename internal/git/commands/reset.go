package commands

// reset.go - Simulated Git Reset Command
//
// Only --hard is modeled; without file state there is nothing for --soft
// or --mixed to preserve. Moves the current branch pointer to the resolved
// revision, which may use ~N first-parent counting. No commit is ever
// deleted; abandoned ones simply hang around unreferenced.

import (
	"context"
	"fmt"

	"github.com/kurobon/gitdojo/backend/internal/git"
	"github.com/kurobon/gitdojo/backend/internal/repo"
)

func init() {
	git.RegisterCommand("reset", func() git.Command { return &ResetCommand{} })
}

type ResetCommand struct{}

var _ git.Command = (*ResetCommand)(nil)

func (c *ResetCommand) Execute(ctx context.Context, inv git.Invocation) (*repo.Snapshot, string, error) {
	hard := false
	token := "HEAD"
	for _, arg := range inv.Args[1:] {
		if arg == "--hard" {
			hard = true
			continue
		}
		token = arg
	}
	if !hard {
		return nil, "", fmt.Errorf("usage: git reset --hard <revision>")
	}

	if !inv.Snap.Head.Attached() {
		return nil, "", errNotOnBranch()
	}
	target, ok := inv.Snap.ResolveRevision(token)
	if !ok {
		return nil, "", errUnknownRevision(token)
	}

	next := inv.Snap.Clone()
	branch, found := next.CurrentBranch()
	if !found {
		return nil, "", errNotOnBranch()
	}
	branch.CommitID = target

	subject := ""
	if commit, found := next.FindCommit(target); found {
		subject = " " + firstLine(commit.Message)
	}
	return next, fmt.Sprintf("HEAD is now at %s%s", target, subject), nil
}

func (c *ResetCommand) Help() string {
	return `usage: git reset --hard <revision>

Move the current branch (and HEAD with it) to the given revision.
<revision> may use ~N to count first-parent ancestors, e.g. HEAD~2.`
}
