package commands

// pull.go - Simulated Git Pull Command
//
// fetch followed by merge. The merge target is always origin/main, not
// origin/<current-branch>: the practice flows only ever pull on main, and
// generalizing the target would change which of them validate.

import (
	"context"

	"github.com/kurobon/gitdojo/backend/internal/git"
	"github.com/kurobon/gitdojo/backend/internal/repo"
)

func init() {
	git.RegisterCommand("pull", func() git.Command { return &PullCommand{} })
}

type PullCommand struct{}

var _ git.Command = (*PullCommand)(nil)

func (c *PullCommand) Execute(ctx context.Context, inv git.Invocation) (*repo.Snapshot, string, error) {
	fetched, fetchOut, err := (&FetchCommand{}).Execute(ctx, git.Invocation{
		Snap: inv.Snap,
		Args: []string{"fetch"},
		Now:  inv.Now,
	})
	if err != nil {
		return nil, "", err
	}

	merged, mergeOut, err := (&MergeCommand{}).Execute(ctx, git.Invocation{
		Snap: fetched,
		Args: []string{"merge", "origin/main"},
		Now:  inv.Now,
	})
	if err != nil {
		return nil, "", err
	}

	return merged, fetchOut + "\n" + mergeOut, nil
}

func (c *PullCommand) Help() string {
	return `usage: git pull

Fetch from the simulated upstream and merge origin/main into the current
branch.`
}
