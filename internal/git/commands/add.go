package commands

// add.go - Simulated Git Add Command
//
// Staging is not modeled here: there is no index and no file content. The
// command exists so learners can keep their add-commit rhythm; it accepts
// anything and succeeds quietly.

import (
	"context"

	"github.com/kurobon/gitdojo/backend/internal/git"
	"github.com/kurobon/gitdojo/backend/internal/repo"
)

func init() {
	git.RegisterCommand("add", func() git.Command { return &AddCommand{} })
}

type AddCommand struct{}

var _ git.Command = (*AddCommand)(nil)

func (c *AddCommand) Execute(ctx context.Context, inv git.Invocation) (*repo.Snapshot, string, error) {
	return inv.Snap, "", nil
}

func (c *AddCommand) Help() string {
	return `usage: git add [--] <pathspec>...

Add file contents to the index (staging area). This sandbox has no staging
area; the command is accepted for muscle memory and does nothing.`
}
