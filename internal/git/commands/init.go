package commands

// init.go - Simulated Git Init Command
//
// Resets the session to the canonical fresh repository: one root commit on
// main with HEAD attached. Running it again from any state lands on the
// exact same snapshot, which the practice flow relies on.

import (
	"context"

	"github.com/kurobon/gitdojo/backend/internal/git"
	"github.com/kurobon/gitdojo/backend/internal/repo"
)

func init() {
	git.RegisterCommand("init", func() git.Command { return &InitCommand{} })
}

type InitCommand struct{}

// Ensure InitCommand implements git.Command
var _ git.Command = (*InitCommand)(nil)

func (c *InitCommand) Execute(ctx context.Context, inv git.Invocation) (*repo.Snapshot, string, error) {
	return repo.NewInitSnapshot(), "Initialized empty Git repository in /sandbox/.git/", nil
}

func (c *InitCommand) Help() string {
	return `usage: git init

Create an empty Git repository. In this sandbox the repository starts with
one root commit on 'main' so there is always something to look at.`
}
