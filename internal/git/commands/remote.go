package commands

// remote.go - Simulated Git Remote Command
//
// There is no real network, so remotes are theater: add acknowledges its
// arguments, -v lists the one canned remote every sandbox repository talks
// to. The origin/main branch produced by clone/fetch/push is what actually
// simulates the remote's state.

import (
	"context"
	"fmt"

	"github.com/kurobon/gitdojo/backend/internal/git"
	"github.com/kurobon/gitdojo/backend/internal/repo"
)

// cannedRemoteURL is the address remote -v reports for origin.
const cannedRemoteURL = "https://git.sandbox.example/demo.git"

func init() {
	git.RegisterCommand("remote", func() git.Command { return &RemoteCommand{} })
}

type RemoteCommand struct{}

var _ git.Command = (*RemoteCommand)(nil)

func (c *RemoteCommand) Execute(ctx context.Context, inv git.Invocation) (*repo.Snapshot, string, error) {
	args := inv.Args
	if len(args) == 1 || args[1] == "-v" {
		return inv.Snap, fmt.Sprintf("origin\t%s (fetch)\norigin\t%s (push)", cannedRemoteURL, cannedRemoteURL), nil
	}

	if args[1] == "add" {
		if len(args) < 4 {
			return nil, "", fmt.Errorf("usage: git remote add <name> <url>")
		}
		return inv.Snap, fmt.Sprintf("Added remote %s (%s)", args[2], args[3]), nil
	}

	return nil, "", fmt.Errorf("error: unknown subcommand: %s", args[1])
}

func (c *RemoteCommand) Help() string {
	return `usage: git remote [-v]
       git remote add <name> <url>

Manage set of tracked repositories.`
}
