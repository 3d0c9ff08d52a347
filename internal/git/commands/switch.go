package commands

// switch.go - Simulated Git Switch Command
//
// The modern spelling of checkout's branch-changing half. -c mirrors
// checkout -b. Resolution and HEAD movement are shared with checkout.

import (
	"context"
	"fmt"

	"github.com/kurobon/gitdojo/backend/internal/git"
	"github.com/kurobon/gitdojo/backend/internal/repo"
)

func init() {
	git.RegisterCommand("switch", func() git.Command { return &SwitchCommand{} })
}

type SwitchCommand struct{}

var _ git.Command = (*SwitchCommand)(nil)

func (c *SwitchCommand) Execute(ctx context.Context, inv git.Invocation) (*repo.Snapshot, string, error) {
	args := inv.Args
	if len(args) < 2 {
		return nil, "", fmt.Errorf("usage: git switch [-c] <branch>")
	}
	if args[1] == "-c" {
		if len(args) < 3 {
			return nil, "", fmt.Errorf("usage: git switch -c <branch>")
		}
		return createAndSwitch(inv.Snap, args[2])
	}
	return checkoutRef(inv.Snap, args[1])
}

func (c *SwitchCommand) Help() string {
	return `usage: git switch <branch>
       git switch -c <new-branch>

Switch branches. -c creates the branch at the current HEAD first.`
}
