package commands

// tag.go - Simulated Git Tag Command
//
// Creates a lightweight tag at the resolved target, defaulting to HEAD.
// Tags are immutable here: re-tagging an existing name is rejected rather
// than moved.

import (
	"context"
	"fmt"

	"github.com/kurobon/gitdojo/backend/internal/git"
	"github.com/kurobon/gitdojo/backend/internal/repo"
)

func init() {
	git.RegisterCommand("tag", func() git.Command { return &TagCommand{} })
}

type TagCommand struct{}

var _ git.Command = (*TagCommand)(nil)

func (c *TagCommand) Execute(ctx context.Context, inv git.Invocation) (*repo.Snapshot, string, error) {
	if len(inv.Args) < 2 {
		return nil, "", fmt.Errorf("usage: git tag <tagname> [<commit>]")
	}
	name := inv.Args[1]

	if _, exists := inv.Snap.FindTag(name); exists {
		return nil, "", fmt.Errorf("fatal: tag '%s' already exists", name)
	}

	target := inv.Snap.EffectiveHeadCommit()
	if len(inv.Args) > 2 {
		id, ok := inv.Snap.ResolveRef(inv.Args[2])
		if !ok {
			return nil, "", fmt.Errorf("fatal: not a valid object name '%s'", inv.Args[2])
		}
		target = id
	}

	next := inv.Snap.Clone()
	next.Tags = append(next.Tags, repo.Tag{Name: name, CommitID: target})
	return next, fmt.Sprintf("Created tag %s at %s", name, target), nil
}

func (c *TagCommand) Help() string {
	return `usage: git tag <tagname> [<commit>]

Create a tag at the given commit, or at HEAD. Tags never move once set.`
}
