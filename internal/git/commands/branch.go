package commands

// branch.go - Simulated Git Branch Command
//
// Creates a branch at a resolved start point, renames the current branch
// with -M, or lists local branches when called bare. Creating never moves
// HEAD; that is checkout's job.

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/kurobon/gitdojo/backend/internal/git"
	"github.com/kurobon/gitdojo/backend/internal/repo"
)

func init() {
	git.RegisterCommand("branch", func() git.Command { return &BranchCommand{} })
}

type BranchCommand struct{}

var _ git.Command = (*BranchCommand)(nil)

func (c *BranchCommand) Execute(ctx context.Context, inv git.Invocation) (*repo.Snapshot, string, error) {
	args := inv.Args
	if len(args) == 1 {
		return inv.Snap, c.list(inv.Snap), nil
	}
	if args[1] == "-M" {
		return c.rename(inv)
	}
	if strings.HasPrefix(args[1], "-") {
		return nil, "", fmt.Errorf("error: unknown switch '%s'", args[1])
	}
	return c.create(inv)
}

func (c *BranchCommand) create(inv git.Invocation) (*repo.Snapshot, string, error) {
	name := inv.Args[1]
	if isRemoteBranch(name) {
		return nil, "", fmt.Errorf("fatal: '%s' is not a valid branch name", name)
	}
	if _, exists := inv.Snap.FindBranch(name); exists {
		return nil, "", fmt.Errorf("fatal: a branch named '%s' already exists", name)
	}

	target := inv.Snap.EffectiveHeadCommit()
	if len(inv.Args) > 2 {
		start := inv.Args[2]
		id, ok := inv.Snap.ResolveRef(start)
		if !ok {
			return nil, "", fmt.Errorf("fatal: not a valid object name: '%s'", start)
		}
		target = id
	}

	next := inv.Snap.Clone()
	next.Branches = append(next.Branches, repo.Branch{Name: name, CommitID: target})
	return next, fmt.Sprintf("Created branch %s at %s", name, target), nil
}

// rename implements -M: force-rename the current branch, replacing any
// branch already holding the new name, and keep HEAD attached.
func (c *BranchCommand) rename(inv git.Invocation) (*repo.Snapshot, string, error) {
	if len(inv.Args) < 3 {
		return nil, "", fmt.Errorf("usage: git branch -M <newname>")
	}
	newName := inv.Args[2]
	if isRemoteBranch(newName) {
		return nil, "", fmt.Errorf("fatal: '%s' is not a valid branch name", newName)
	}
	if !inv.Snap.Head.Attached() {
		return nil, "", errNotOnBranch()
	}

	next := inv.Snap.Clone()
	current, ok := next.CurrentBranch()
	if !ok {
		return nil, "", errNotOnBranch()
	}
	oldName := current.Name
	if newName != oldName {
		for i := range next.Branches {
			if next.Branches[i].Name == newName {
				next.Branches = append(next.Branches[:i], next.Branches[i+1:]...)
				break
			}
		}
		// The slice may have shifted; look the branch up again
		current, ok = next.FindBranch(oldName)
		if !ok {
			return nil, "", errNotOnBranch()
		}
		current.Name = newName
	}
	next.Head = repo.Head{Type: repo.HeadBranch, Ref: newName}

	return next, fmt.Sprintf("Renamed branch %s to %s", oldName, newName), nil
}

func (c *BranchCommand) list(s *repo.Snapshot) string {
	names := make([]string, 0, len(s.Branches))
	for _, b := range s.Branches {
		if isRemoteBranch(b.Name) {
			continue
		}
		names = append(names, b.Name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		marker := "  "
		if s.Head.Attached() && s.Head.Ref == name {
			marker = "* "
		}
		sb.WriteString(marker + name + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (c *BranchCommand) Help() string {
	return `usage: git branch
       git branch <branchname> [<start-point>]
       git branch -M <newname>

List, create, or rename branches.`
}
