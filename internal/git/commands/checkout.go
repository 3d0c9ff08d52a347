package commands

// checkout.go - Simulated Git Checkout Command
//
// Attaches HEAD to a local branch, or detaches it at any other resolvable
// reference (tags, commit ids, remote-tracking branches). -b creates the
// branch at the current HEAD commit first. switch shares all of this.

import (
	"context"
	"fmt"

	"github.com/kurobon/gitdojo/backend/internal/git"
	"github.com/kurobon/gitdojo/backend/internal/repo"
)

func init() {
	git.RegisterCommand("checkout", func() git.Command { return &CheckoutCommand{} })
}

type CheckoutCommand struct{}

var _ git.Command = (*CheckoutCommand)(nil)

func (c *CheckoutCommand) Execute(ctx context.Context, inv git.Invocation) (*repo.Snapshot, string, error) {
	args := inv.Args
	if len(args) < 2 {
		return nil, "", fmt.Errorf("usage: git checkout [-b] <branch>")
	}
	if args[1] == "-b" {
		if len(args) < 3 {
			return nil, "", fmt.Errorf("usage: git checkout -b <branch>")
		}
		return createAndSwitch(inv.Snap, args[2])
	}
	return checkoutRef(inv.Snap, args[1])
}

func (c *CheckoutCommand) Help() string {
	return `📘 GIT-CHECKOUT (1)                                     Git Manual

 💡 DESCRIPTION
    ・ブランチを切り替える（HEADを移動する）
    ・コミットやタグを指定すると detached HEAD 状態になります

 📋 SYNOPSIS
    git checkout <branch>
    git checkout -b <newbranch>

 ⚙️  COMMON OPTIONS
    -b <newbranch>
        現在のHEADの位置に新しいブランチを作成し、そのまま切り替えます。`
}

// checkoutRef moves HEAD. Local branch names attach; everything else that
// resolves (tag, commit id, origin/ branch) detaches at the commit.
func checkoutRef(s *repo.Snapshot, token string) (*repo.Snapshot, string, error) {
	if _, isBranch := s.FindBranch(token); isBranch && !isRemoteBranch(token) {
		if s.Head.Attached() && s.Head.Ref == token {
			return s, fmt.Sprintf("Already on '%s'", token), nil
		}
		next := s.Clone()
		next.Head = repo.Head{Type: repo.HeadBranch, Ref: token}
		return next, fmt.Sprintf("Switched to branch '%s'", token), nil
	}

	id, ok := s.ResolveRef(token)
	if !ok {
		return nil, "", fmt.Errorf("error: pathspec '%s' did not match any file(s) known to git", token)
	}
	next := s.Clone()
	next.Head = repo.Head{Type: repo.HeadCommit, Ref: id}

	subject := ""
	if commit, found := next.FindCommit(id); found {
		subject = " " + firstLine(commit.Message)
	}
	out := fmt.Sprintf("Note: switching to '%s'.\n\nYou are in 'detached HEAD' state.\nHEAD is now at %s%s", token, id, subject)
	return next, out, nil
}

// createAndSwitch backs checkout -b and switch -c: new branch at the
// current HEAD commit, HEAD attached to it.
func createAndSwitch(s *repo.Snapshot, name string) (*repo.Snapshot, string, error) {
	if isRemoteBranch(name) {
		return nil, "", fmt.Errorf("fatal: '%s' is not a valid branch name", name)
	}
	if _, exists := s.FindBranch(name); exists {
		return nil, "", fmt.Errorf("fatal: a branch named '%s' already exists", name)
	}

	next := s.Clone()
	next.Branches = append(next.Branches, repo.Branch{Name: name, CommitID: next.EffectiveHeadCommit()})
	next.Head = repo.Head{Type: repo.HeadBranch, Ref: name}
	return next, fmt.Sprintf("Switched to a new branch '%s'", name), nil
}
