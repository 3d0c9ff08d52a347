package commands

// push.go - Simulated Git Push Command
//
// Publishes the current branch to the simulated remote by moving (or
// creating) the matching origin/ tracking branch. There is no real network:
// the remote is whatever the origin/ branches in the snapshot say it is.

import (
	"context"
	"fmt"

	"github.com/kurobon/gitdojo/backend/internal/git"
	"github.com/kurobon/gitdojo/backend/internal/repo"
)

func init() {
	git.RegisterCommand("push", func() git.Command { return &PushCommand{} })
}

type PushCommand struct{}

var _ git.Command = (*PushCommand)(nil)

func (c *PushCommand) Execute(ctx context.Context, inv git.Invocation) (*repo.Snapshot, string, error) {
	if !inv.Snap.Head.Attached() {
		return nil, "", errNotOnBranch()
	}
	branch, ok := inv.Snap.CurrentBranch()
	if !ok {
		return nil, "", errNotOnBranch()
	}

	name := branch.Name
	localTip := branch.CommitID
	trackingName := "origin/" + name

	tracking, exists := inv.Snap.FindBranch(trackingName)
	if !exists {
		next := inv.Snap.Clone()
		next.Branches = append(next.Branches, repo.Branch{Name: trackingName, CommitID: localTip})
		out := fmt.Sprintf("To %s\n * [new branch]      %s -> %s", cannedRemoteURL, name, name)
		return next, out, nil
	}

	remoteTip := tracking.CommitID
	if remoteTip == localTip {
		return inv.Snap, "Everything up-to-date", nil
	}

	// The remote only accepts pushes it can fast-forward to.
	if !inv.Snap.IsAncestor(remoteTip, localTip) {
		msg := fmt.Sprintf("To %s\n"+
			" ! [rejected]        %s -> %s (non-fast-forward)\n"+
			"error: failed to push some refs to '%s'\n"+
			"hint: Updates were rejected because the tip of your current branch is behind\n"+
			"hint: its remote counterpart. Integrate the remote changes (e.g.\n"+
			"hint: 'git pull ...') before pushing again.",
			cannedRemoteURL, name, name, cannedRemoteURL)
		return nil, "", fmt.Errorf("%s", msg)
	}

	next := inv.Snap.Clone()
	updated, ok := next.FindBranch(trackingName)
	if !ok {
		return nil, "", fmt.Errorf("fatal: couldn't find remote ref %s", name)
	}
	updated.CommitID = localTip

	out := fmt.Sprintf("To %s\n   %s..%s  %s -> %s", cannedRemoteURL, remoteTip, localTip, name, name)
	return next, out, nil
}

func (c *PushCommand) Help() string {
	return `📘 GIT-PUSH (1)                                         Git Manual

 💡 DESCRIPTION
    ・現在のブランチをシミュレートされたリモートへ公開する
    ・リモート側が fast-forward できない場合は、本物の git と同じ
      ように non-fast-forward エラーで拒否されます

 📋 SYNOPSIS
    git push`
}
