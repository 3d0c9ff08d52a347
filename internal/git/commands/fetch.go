package commands

// fetch.go - Simulated Git Fetch Command
//
// Pretends the upstream moved: appends one synthetic commit on top of
// origin/main and advances only that remote-tracking pointer. The local
// branch is untouched, which is the lesson fetch is meant to teach.

import (
	"context"
	"fmt"

	"github.com/kurobon/gitdojo/backend/internal/git"
	"github.com/kurobon/gitdojo/backend/internal/repo"
)

// remoteUpdateMessage is the message on the synthetic commits fetch
// invents upstream.
const remoteUpdateMessage = "Remote update"

func init() {
	git.RegisterCommand("fetch", func() git.Command { return &FetchCommand{} })
}

type FetchCommand struct{}

var _ git.Command = (*FetchCommand)(nil)

func (c *FetchCommand) Execute(ctx context.Context, inv git.Invocation) (*repo.Snapshot, string, error) {
	if _, ok := inv.Snap.FindBranch("origin/main"); !ok {
		return nil, "", fmt.Errorf("fatal: 'origin' does not appear to be a git repository")
	}

	next := inv.Snap.Clone()
	remote, _ := next.FindBranch("origin/main")
	oldTip := remote.CommitID

	ts := next.NextTimestamp(inv.Now)
	id := repo.NewCommitID(next, remoteUpdateMessage, oldTip, ts)
	next.Commits = append(next.Commits, repo.Commit{
		ID:        id,
		Message:   remoteUpdateMessage,
		ParentID:  oldTip,
		Timestamp: ts,
		Author:    repo.RemoteAuthor,
	})
	remote.CommitID = id

	out := fmt.Sprintf("remote: Enumerating objects: 3, done.\nFrom %s\n   %s..%s  main       -> origin/main",
		cannedRemoteURL, oldTip, id)
	return next, out, nil
}

func (c *FetchCommand) Help() string {
	return `usage: git fetch

Download new upstream history into origin/main without touching local
branches. The sandbox simulates one new upstream commit per fetch.`
}
