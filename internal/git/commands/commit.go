package commands

// commit.go - Simulated Git Commit Command
//
// Appends a commit on top of the effective HEAD, or rewrites the HEAD
// commit with --amend. Amending keeps the existing id and only replaces
// message and timestamp; lesson checks depend on the id staying put, so
// this must not be "fixed" to mint a new id like real git does.

import (
	"context"
	"fmt"

	"github.com/kurobon/gitdojo/backend/internal/git"
	"github.com/kurobon/gitdojo/backend/internal/repo"
)

// placeholderMessage stands in when no -m message could be extracted;
// commit itself never fails on bad arguments.
const placeholderMessage = "Quick commit"

func init() {
	git.RegisterCommand("commit", func() git.Command { return &CommitCommand{} })
}

type CommitCommand struct{}

// Ensure CommitCommand implements git.Command
var _ git.Command = (*CommitCommand)(nil)

type commitOptions struct {
	Message    string
	HasMessage bool
	Amend      bool
}

func (c *CommitCommand) Execute(ctx context.Context, inv git.Invocation) (*repo.Snapshot, string, error) {
	opts := c.parseArgs(inv.Args)
	if opts.Amend {
		return c.amend(inv, opts)
	}

	message := opts.Message
	if message == "" {
		message = placeholderMessage
	}

	next := inv.Snap.Clone()
	parent := next.EffectiveHeadCommit()
	ts := next.NextTimestamp(inv.Now)
	id := repo.NewCommitID(next, message, parent, ts)
	next.Commits = append(next.Commits, repo.Commit{
		ID:        id,
		Message:   message,
		ParentID:  parent,
		Timestamp: ts,
		Author:    repo.DefaultAuthor,
	})
	advanceHead(next, id)

	return next, fmt.Sprintf("[%s %s] %s", headLabel(next), id, firstLine(message)), nil
}

func (c *CommitCommand) amend(inv git.Invocation, opts commitOptions) (*repo.Snapshot, string, error) {
	next := inv.Snap.Clone()
	commit, ok := next.FindCommit(next.EffectiveHeadCommit())
	if !ok {
		return nil, "", fmt.Errorf("fatal: you have nothing to amend")
	}

	if opts.HasMessage && opts.Message != "" {
		commit.Message = opts.Message
	}
	commit.Timestamp = next.NextTimestamp(inv.Now)

	return next, fmt.Sprintf("[%s %s] %s", headLabel(next), commit.ID, firstLine(commit.Message)), nil
}

// parseArgs is deliberately lenient: commit must not fail on odd flags, it
// falls back to a placeholder message instead.
func (c *CommitCommand) parseArgs(args []string) commitOptions {
	var opts commitOptions
	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "-m", "-am", "--message":
			if i+1 < len(args) {
				opts.Message = args[i+1]
				opts.HasMessage = true
				i++
			}
		case "--amend":
			opts.Amend = true
		default:
			// -a, --no-edit, stray paths: accepted and ignored
		}
	}
	return opts
}

func (c *CommitCommand) Help() string {
	return `📘 GIT-COMMIT (1)                                       Git Manual

 💡 DESCRIPTION
    ・変更を記録（セーブ）する
    ・メッセージを付けてコミットを作成する

 📋 SYNOPSIS
    git commit -m <msg>
    git commit --amend [-m <msg>]

 ⚙️  COMMON OPTIONS
    -m <msg>
        コミットメッセージを指定します。省略すると仮のメッセージが使われます。

    --amend
        直前のコミットのメッセージを修正します。このサンドボックスでは
        コミットIDは変わりません。`
}
