package commands

// log.go - Simulated Git Log Command
//
// Prints every commit in the snapshot, newest logical timestamp first. The
// whole arena is shown, including commits no branch references anymore
// (after a rebase, say), which is exactly what the graph view draws too.

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kurobon/gitdojo/backend/internal/git"
	"github.com/kurobon/gitdojo/backend/internal/repo"
)

func init() {
	git.RegisterCommand("log", func() git.Command { return &LogCommand{} })
}

type LogCommand struct{}

var _ git.Command = (*LogCommand)(nil)

func (c *LogCommand) Execute(ctx context.Context, inv git.Invocation) (*repo.Snapshot, string, error) {
	var sb strings.Builder
	for _, commit := range inv.Snap.SortedCommits() {
		sb.WriteString(fmt.Sprintf("commit %s\nAuthor: %s\nDate:   %s\n\n    %s\n\n",
			commit.ID,
			commit.Author,
			time.UnixMilli(commit.Timestamp).UTC().Format(time.RFC3339),
			strings.ReplaceAll(commit.Message, "\n", "\n    "),
		))
	}
	return inv.Snap, strings.TrimRight(sb.String(), "\n"), nil
}

func (c *LogCommand) Help() string {
	return `usage: git log

Show commit history, newest first.`
}
