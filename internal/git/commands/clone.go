package commands

// clone.go - Simulated Git Clone Command
//
// No network is involved: clone replaces the whole snapshot with the
// canned two-commit upstream history, wires up origin/main, and prints a
// transcript shaped like a real clone so the terminal feels right.

import (
	"context"
	"fmt"
	"strings"

	"github.com/kurobon/gitdojo/backend/internal/git"
	"github.com/kurobon/gitdojo/backend/internal/repo"
)

func init() {
	git.RegisterCommand("clone", func() git.Command { return &CloneCommand{} })
}

type CloneCommand struct{}

var _ git.Command = (*CloneCommand)(nil)

func (c *CloneCommand) Execute(ctx context.Context, inv git.Invocation) (*repo.Snapshot, string, error) {
	url := cannedRemoteURL
	if len(inv.Args) > 1 {
		url = inv.Args[1]
	}

	out := strings.Join([]string{
		fmt.Sprintf("Cloning into '%s'...", cloneDirName(url)),
		"remote: Enumerating objects: 6, done.",
		"remote: Counting objects: 100% (6/6), done.",
		"remote: Compressing objects: 100% (4/4), done.",
		"Receiving objects: 100% (6/6), done.",
		"Resolving deltas: 100% (1/1), done.",
	}, "\n")

	return repo.NewCloneSnapshot(), out, nil
}

// cloneDirName mimics how git names the target directory: last path
// segment of the URL, minus a .git suffix.
func cloneDirName(url string) string {
	name := strings.TrimRight(url, "/")
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, ".git")
	if name == "" {
		name = "repo"
	}
	return name
}

func (c *CloneCommand) Help() string {
	return `usage: git clone <url>

Clone the simulated upstream repository. Always produces the same small
history with main and origin/main, whatever the URL says.`
}
