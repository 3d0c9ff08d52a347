package commands

// utils.go - helpers shared by the command handlers

import (
	"fmt"
	"strings"

	"github.com/kurobon/gitdojo/backend/internal/repo"
)

// advanceHead moves whatever HEAD follows to the given commit: the attached
// branch when there is one, otherwise HEAD's own detached pointer. Callers
// pass a cloned snapshot.
func advanceHead(s *repo.Snapshot, commitID string) {
	if b, ok := s.CurrentBranch(); ok {
		b.CommitID = commitID
		return
	}
	s.Head.Ref = commitID
}

// headLabel names the checkout the way real git does in commit output:
// the branch name, or "detached HEAD".
func headLabel(s *repo.Snapshot) string {
	if s.Head.Attached() {
		return s.Head.Ref
	}
	return "detached HEAD"
}

// firstLine trims a message down to its subject line.
func firstLine(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		return message[:i]
	}
	return message
}

func errNotOnBranch() error {
	return fmt.Errorf("fatal: You are not currently on a branch.")
}

func errUnknownRevision(token string) error {
	return fmt.Errorf("fatal: ambiguous argument '%s': unknown revision or path not in the working tree.", token)
}

// isRemoteBranch reports whether a branch name denotes a simulated
// remote-tracking branch. Checkout never attaches to those.
func isRemoteBranch(name string) bool {
	return strings.HasPrefix(name, "origin/")
}
