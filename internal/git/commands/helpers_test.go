package commands

import (
	"context"
	"testing"
	"time"

	"github.com/kurobon/gitdojo/backend/internal/git"
	"github.com/kurobon/gitdojo/backend/internal/repo"
	"github.com/stretchr/testify/require"
)

// testClock pins the engine clock. NextTimestamp keeps new commits strictly
// after existing ones even with a frozen reading, so runs stay deterministic.
func testClock() time.Time {
	return time.UnixMilli(repo.BaseTimestamp)
}

func testEngine() *git.Engine {
	return &git.Engine{Now: testClock}
}

// run executes one input line against snap.
func run(snap *repo.Snapshot, line string) git.Result {
	return testEngine().Run(context.Background(), snap, line)
}

// mustRun executes a line that must succeed and returns the derived snapshot.
func mustRun(t *testing.T, snap *repo.Snapshot, line string) *repo.Snapshot {
	t.Helper()
	res := run(snap, line)
	require.True(t, res.Success, "`%s` failed: %s", line, res.Output)
	return res.Snapshot
}

// tip returns the commit id a branch points at.
func tip(t *testing.T, snap *repo.Snapshot, name string) string {
	t.Helper()
	b, ok := snap.FindBranch(name)
	require.True(t, ok, "branch %s not found", name)
	return b.CommitID
}

// divergedRepo builds two branches with one commit each past a shared base:
//
//	base -- "Main work"            <- main
//	    \-- "Feature work"         <- feature (checked out)
func divergedRepo(t *testing.T) *repo.Snapshot {
	t.Helper()
	s := repo.NewInitSnapshot()
	s = mustRun(t, s, `git commit -m "Base work"`)
	s = mustRun(t, s, "git branch feature")
	s = mustRun(t, s, `git commit -m "Main work"`)
	s = mustRun(t, s, "git checkout feature")
	s = mustRun(t, s, `git commit -m "Feature work"`)
	return s
}
