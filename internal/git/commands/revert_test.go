package commands

import (
	"testing"

	"github.com/kurobon/gitdojo/backend/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevertCommand_Execute(t *testing.T) {
	snap := mustRun(t, repo.NewInitSnapshot(), `git commit -m "Break the build"`)
	broken := tip(t, snap, "main")

	// Test 1: Revert adds an inverse commit on top of HEAD
	res := run(snap, "git revert "+broken)
	require.True(t, res.Success)
	next := res.Snapshot

	require.Len(t, next.Commits, 3)
	created := next.Commits[2]
	assert.Equal(t, `Revert "Break the build"`, created.Message)
	assert.Equal(t, broken, created.ParentID)
	assert.Equal(t, created.ID, tip(t, next, "main"))
	assert.Contains(t, res.Output, created.ID)

	// The reverted commit itself is untouched
	_, stillThere := next.FindCommit(broken)
	assert.True(t, stillThere)

	// Test 2: HEAD also works as the target
	res = run(snap, "git revert HEAD")
	require.True(t, res.Success)
	assert.Equal(t, `Revert "Break the build"`, res.Snapshot.Commits[2].Message)

	// Test 3: Unresolvable revision fails
	res = run(snap, "git revert deadbeef")
	require.False(t, res.Success)
	assert.Contains(t, res.Output, "fatal: bad revision 'deadbeef'")
	assert.Equal(t, snap, res.Snapshot)
}
