package commands

import (
	"testing"

	"github.com/kurobon/gitdojo/backend/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPullCommand_FastForward(t *testing.T) {
	snap := mustRun(t, repo.NewInitSnapshot(), "git clone")

	// main sits at the old upstream tip, so the merge half fast-forwards
	res := run(snap, "git pull")
	require.True(t, res.Success)
	next := res.Snapshot

	require.Len(t, next.Commits, 3)
	fetched := next.Commits[2]
	assert.Equal(t, remoteUpdateMessage, fetched.Message)
	assert.Equal(t, fetched.ID, tip(t, next, "origin/main"))
	assert.Equal(t, fetched.ID, tip(t, next, "main"))

	// Output shows both halves
	assert.Contains(t, res.Output, "From "+cannedRemoteURL)
	assert.Contains(t, res.Output, "Fast-forward")
}

func TestPullCommand_MergeDivergence(t *testing.T) {
	snap := mustRun(t, repo.NewInitSnapshot(), `git clone && git commit -m "Local work"`)
	localTip := tip(t, snap, "main")

	res := run(snap, "git pull")
	require.True(t, res.Success)
	next := res.Snapshot

	// One fetched commit plus one merge commit
	require.Len(t, next.Commits, len(snap.Commits)+2)
	merge := next.Commits[len(next.Commits)-1]
	assert.Equal(t, "Merge remote-tracking branch 'origin/main'", merge.Message)
	assert.Equal(t, localTip, merge.ParentID)
	assert.Equal(t, tip(t, next, "origin/main"), merge.SecondParentID)
	assert.Equal(t, merge.ID, tip(t, next, "main"))
	assert.Contains(t, res.Output, "Merge made by the 'ort' strategy")
}

func TestPullCommand_Failures(t *testing.T) {
	// Test 1: No origin/main means the fetch half fails and nothing changes
	snap := repo.NewInitSnapshot()
	res := run(snap, "git pull")
	require.False(t, res.Success)
	assert.Contains(t, res.Output, "'origin' does not appear to be a git repository")
	assert.Equal(t, snap, res.Snapshot)

	// Test 2: Detached HEAD fails the merge half; the fetched commit is
	// discarded with it
	detached := mustRun(t, repo.NewInitSnapshot(), "git clone && git checkout "+repo.CloneRootID)
	res = run(detached, "git pull")
	require.False(t, res.Success)
	assert.Contains(t, res.Output, "not currently on a branch")
	assert.Equal(t, detached, res.Snapshot)
	assert.Len(t, res.Snapshot.Commits, 2)
}
