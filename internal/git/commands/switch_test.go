package commands

import (
	"testing"

	"github.com/kurobon/gitdojo/backend/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwitchCommand_Execute(t *testing.T) {
	snap := mustRun(t, repo.NewInitSnapshot(), "git branch feature")

	// Test 1: Switch attaches to the branch
	res := run(snap, "git switch feature")
	require.True(t, res.Success)
	assert.Contains(t, res.Output, "Switched to branch 'feature'")
	assert.Equal(t, "feature", res.Snapshot.Head.Ref)

	// Test 2: -c creates and switches, like checkout -b
	res = run(snap, "git switch -c topic")
	require.True(t, res.Success)
	assert.Contains(t, res.Output, "Switched to a new branch 'topic'")
	assert.Equal(t, repo.InitCommitID, tip(t, res.Snapshot, "topic"))
	assert.Equal(t, "topic", res.Snapshot.Head.Ref)

	// Test 3: A commit id detaches, same as checkout
	res = run(snap, "git switch "+repo.InitCommitID)
	require.True(t, res.Success)
	assert.Equal(t, repo.HeadCommit, res.Snapshot.Head.Type)

	// Test 4: Unresolvable target fails
	res = run(snap, "git switch nope")
	require.False(t, res.Success)
	assert.Equal(t, snap, res.Snapshot)
}
