package commands

import (
	"testing"

	"github.com/kurobon/gitdojo/backend/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutCommand_Branch(t *testing.T) {
	snap := mustRun(t, repo.NewInitSnapshot(), `git commit -m "Second" && git branch feature`)

	// Test 1: Checkout a branch attaches HEAD, no pointers move
	res := run(snap, "git checkout feature")
	require.True(t, res.Success)
	assert.Contains(t, res.Output, "Switched to branch 'feature'")
	next := res.Snapshot
	assert.True(t, next.Head.Attached())
	assert.Equal(t, "feature", next.Head.Ref)
	assert.Equal(t, tip(t, snap, "feature"), tip(t, next, "feature"))

	// Test 2: Checking out the branch you are on
	res = run(next, "git checkout feature")
	require.True(t, res.Success)
	assert.Contains(t, res.Output, "Already on 'feature'")

	// Test 3: Unresolvable target fails, snapshot unchanged
	res = run(snap, "git checkout nope")
	require.False(t, res.Success)
	assert.Contains(t, res.Output, "error: pathspec 'nope' did not match any file(s) known to git")
	assert.Equal(t, snap, res.Snapshot)
}

func TestCheckoutCommand_Detach(t *testing.T) {
	snap := mustRun(t, repo.NewInitSnapshot(), `git commit -m "Second" && git tag v1.0 `+repo.InitCommitID)

	// Test 1: A commit id detaches HEAD
	res := run(snap, "git checkout "+repo.InitCommitID)
	require.True(t, res.Success)
	assert.Contains(t, res.Output, "You are in 'detached HEAD' state")
	assert.Contains(t, res.Output, "HEAD is now at "+repo.InitCommitID)
	assert.Equal(t, repo.HeadCommit, res.Snapshot.Head.Type)
	assert.Equal(t, repo.InitCommitID, res.Snapshot.Head.Ref)

	// Test 2: A tag detaches at the tagged commit
	res = run(snap, "git checkout v1.0")
	require.True(t, res.Success)
	assert.Equal(t, repo.HeadCommit, res.Snapshot.Head.Type)
	assert.Equal(t, repo.InitCommitID, res.Snapshot.Head.Ref)

	// Test 3: A remote-tracking branch detaches too, HEAD never attaches
	// to origin/ names
	cloned := mustRun(t, snap, "git clone")
	res = run(cloned, "git checkout origin/main")
	require.True(t, res.Success)
	assert.Equal(t, repo.HeadCommit, res.Snapshot.Head.Type)
	assert.Equal(t, repo.CloneTipID, res.Snapshot.Head.Ref)
}

func TestCheckoutCommand_CreateBranch(t *testing.T) {
	snap := mustRun(t, repo.NewInitSnapshot(), `git commit -m "Second"`)
	second := tip(t, snap, "main")

	// Test 1: -b creates at HEAD and switches
	res := run(snap, "git checkout -b feature")
	require.True(t, res.Success)
	assert.Contains(t, res.Output, "Switched to a new branch 'feature'")
	assert.Equal(t, second, tip(t, res.Snapshot, "feature"))
	assert.Equal(t, "feature", res.Snapshot.Head.Ref)

	// Test 2: -b from a detached HEAD reattaches at that commit
	detached := mustRun(t, snap, "git checkout "+repo.InitCommitID)
	res = run(detached, "git checkout -b hotfix")
	require.True(t, res.Success)
	assert.Equal(t, repo.InitCommitID, tip(t, res.Snapshot, "hotfix"))
	assert.True(t, res.Snapshot.Head.Attached())

	// Test 3: Existing name is rejected
	res = run(snap, "git checkout -b main")
	require.False(t, res.Success)
	assert.Contains(t, res.Output, "a branch named 'main' already exists")

	// Test 4: Missing name is rejected
	res = run(snap, "git checkout -b")
	require.False(t, res.Success)
	assert.Contains(t, res.Output, "usage: git checkout -b")
}
