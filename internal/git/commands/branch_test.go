package commands

import (
	"testing"

	"github.com/kurobon/gitdojo/backend/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchCommand_Create(t *testing.T) {
	snap := mustRun(t, repo.NewInitSnapshot(), `git commit -m "Second"`)
	second := tip(t, snap, "main")

	// Test 1: Create at HEAD; HEAD itself stays on main
	res := run(snap, "git branch feature")
	require.True(t, res.Success)
	assert.Contains(t, res.Output, "Created branch feature")
	assert.Equal(t, second, tip(t, res.Snapshot, "feature"))
	assert.Equal(t, "main", res.Snapshot.Head.Ref)

	// Test 2: Create at an explicit start point
	res = run(snap, "git branch hotfix "+repo.InitCommitID)
	require.True(t, res.Success)
	assert.Equal(t, repo.InitCommitID, tip(t, res.Snapshot, "hotfix"))

	// Test 3: Duplicate name is rejected
	withFeature := mustRun(t, snap, "git branch feature")
	res = run(withFeature, "git branch feature")
	require.False(t, res.Success)
	assert.Contains(t, res.Output, "a branch named 'feature' already exists")
	assert.Equal(t, withFeature, res.Snapshot)

	// Test 4: Unresolvable start point is rejected
	res = run(snap, "git branch broken deadbeef")
	require.False(t, res.Success)
	assert.Contains(t, res.Output, "not a valid object name: 'deadbeef'")

	// Test 5: origin/ names are reserved for the simulated remote
	res = run(snap, "git branch origin/feature")
	require.False(t, res.Success)
	assert.Contains(t, res.Output, "not a valid branch name")
}

func TestBranchCommand_List(t *testing.T) {
	snap := mustRun(t, repo.NewInitSnapshot(), "git branch feature && git clone x && git branch dev")

	res := run(snap, "git branch")
	require.True(t, res.Success)

	// Sorted local branches, the checked-out one starred; origin/main hidden
	assert.Equal(t, "  dev\n* main", res.Output)
}

func TestBranchCommand_Rename(t *testing.T) {
	snap := repo.NewInitSnapshot()

	// Test 1: Rename the current branch; HEAD follows
	res := run(snap, "git branch -M trunk")
	require.True(t, res.Success)
	assert.Contains(t, res.Output, "Renamed branch main to trunk")
	next := res.Snapshot
	_, mainExists := next.FindBranch("main")
	assert.False(t, mainExists)
	assert.Equal(t, repo.InitCommitID, tip(t, next, "trunk"))
	assert.Equal(t, "trunk", next.Head.Ref)
	assert.True(t, next.Head.Attached())

	// Test 2: Force-rename replaces an existing branch of that name
	withDev := mustRun(t, snap, "git branch dev "+repo.InitCommitID)
	res = run(withDev, "git branch -M dev")
	require.True(t, res.Success)
	count := 0
	for _, b := range res.Snapshot.Branches {
		if b.Name == "dev" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, "dev", res.Snapshot.Head.Ref)

	// Test 3: Detached HEAD has no branch to rename
	detached := mustRun(t, snap, "git checkout "+repo.InitCommitID)
	res = run(detached, "git branch -M trunk")
	require.False(t, res.Success)
	assert.Contains(t, res.Output, "not currently on a branch")

	// Test 4: Missing new name
	res = run(snap, "git branch -M")
	require.False(t, res.Success)
	assert.Contains(t, res.Output, "usage: git branch -M")

	// Test 5: Unknown switches are rejected
	res = run(snap, "git branch -d main")
	require.False(t, res.Success)
	assert.Contains(t, res.Output, "unknown switch '-d'")
}
