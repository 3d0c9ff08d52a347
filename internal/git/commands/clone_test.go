package commands

import (
	"testing"

	"github.com/kurobon/gitdojo/backend/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneCommand_Execute(t *testing.T) {
	res := run(repo.NewInitSnapshot(), "git clone https://git.sandbox.example/demo.git")
	require.True(t, res.Success)
	snap := res.Snapshot

	// Test 1: The canned upstream history replaces whatever was there
	require.Len(t, snap.Commits, 2)
	assert.Equal(t, repo.CloneRootID, snap.Commits[0].ID)
	assert.Equal(t, repo.CloneTipID, snap.Commits[1].ID)
	assert.Equal(t, repo.CloneRootID, snap.Commits[1].ParentID)

	// Test 2: main and origin/main both sit at the tip, HEAD on main
	assert.Equal(t, repo.CloneTipID, tip(t, snap, "main"))
	assert.Equal(t, repo.CloneTipID, tip(t, snap, "origin/main"))
	assert.True(t, snap.Head.Attached())
	assert.Equal(t, "main", snap.Head.Ref)

	// Test 3: The transcript looks like a real clone
	assert.Contains(t, res.Output, "Cloning into 'demo'...")
	assert.Contains(t, res.Output, "remote: Enumerating objects")
	assert.Contains(t, res.Output, "Receiving objects: 100%")
	assert.Contains(t, res.Output, "Resolving deltas: 100%")

	// Test 4: Local work is discarded; clone always lands on the same state
	worked := mustRun(t, repo.NewInitSnapshot(), `git commit -m "Local work" && git branch feature`)
	res = run(worked, "git clone https://git.sandbox.example/demo.git")
	require.True(t, res.Success)
	assert.Equal(t, snap, res.Snapshot)
	_, gone := res.Snapshot.FindBranch("feature")
	assert.False(t, gone)
}

func TestCloneDirName(t *testing.T) {
	assert.Equal(t, "demo", cloneDirName("https://git.sandbox.example/demo.git"))
	assert.Equal(t, "demo", cloneDirName("https://git.sandbox.example/demo"))
	assert.Equal(t, "demo", cloneDirName("https://git.sandbox.example/deep/path/demo.git/"))
	assert.Equal(t, "repo", cloneDirName(""))
}
