package commands

import (
	"testing"

	"github.com/kurobon/gitdojo/backend/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommand_Execute(t *testing.T) {
	// Test 1: Init produces the canonical starting repository
	res := run(repo.NewInitSnapshot(), "git init")
	require.True(t, res.Success)
	assert.Contains(t, res.Output, "Initialized empty Git repository")

	snap := res.Snapshot
	require.Len(t, snap.Commits, 1)
	assert.Equal(t, repo.InitCommitID, snap.Commits[0].ID)
	assert.Equal(t, "Initial commit", snap.Commits[0].Message)
	assert.Equal(t, repo.InitCommitID, tip(t, snap, "main"))
	assert.True(t, snap.Head.Attached())
	assert.Equal(t, "main", snap.Head.Ref)

	// Test 2: Re-running init resets accumulated state to the same canonical
	// snapshot
	worked := mustRun(t, snap, `git commit -m "Throwaway" && git branch scratch`)
	require.Greater(t, len(worked.Commits), 1)

	again := mustRun(t, worked, "git init")
	assert.Equal(t, snap, again)
}
