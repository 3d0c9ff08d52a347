package commands

import (
	"testing"

	"github.com/kurobon/gitdojo/backend/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagCommand_Execute(t *testing.T) {
	snap := mustRun(t, repo.NewInitSnapshot(), `git commit -m "Second"`)
	second := tip(t, snap, "main")

	// Test 1: Tag at HEAD
	res := run(snap, "git tag v1.0")
	require.True(t, res.Success)
	assert.Contains(t, res.Output, "Created tag v1.0 at "+second)
	tag, ok := res.Snapshot.FindTag("v1.0")
	require.True(t, ok)
	assert.Equal(t, second, tag.CommitID)

	// Test 2: Tag at an explicit ref
	res = run(snap, "git tag v0.9 "+repo.InitCommitID)
	require.True(t, res.Success)
	tag, ok = res.Snapshot.FindTag("v0.9")
	require.True(t, ok)
	assert.Equal(t, repo.InitCommitID, tag.CommitID)

	// Test 3: The tag name resolves afterwards
	tagged := mustRun(t, snap, "git tag v1.0")
	id, ok := tagged.ResolveRef("v1.0")
	require.True(t, ok)
	assert.Equal(t, second, id)

	// Test 4: Tags are immutable; re-tagging the name fails
	res = run(tagged, "git tag v1.0 "+repo.InitCommitID)
	require.False(t, res.Success)
	assert.Contains(t, res.Output, "fatal: tag 'v1.0' already exists")
	tag, ok = res.Snapshot.FindTag("v1.0")
	require.True(t, ok)
	assert.Equal(t, second, tag.CommitID)

	// Test 5: A name is required
	res = run(snap, "git tag")
	require.False(t, res.Success)
	assert.Contains(t, res.Output, "usage: git tag <tagname>")

	// Test 6: Unresolvable target fails
	res = run(snap, "git tag v2.0 deadbeef")
	require.False(t, res.Success)
	assert.Contains(t, res.Output, "fatal: not a valid object name 'deadbeef'")
}
