package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placementByID(t *testing.T, ps []Placement, id string) Placement {
	t.Helper()
	for _, p := range ps {
		if p.CommitID == id {
			return p
		}
	}
	t.Fatalf("no placement for %s", id)
	return Placement{}
}

func TestAssignLanesLinearHistory(t *testing.T) {
	s := chainSnapshot(4)
	ps := AssignLanes(s)

	require.Len(t, ps, 4)
	for _, p := range ps {
		assert.Equal(t, 0, p.Lane, "linear history stays in a single lane")
	}
	// Rows run newest to oldest
	assert.Equal(t, chainID(3), ps[0].CommitID)
	assert.Equal(t, 0, ps[0].Row)
	assert.Equal(t, chainID(0), ps[3].CommitID)
	assert.Equal(t, 3, ps[3].Row)
}

func TestAssignLanesDivergedBranches(t *testing.T) {
	s := diamondSnapshot()
	// Drop the merge commit: main at C, feature at B, both children of A
	s.Commits = s.Commits[:3]
	s.Branches = []Branch{
		{Name: "main", CommitID: "ccc3333"},
		{Name: "feature", CommitID: "bbb2222"},
	}

	ps := AssignLanes(s)
	require.Len(t, ps, 3)

	c := placementByID(t, ps, "ccc3333")
	b := placementByID(t, ps, "bbb2222")
	a := placementByID(t, ps, "aaa1111")

	assert.Equal(t, 0, c.Lane, "newest tip takes the first lane")
	assert.Equal(t, 1, b.Lane, "diverged branch gets its own lane")
	assert.Equal(t, 0, a.Lane, "fork point collapses back to the left lane")
}

func TestAssignLanesMergeDiamond(t *testing.T) {
	ps := AssignLanes(diamondSnapshot())
	require.Len(t, ps, 4)

	assert.Equal(t, Placement{CommitID: "ddd4444", Row: 0, Lane: 0}, ps[0])
	assert.Equal(t, Placement{CommitID: "ccc3333", Row: 1, Lane: 0}, ps[1])
	assert.Equal(t, Placement{CommitID: "bbb2222", Row: 2, Lane: 1}, ps[2], "merged-in side keeps its own lane")
	assert.Equal(t, Placement{CommitID: "aaa1111", Row: 3, Lane: 0}, ps[3])
}

func TestAssignLanesDeterministic(t *testing.T) {
	s := diamondSnapshot()
	first := AssignLanes(s)
	second := AssignLanes(s)
	assert.Equal(t, first, second)
}
