package repo

import "time"

func timeAt(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// diamondSnapshot builds the classic merge diamond:
//
//	A ── B ──┐
//	└─── C ── D   (D: firstParent C, secondParent B)
//
// main sits at D, feature at B.
func diamondSnapshot() *Snapshot {
	return &Snapshot{
		Commits: []Commit{
			{ID: "aaa1111", Message: "A", Timestamp: BaseTimestamp, Author: DefaultAuthor},
			{ID: "bbb2222", Message: "B", ParentID: "aaa1111", Timestamp: BaseTimestamp + 1000, Author: DefaultAuthor},
			{ID: "ccc3333", Message: "C", ParentID: "aaa1111", Timestamp: BaseTimestamp + 2000, Author: DefaultAuthor},
			{ID: "ddd4444", Message: "D", ParentID: "ccc3333", SecondParentID: "bbb2222", Timestamp: BaseTimestamp + 3000, Author: DefaultAuthor},
		},
		Branches: []Branch{
			{Name: "main", CommitID: "ddd4444"},
			{Name: "feature", CommitID: "bbb2222"},
		},
		Tags: []Tag{},
		Head: Head{Type: HeadBranch, Ref: "main"},
	}
}

// chainSnapshot builds a linear history of n commits on main, ids
// "c0ffee0".."c0ffeeN".
func chainSnapshot(n int) *Snapshot {
	s := &Snapshot{Tags: []Tag{}, Head: Head{Type: HeadBranch, Ref: "main"}}
	parent := ""
	for i := 0; i < n; i++ {
		id := chainID(i)
		s.Commits = append(s.Commits, Commit{
			ID:        id,
			Message:   "step",
			ParentID:  parent,
			Timestamp: BaseTimestamp + int64(i)*1000,
			Author:    DefaultAuthor,
		})
		parent = id
	}
	s.Branches = []Branch{{Name: "main", CommitID: parent}}
	return s
}

func chainID(i int) string {
	return "c0ffee" + string(rune('0'+i))
}
