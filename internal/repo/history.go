package repo

import (
	"sort"
	"time"
)

// EffectiveHeadCommit returns the commit HEAD ultimately points at:
// attached HEAD resolves through its branch, detached HEAD is its own ref.
// A missing branch falls back to the canonical root commit id; that path
// only exists so a half-corrupt state cannot take the engine down.
func (s *Snapshot) EffectiveHeadCommit() string {
	if s.Head.Attached() {
		if b, ok := s.FindBranch(s.Head.Ref); ok {
			return b.CommitID
		}
		return InitCommitID
	}
	return s.Head.Ref
}

// CurrentBranch returns the branch HEAD is attached to. Every handler that
// needs "the current branch" goes through here.
func (s *Snapshot) CurrentBranch() (*Branch, bool) {
	if !s.Head.Attached() {
		return nil, false
	}
	return s.FindBranch(s.Head.Ref)
}

// IsAncestor reports whether ancestorID is reachable from descendantID by
// following parent edges, counting a commit as its own ancestor. Breadth
// first with a visited set, so merge diamonds terminate instead of
// revisiting shared history.
func (s *Snapshot) IsAncestor(ancestorID, descendantID string) bool {
	if ancestorID == descendantID {
		_, ok := s.FindCommit(ancestorID)
		return ok
	}
	visited := map[string]bool{descendantID: true}
	queue := []string{descendantID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		c, ok := s.FindCommit(id)
		if !ok {
			continue
		}
		for _, parent := range []string{c.ParentID, c.SecondParentID} {
			if parent == "" || visited[parent] {
				continue
			}
			if parent == ancestorID {
				return true
			}
			visited[parent] = true
			queue = append(queue, parent)
		}
	}
	return false
}

// FirstParentWalk follows first-parent edges n times from startID. It fails
// when the walk runs off the root.
func (s *Snapshot) FirstParentWalk(startID string, n int) (string, bool) {
	id := startID
	for i := 0; i < n; i++ {
		c, ok := s.FindCommit(id)
		if !ok || c.ParentID == "" {
			return "", false
		}
		id = c.ParentID
	}
	if _, ok := s.FindCommit(id); !ok {
		return "", false
	}
	return id, true
}

// FirstParentChain lists the first-parent lineage of startID, beginning with
// startID itself and ending at the root. Unknown ids yield an empty chain.
func (s *Snapshot) FirstParentChain(startID string) []string {
	var chain []string
	id := startID
	for id != "" {
		c, ok := s.FindCommit(id)
		if !ok {
			break
		}
		chain = append(chain, id)
		id = c.ParentID
	}
	return chain
}

// NextTimestamp picks the logical time for a commit about to be created:
// after every existing commit, and no earlier than now. Rapid successive
// commands therefore still order correctly even inside one wall-clock
// millisecond.
func (s *Snapshot) NextTimestamp(now time.Time) int64 {
	ts := now.UnixMilli()
	for i := range s.Commits {
		if s.Commits[i].Timestamp >= ts {
			ts = s.Commits[i].Timestamp + 1
		}
	}
	return ts
}

// SortedCommits returns a copy of the commit list ordered newest timestamp
// first, ties broken by id so the order is stable for rendering and log
// output.
func (s *Snapshot) SortedCommits() []Commit {
	out := make([]Commit, len(s.Commits))
	copy(out, s.Commits)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Timestamp != out[j].Timestamp {
			return out[i].Timestamp > out[j].Timestamp
		}
		return out[i].ID < out[j].ID
	})
	return out
}
