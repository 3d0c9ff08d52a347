// Package repo models a simulated git repository: the commit graph, branch
// and tag pointers, and HEAD. Everything in here is pure data plus pure
// queries; command handlers clone a snapshot, derive a new one, and hand it
// back. Nothing touches a filesystem or a real git object store.
package repo

import "fmt"

// Head states.
const (
	HeadBranch = "branch"
	HeadCommit = "commit"
)

// Commit is a node in the simulated history. Commits are appended and never
// removed; `commit --amend` rewrites Message and Timestamp on the existing
// ID instead of minting a new one, so lesson checks can rely on the ID
// staying stable across an amend.
type Commit struct {
	ID             string `json:"id"`
	Message        string `json:"message"`
	ParentID       string `json:"parentId"`
	SecondParentID string `json:"secondParentId,omitempty"`
	Timestamp      int64  `json:"timestamp"`
	Author         string `json:"author,omitempty"`
}

// Branch is a mutable pointer to a commit. Names prefixed "origin/" are
// simulated remote-tracking branches; HEAD never attaches to those.
type Branch struct {
	Name     string `json:"name"`
	CommitID string `json:"commitId"`
}

// Tag is a fixed pointer to a commit. Tags never move once created.
type Tag struct {
	Name     string `json:"name"`
	CommitID string `json:"commitId"`
}

// Head points either at a branch (attached) or directly at a commit
// (detached).
type Head struct {
	Type string `json:"type"` // "branch" or "commit"
	Ref  string `json:"ref"`
}

// Attached reports whether HEAD follows a branch.
func (h Head) Attached() bool {
	return h.Type == HeadBranch
}

// Snapshot is the whole repository state at one point in time. Handlers
// treat it as a value: Clone first, then mutate the clone.
type Snapshot struct {
	Commits  []Commit `json:"commits"`
	Branches []Branch `json:"branches"`
	Tags     []Tag    `json:"tags"`
	Head     Head     `json:"head"`
}

// Clone returns a deep copy. The copy shares nothing with the receiver, so
// callers may keep old snapshots around for undo history.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Commits:  make([]Commit, len(s.Commits)),
		Branches: make([]Branch, len(s.Branches)),
		Tags:     make([]Tag, len(s.Tags)),
		Head:     s.Head,
	}
	copy(out.Commits, s.Commits)
	copy(out.Branches, s.Branches)
	copy(out.Tags, s.Tags)
	return out
}

// FindCommit returns a pointer into the snapshot's commit list, so callers
// holding a clone can edit the record in place (amend does).
func (s *Snapshot) FindCommit(id string) (*Commit, bool) {
	for i := range s.Commits {
		if s.Commits[i].ID == id {
			return &s.Commits[i], true
		}
	}
	return nil, false
}

// FindBranch returns a pointer to the named branch, if present.
func (s *Snapshot) FindBranch(name string) (*Branch, bool) {
	for i := range s.Branches {
		if s.Branches[i].Name == name {
			return &s.Branches[i], true
		}
	}
	return nil, false
}

// FindTag returns a pointer to the named tag, if present.
func (s *Snapshot) FindTag(name string) (*Tag, bool) {
	for i := range s.Tags {
		if s.Tags[i].Name == name {
			return &s.Tags[i], true
		}
	}
	return nil, false
}

// Validate checks the structural invariants: no dangling parents, no
// duplicate ids or names, every pointer referencing a real commit, HEAD
// referencing a real branch or commit. Used by tests and when loading
// persisted sessions.
func (s *Snapshot) Validate() error {
	ids := make(map[string]bool, len(s.Commits))
	for _, c := range s.Commits {
		if c.ID == "" {
			return fmt.Errorf("commit with empty id")
		}
		if ids[c.ID] {
			return fmt.Errorf("duplicate commit id %q", c.ID)
		}
		ids[c.ID] = true
	}
	for _, c := range s.Commits {
		if c.ParentID != "" && !ids[c.ParentID] {
			return fmt.Errorf("commit %q: missing parent %q", c.ID, c.ParentID)
		}
		if c.SecondParentID != "" && !ids[c.SecondParentID] {
			return fmt.Errorf("commit %q: missing second parent %q", c.ID, c.SecondParentID)
		}
	}
	branches := make(map[string]bool, len(s.Branches))
	for _, b := range s.Branches {
		if branches[b.Name] {
			return fmt.Errorf("duplicate branch %q", b.Name)
		}
		branches[b.Name] = true
		if !ids[b.CommitID] {
			return fmt.Errorf("branch %q: missing commit %q", b.Name, b.CommitID)
		}
	}
	tags := make(map[string]bool, len(s.Tags))
	for _, t := range s.Tags {
		if tags[t.Name] {
			return fmt.Errorf("duplicate tag %q", t.Name)
		}
		tags[t.Name] = true
		if !ids[t.CommitID] {
			return fmt.Errorf("tag %q: missing commit %q", t.Name, t.CommitID)
		}
	}
	switch s.Head.Type {
	case HeadBranch:
		if !branches[s.Head.Ref] {
			return fmt.Errorf("HEAD attached to missing branch %q", s.Head.Ref)
		}
	case HeadCommit:
		if !ids[s.Head.Ref] {
			return fmt.Errorf("HEAD detached at missing commit %q", s.Head.Ref)
		}
	default:
		return fmt.Errorf("HEAD has unknown type %q", s.Head.Type)
	}
	return nil
}
