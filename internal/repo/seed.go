package repo

// DefaultAuthor is the signature attached to commits the learner creates.
const DefaultAuthor = "User"

// RemoteAuthor signs the synthetic commits fetch invents on origin/main.
const RemoteAuthor = "origin"

// InitCommitID is the root commit of the canonical fresh repository. It is
// fixed so `git init` is idempotent and snapshots from different sessions
// compare equal.
const InitCommitID = "e83c516"

// Canned clone history: a root commit and one child, with main and
// origin/main both at the child.
const (
	CloneRootID = "9fceb02"
	CloneTipID  = "41c3b8f"
)

// BaseTimestamp is the logical time of the canonical root commits. Real
// wall-clock time only matters in that later commits must sort after it;
// NextTimestamp takes care of that.
const BaseTimestamp int64 = 1700000000000

// NewInitSnapshot builds the canonical fresh repository: one root commit on
// main, HEAD attached to main.
func NewInitSnapshot() *Snapshot {
	return &Snapshot{
		Commits: []Commit{
			{ID: InitCommitID, Message: "Initial commit", Timestamp: BaseTimestamp, Author: DefaultAuthor},
		},
		Branches: []Branch{
			{Name: "main", CommitID: InitCommitID},
		},
		Tags: []Tag{},
		Head: Head{Type: HeadBranch, Ref: "main"},
	}
}

// NewCloneSnapshot builds the canned history `git clone` hands out: two
// commits, main and origin/main both at the tip, HEAD attached to main.
func NewCloneSnapshot() *Snapshot {
	return &Snapshot{
		Commits: []Commit{
			{ID: CloneRootID, Message: "Initial commit", Timestamp: BaseTimestamp, Author: DefaultAuthor},
			{ID: CloneTipID, Message: "Add project README", ParentID: CloneRootID, Timestamp: BaseTimestamp + 1000, Author: DefaultAuthor},
		},
		Branches: []Branch{
			{Name: "main", CommitID: CloneTipID},
			{Name: "origin/main", CommitID: CloneTipID},
		},
		Tags: []Tag{},
		Head: Head{Type: HeadBranch, Ref: "main"},
	}
}
