package session

import (
	"github.com/kurobon/gitdojo/backend/internal/repo"
)

// CommitView is a commit annotated with its graph placement.
type CommitView struct {
	repo.Commit
	Row  int `json:"row"`
	Lane int `json:"lane"`
}

// GraphView is the serialized state the frontend renders: the snapshot's
// commits newest first with row/lane placements, plus the raw refs.
type GraphView struct {
	Commits  []CommitView  `json:"commits"`
	Branches []repo.Branch `json:"branches"`
	Tags     []repo.Tag    `json:"tags"`
	Head     repo.Head     `json:"head"`
}

// BuildGraphView lays out a snapshot for rendering.
func BuildGraphView(s *repo.Snapshot) *GraphView {
	placements := repo.AssignLanes(s)
	commits := make([]CommitView, 0, len(placements))
	for _, p := range placements {
		commit, ok := s.FindCommit(p.CommitID)
		if !ok {
			continue
		}
		commits = append(commits, CommitView{Commit: *commit, Row: p.Row, Lane: p.Lane})
	}

	branches := make([]repo.Branch, len(s.Branches))
	copy(branches, s.Branches)
	tags := make([]repo.Tag, len(s.Tags))
	copy(tags, s.Tags)

	return &GraphView{
		Commits:  commits,
		Branches: branches,
		Tags:     tags,
		Head:     s.Head,
	}
}
