package mirror

import (
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/kurobon/gitdojo/backend/internal/repo"
)

// View is the serialized form of an exported repository: every ref, the
// simulated-id to real-hash table, and the log as real git walks it from
// HEAD.
type View struct {
	Refs map[string]string `json:"refs"`
	IDs  map[string]string `json:"ids"`
	Log  []LogEntry        `json:"log"`
}

// LogEntry is one commit in the mirrored log, newest first.
type LogEntry struct {
	Hash    string   `json:"hash"`
	Parents []string `json:"parents,omitempty"`
	Message string   `json:"message"`
	Author  string   `json:"author"`
	When    int64    `json:"when"`
}

// ExportView runs Export and flattens the result for the export endpoint.
func ExportView(snap *repo.Snapshot) (*View, error) {
	r, hashes, err := Export(snap)
	if err != nil {
		return nil, err
	}

	view := &View{
		Refs: make(map[string]string),
		IDs:  make(map[string]string, len(hashes)),
	}
	for id, h := range hashes {
		view.IDs[id] = h.String()
	}

	refs, err := r.References()
	if err != nil {
		return nil, err
	}
	if err := refs.ForEach(func(ref *plumbing.Reference) error {
		if ref.Type() == plumbing.SymbolicReference {
			view.Refs[ref.Name().String()] = ref.Target().String()
		} else {
			view.Refs[ref.Name().String()] = ref.Hash().String()
		}
		return nil
	}); err != nil {
		return nil, err
	}
	// References skips HEAD in some storers; resolve it explicitly.
	if head, err := r.Reference(plumbing.HEAD, false); err == nil {
		if head.Type() == plumbing.SymbolicReference {
			view.Refs["HEAD"] = head.Target().String()
		} else {
			view.Refs["HEAD"] = head.Hash().String()
		}
	}

	from, ok := hashes[snap.EffectiveHeadCommit()]
	if !ok {
		return view, nil
	}
	iter, err := r.Log(&gogit.LogOptions{From: from, Order: gogit.LogOrderCommitterTime})
	if err != nil {
		return nil, err
	}
	if err := iter.ForEach(func(c *object.Commit) error {
		entry := LogEntry{
			Hash:    c.Hash.String(),
			Message: c.Message,
			Author:  c.Author.Name,
			When:    c.Author.When.UnixMilli(),
		}
		for _, p := range c.ParentHashes {
			entry.Parents = append(entry.Parents, p.String())
		}
		view.Log = append(view.Log, entry)
		return nil
	}); err != nil {
		return nil, err
	}
	return view, nil
}
