// Package mirror materializes a simulated snapshot as a real in-memory git
// repository. The simulation tracks no file content, so every exported
// commit carries the empty tree; messages, authors, timestamps, parent
// edges and refs all round-trip. The mirror backs the export endpoint and
// the conformance tests that cross-check the simulation against go-git.
package mirror

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"

	"github.com/kurobon/gitdojo/backend/internal/repo"
)

// Export builds a real repository shaped like the snapshot: one empty-tree
// commit per simulated commit, branch and remote-tracking and tag refs, and
// HEAD either symbolic or detached. The returned map translates simulated
// commit ids to real hashes.
func Export(snap *repo.Snapshot) (*gogit.Repository, map[string]plumbing.Hash, error) {
	r, err := gogit.Init(memory.NewStorage(), memfs.New())
	if err != nil {
		return nil, nil, fmt.Errorf("init mirror repo: %w", err)
	}

	treeHash, err := writeEmptyTree(r)
	if err != nil {
		return nil, nil, fmt.Errorf("write empty tree: %w", err)
	}

	// Commits are appended to the snapshot as they are created, so parents
	// always precede their children in the slice.
	hashes := make(map[string]plumbing.Hash, len(snap.Commits))
	for _, c := range snap.Commits {
		var parents []plumbing.Hash
		for _, parentID := range []string{c.ParentID, c.SecondParentID} {
			if parentID == "" {
				continue
			}
			h, ok := hashes[parentID]
			if !ok {
				return nil, nil, fmt.Errorf("commit %s: parent %s not exported", c.ID, parentID)
			}
			parents = append(parents, h)
		}

		sig := signature(c)
		commit := &object.Commit{
			Author:       sig,
			Committer:    sig,
			Message:      c.Message,
			TreeHash:     treeHash,
			ParentHashes: parents,
		}
		obj := r.Storer.NewEncodedObject()
		if err := commit.Encode(obj); err != nil {
			return nil, nil, fmt.Errorf("encode commit %s: %w", c.ID, err)
		}
		h, err := r.Storer.SetEncodedObject(obj)
		if err != nil {
			return nil, nil, fmt.Errorf("store commit %s: %w", c.ID, err)
		}
		hashes[c.ID] = h
	}

	for _, b := range snap.Branches {
		h, ok := hashes[b.CommitID]
		if !ok {
			return nil, nil, fmt.Errorf("branch %s: commit %s not exported", b.Name, b.CommitID)
		}
		ref := plumbing.NewHashReference(branchRefName(b.Name), h)
		if err := r.Storer.SetReference(ref); err != nil {
			return nil, nil, fmt.Errorf("set ref %s: %w", ref.Name(), err)
		}
	}
	for _, t := range snap.Tags {
		h, ok := hashes[t.CommitID]
		if !ok {
			return nil, nil, fmt.Errorf("tag %s: commit %s not exported", t.Name, t.CommitID)
		}
		ref := plumbing.NewHashReference(plumbing.NewTagReferenceName(t.Name), h)
		if err := r.Storer.SetReference(ref); err != nil {
			return nil, nil, fmt.Errorf("set ref %s: %w", ref.Name(), err)
		}
	}

	var head *plumbing.Reference
	if snap.Head.Attached() {
		head = plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName(snap.Head.Ref))
	} else {
		h, ok := hashes[snap.Head.Ref]
		if !ok {
			return nil, nil, fmt.Errorf("HEAD: commit %s not exported", snap.Head.Ref)
		}
		head = plumbing.NewHashReference(plumbing.HEAD, h)
	}
	if err := r.Storer.SetReference(head); err != nil {
		return nil, nil, fmt.Errorf("set HEAD: %w", err)
	}

	return r, hashes, nil
}

// branchRefName maps a simulated branch name to the ref namespace real git
// would use: origin/x lives under refs/remotes, everything else under
// refs/heads.
func branchRefName(name string) plumbing.ReferenceName {
	if strings.HasPrefix(name, "origin/") {
		return plumbing.NewRemoteReferenceName("origin", strings.TrimPrefix(name, "origin/"))
	}
	return plumbing.NewBranchReferenceName(name)
}

func writeEmptyTree(r *gogit.Repository) (plumbing.Hash, error) {
	obj := r.Storer.NewEncodedObject()
	if err := (&object.Tree{}).Encode(obj); err != nil {
		return plumbing.ZeroHash, err
	}
	return r.Storer.SetEncodedObject(obj)
}

// signature builds a deterministic author identity; the simulation has no
// emails, and the UTC normalization keeps hashes machine-independent.
func signature(c repo.Commit) object.Signature {
	name := c.Author
	if name == "" {
		name = repo.DefaultAuthor
	}
	return object.Signature{
		Name:  name,
		Email: strings.ToLower(name) + "@gitdojo.local",
		When:  time.UnixMilli(c.Timestamp).UTC(),
	}
}
