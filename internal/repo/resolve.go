package repo

import (
	"strconv"
	"strings"
)

// A resolver tries one way of turning a token into a commit id. ResolveRef
// walks an ordered chain of these so the precedence rules live in exactly
// one place.
type resolver func(*Snapshot, string) (string, bool)

var resolvers = []resolver{
	resolveBranch,
	resolveTag,
	resolveCommit,
	resolveHeadLiteral,
}

// ResolveRef resolves a user-supplied token to a commit id. Precedence:
// branch name, then tag name, then commit id (exact, else unique prefix),
// then the literal token "HEAD". First match wins, so a branch shadows a
// tag or commit prefix of the same spelling.
func (s *Snapshot) ResolveRef(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	for _, r := range resolvers {
		if id, ok := r(s, token); ok {
			return id, true
		}
	}
	return "", false
}

// ResolveRevision extends ResolveRef with git's first-parent ancestor
// syntax: "ref~N" steps N first-parent edges back from ref, "ref~" means
// one step. Anything else falls through to plain ResolveRef.
func (s *Snapshot) ResolveRevision(token string) (string, bool) {
	base, countText, found := strings.Cut(token, "~")
	if !found {
		return s.ResolveRef(token)
	}
	count := 1
	if countText != "" {
		n, err := strconv.Atoi(countText)
		if err != nil || n < 0 {
			return "", false
		}
		count = n
	}
	id, ok := s.ResolveRef(base)
	if !ok {
		return "", false
	}
	return s.FirstParentWalk(id, count)
}

func resolveBranch(s *Snapshot, token string) (string, bool) {
	if b, ok := s.FindBranch(token); ok {
		return b.CommitID, true
	}
	return "", false
}

func resolveTag(s *Snapshot, token string) (string, bool) {
	if t, ok := s.FindTag(token); ok {
		return t.CommitID, true
	}
	return "", false
}

// resolveCommit matches an exact commit id first, then a prefix shared with
// exactly one commit. An ambiguous prefix is treated as no match.
func resolveCommit(s *Snapshot, token string) (string, bool) {
	if _, ok := s.FindCommit(token); ok {
		return token, true
	}
	match := ""
	for i := range s.Commits {
		if strings.HasPrefix(s.Commits[i].ID, token) {
			if match != "" {
				return "", false
			}
			match = s.Commits[i].ID
		}
	}
	return match, match != ""
}

func resolveHeadLiteral(s *Snapshot, token string) (string, bool) {
	if token != "HEAD" {
		return "", false
	}
	return s.EffectiveHeadCommit(), true
}
