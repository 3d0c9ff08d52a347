// Package lesson loads guided exercises from YAML and evaluates their
// completion checks against a repository snapshot. The command engine knows
// nothing about lessons; a check is a pure predicate over a snapshot, so
// verification is just "run the checks against whatever the session holds".
package lesson

import (
	"fmt"
	"strings"

	"github.com/kurobon/gitdojo/backend/internal/repo"
)

// Lesson is one exercise: a task description, setup commands replayed
// through the engine to build the starting state, and the checks that decide
// completion.
type Lesson struct {
	ID    string `yaml:"id" json:"id"`
	Title string `yaml:"title" json:"title"`
	Task  string `yaml:"task" json:"task"`

	Setup  []string `yaml:"setup" json:"-"`  // Commands replayed to build the starting state
	Checks []Check  `yaml:"checks" json:"-"` // Completion checks, all must pass

	Hints []string `yaml:"hints" json:"hints"`
}

// Check is a single completion condition. Which fields matter depends on
// Type: branch_exists, current_branch, detached_head, commit_message,
// merge_commit, commit_count, tag_exists, branches_equal.
type Check struct {
	Type        string `yaml:"type"`
	Description string `yaml:"description"` // User facing; a default is derived when empty
	Name        string `yaml:"name"`        // branch_exists, current_branch, tag_exists
	Pattern     string `yaml:"pattern"`     // commit_message substring
	AtLeast     int    `yaml:"at_least"`    // commit_count lower bound
	A           string `yaml:"a"`           // branches_equal pair
	B           string `yaml:"b"`
	Negate      bool   `yaml:"negate"` // Inverts the pass condition
}

// CheckResult reports one check's outcome for the verify response.
type CheckResult struct {
	Description string `json:"description"`
	Passed      bool   `json:"passed"`
}

// Result is the outcome of evaluating every check in a lesson.
type Result struct {
	Complete bool          `json:"complete"`
	Checks   []CheckResult `json:"checks"`
}

// Evaluate runs every check against the snapshot. Complete is true only
// when all checks pass.
func Evaluate(l *Lesson, snap *repo.Snapshot) Result {
	res := Result{Complete: true, Checks: make([]CheckResult, 0, len(l.Checks))}
	for _, c := range l.Checks {
		passed := c.holds(snap)
		if c.Negate {
			passed = !passed
		}
		res.Checks = append(res.Checks, CheckResult{Description: c.describe(), Passed: passed})
		if !passed {
			res.Complete = false
		}
	}
	return res
}

// holds evaluates the un-negated condition. Unknown types never get here;
// validate rejects them at load time.
func (c Check) holds(s *repo.Snapshot) bool {
	switch c.Type {
	case "branch_exists":
		_, ok := s.FindBranch(c.Name)
		return ok

	case "current_branch":
		return s.Head.Attached() && s.Head.Ref == c.Name

	case "detached_head":
		return !s.Head.Attached()

	case "commit_message":
		for _, commit := range s.Commits {
			if strings.Contains(commit.Message, c.Pattern) {
				return true
			}
		}
		return false

	case "merge_commit":
		for _, commit := range s.Commits {
			if commit.SecondParentID != "" {
				return true
			}
		}
		return false

	case "commit_count":
		return len(s.Commits) >= c.AtLeast

	case "tag_exists":
		_, ok := s.FindTag(c.Name)
		return ok

	case "branches_equal":
		a, okA := s.FindBranch(c.A)
		b, okB := s.FindBranch(c.B)
		return okA && okB && a.CommitID == b.CommitID
	}
	return false
}

// describe returns the user facing text for a check, deriving one from the
// check's parameters when the author did not write a description.
func (c Check) describe() string {
	if c.Description != "" {
		return c.Description
	}
	var text string
	switch c.Type {
	case "branch_exists":
		text = fmt.Sprintf("branch %q exists", c.Name)
	case "current_branch":
		text = fmt.Sprintf("HEAD is on branch %q", c.Name)
	case "detached_head":
		text = "HEAD is detached"
	case "commit_message":
		text = fmt.Sprintf("a commit message contains %q", c.Pattern)
	case "merge_commit":
		text = "history contains a merge commit"
	case "commit_count":
		text = fmt.Sprintf("history has at least %d commits", c.AtLeast)
	case "tag_exists":
		text = fmt.Sprintf("tag %q exists", c.Name)
	case "branches_equal":
		text = fmt.Sprintf("%s and %s point at the same commit", c.A, c.B)
	default:
		text = c.Type
	}
	if c.Negate {
		return "not: " + text
	}
	return text
}

// validate rejects unknown check types and missing parameters when the
// lesson file is loaded, so authoring mistakes surface immediately instead
// of as checks that silently never pass.
func (c Check) validate() error {
	switch c.Type {
	case "branch_exists", "current_branch", "tag_exists":
		if c.Name == "" {
			return fmt.Errorf("check %q requires a name", c.Type)
		}
	case "commit_message":
		if c.Pattern == "" {
			return fmt.Errorf("check %q requires a pattern", c.Type)
		}
	case "commit_count":
		if c.AtLeast < 1 {
			return fmt.Errorf("check %q requires at_least of 1 or more", c.Type)
		}
	case "branches_equal":
		if c.A == "" || c.B == "" {
			return fmt.Errorf("check %q requires both a and b", c.Type)
		}
	case "detached_head", "merge_commit":
		// No parameters.
	default:
		return fmt.Errorf("unknown check type %q", c.Type)
	}
	return nil
}

func (l *Lesson) validate() error {
	if l.ID == "" {
		return fmt.Errorf("lesson has no id")
	}
	if len(l.Checks) == 0 {
		return fmt.Errorf("lesson %q has no checks", l.ID)
	}
	for i, c := range l.Checks {
		if err := c.validate(); err != nil {
			return fmt.Errorf("lesson %q check %d: %w", l.ID, i+1, err)
		}
	}
	return nil
}
