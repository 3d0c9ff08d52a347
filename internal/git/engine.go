// Package git is the command engine of the sandbox. It parses a learner's
// input line, dispatches to per-verb handlers out of a registry, and runs
// "&&"-joined sequences all-or-nothing against an evolving snapshot. The
// engine is pure: handlers derive new snapshots and never touch the one they
// were given, so callers can keep old snapshots for undo.
package git

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kurobon/gitdojo/backend/internal/repo"
)

// Invocation is one parsed `git <verb> ...` call handed to a handler.
type Invocation struct {
	Snap *repo.Snapshot // state the command runs against; handlers must not mutate it
	Args []string       // args[0] is the verb
	Now  time.Time      // clock reading for new commit timestamps
}

// Command is one whitelisted git verb. Execute returns the derived snapshot
// (nil means unchanged), the text to print, and an error carrying the
// git-style message when the command fails.
type Command interface {
	Execute(ctx context.Context, inv Invocation) (*repo.Snapshot, string, error)
	Help() string
}

// CommandFactory allows creating new instances of commands
type CommandFactory func() Command

var registry = make(map[string]CommandFactory)

// RegisterCommand registers a command factory under its verb.
func RegisterCommand(name string, factory CommandFactory) {
	registry[name] = factory
}

// GetSupportedCommands returns all registered verbs, sorted.
func GetSupportedCommands() []string {
	cmds := make([]string, 0, len(registry))
	for k := range registry {
		cmds = append(cmds, k)
	}
	sort.Strings(cmds)
	return cmds
}

// GetCommandHelp returns the help string for a verb.
func GetCommandHelp(name string) (string, error) {
	factory, ok := registry[name]
	if !ok {
		return "", fmt.Errorf("command not found")
	}
	return factory().Help(), nil
}

// Result is what one input line produces. On failure Snapshot is the input
// snapshot unchanged and Output ends with the failing command's message.
type Result struct {
	Snapshot *repo.Snapshot
	Output   string
	Success  bool
}

// Engine runs input lines. Now is swappable so tests can pin the clock.
type Engine struct {
	Now func() time.Time
}

// New returns an engine on the wall clock.
func New() *Engine {
	return &Engine{Now: time.Now}
}

// Run executes one input line, which may chain several `git ...` invocations
// with "&&". The chain runs left to right against a working snapshot and
// stops at the first failure; the caller then gets the ORIGINAL snapshot
// back plus all output up to and including the failure message, so a broken
// chain never leaves half-applied state behind.
func (e *Engine) Run(ctx context.Context, snap *repo.Snapshot, input string) Result {
	segments, err := splitSequence(input)
	if err != nil {
		return Result{Snapshot: snap, Output: err.Error(), Success: false}
	}

	working := snap
	var outputs []string
	for _, tokens := range segments {
		next, out, err := e.dispatch(ctx, working, tokens)
		if err != nil {
			outputs = append(outputs, err.Error())
			return Result{Snapshot: snap, Output: strings.Join(outputs, "\n"), Success: false}
		}
		if out != "" {
			outputs = append(outputs, out)
		}
		working = next
	}
	return Result{Snapshot: working, Output: strings.Join(outputs, "\n"), Success: true}
}

func (e *Engine) dispatch(ctx context.Context, snap *repo.Snapshot, tokens []string) (*repo.Snapshot, string, error) {
	if len(tokens) == 0 {
		return nil, "", fmt.Errorf("usage: git <command> [<args>]")
	}
	if tokens[0] != "git" {
		return nil, "", fmt.Errorf("'%s' is not a recognized command. This terminal only runs git commands", tokens[0])
	}
	if len(tokens) == 1 {
		return nil, "", fmt.Errorf("usage: git <command> [<args>]")
	}

	verb := tokens[1]
	factory, ok := registry[verb]
	if !ok {
		return nil, "", fmt.Errorf("git: '%s' is not a git command. See 'git --help'", verb)
	}

	next, out, err := factory().Execute(ctx, Invocation{Snap: snap, Args: tokens[1:], Now: e.Now()})
	if err != nil {
		return nil, "", err
	}
	if next == nil {
		next = snap
	}
	return next, out, nil
}

// splitSequence tokenizes the input and splits it on standalone "&&" tokens
// into the individual invocations of the chain.
func splitSequence(input string) ([][]string, error) {
	tokens, err := tokenize(input)
	if err != nil {
		return nil, err
	}

	var segments [][]string
	var cur []string
	for _, tok := range tokens {
		if tok == "&&" {
			segments = append(segments, cur)
			cur = nil
			continue
		}
		cur = append(cur, tok)
	}
	segments = append(segments, cur)
	return segments, nil
}

// tokenize splits on whitespace while keeping single- or double-quoted
// stretches together, so `commit -m "two words"` carries one message token.
func tokenize(input string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	quoted := false // saw an (possibly empty) quoted stretch in the current token
	var quote byte

	flush := func() {
		if cur.Len() > 0 || quoted {
			tokens = append(tokens, cur.String())
		}
		cur.Reset()
		quoted = false
	}

	for i := 0; i < len(input); i++ {
		ch := input[i]
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			} else {
				cur.WriteByte(ch)
			}
		case ch == '\'' || ch == '"':
			quote = ch
			quoted = true
		case ch == ' ' || ch == '\t':
			flush()
		default:
			cur.WriteByte(ch)
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("syntax error: unbalanced quote in command")
	}
	flush()
	return tokens, nil
}
