package integration_test

import (
	"context"
	"fmt"

	"github.com/kurobon/gitdojo/backend/internal/git"
	_ "github.com/kurobon/gitdojo/backend/internal/git/commands"
	"github.com/kurobon/gitdojo/backend/internal/repo"
	"github.com/kurobon/gitdojo/backend/internal/session"
	"github.com/kurobon/gitdojo/backend/internal/storage"
)

var testManager *session.Manager

func init() {
	testManager = session.NewManager(storage.NewMemoryStore())
}

func InitSession(id string) error {
	_, err := testManager.Create(context.Background(), id)
	return err
}

func RunCommand(sessionID, line string) (git.Result, error) {
	return testManager.Execute(context.Background(), sessionID, line)
}

func CurrentSnapshot(sessionID string) (*repo.Snapshot, error) {
	s, err := testManager.Get(context.Background(), sessionID)
	if err != nil {
		return nil, err
	}
	return s.Snapshot(), nil
}

func BranchTip(sessionID, name string) (string, error) {
	snap, err := CurrentSnapshot(sessionID)
	if err != nil {
		return "", err
	}
	b, ok := snap.FindBranch(name)
	if !ok {
		return "", fmt.Errorf("branch %s not found", name)
	}
	return b.CommitID, nil
}
