// Package storage persists serialized session state. Stores are
// byte-oriented: the session layer decides the encoding, the store only
// keys blobs by session id.
package storage

import (
	"context"
	"errors"
)

// Store defines required persistence operations for session state.
type Store interface {
	Save(ctx context.Context, id string, data []byte) error
	Load(ctx context.Context, id string) ([]byte, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]string, error)
	Close() error
}

// NotFoundError signals a missing session record.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return "session " + e.ID + " not found"
}

// IsNotFound reports whether err is a NotFoundError from any store.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
