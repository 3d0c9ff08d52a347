package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	bolt "go.etcd.io/bbolt"
)

var boltSessionsBucket = []byte("sessions")

// boltStore keeps session state in a single BoltDB file for durable
// single-node deployments.
type boltStore struct {
	db   *bolt.DB
	once sync.Once
}

// NewBoltStore opens (or creates) a BoltDB store at the provided path.
func NewBoltStore(path string) (Store, error) {
	if path == "" {
		return nil, errors.New("bolt path is required")
	}

	cleaned := filepath.Clean(path)
	if dir := filepath.Dir(cleaned); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := bolt.Open(cleaned, 0o600, nil)
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltSessionsBucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &boltStore{db: db}, nil
}

func (s *boltStore) Save(ctx context.Context, id string, data []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		bucket := tx.Bucket(boltSessionsBucket)
		if bucket == nil {
			return errors.New("sessions bucket missing")
		}
		return bucket.Put([]byte(id), data)
	})
}

func (s *boltStore) Load(ctx context.Context, id string) ([]byte, error) {
	var result []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		bucket := tx.Bucket(boltSessionsBucket)
		if bucket == nil {
			return &NotFoundError{ID: id}
		}
		data := bucket.Get([]byte(id))
		if data == nil {
			return &NotFoundError{ID: id}
		}
		result = append([]byte{}, data...)
		return nil
	})
	return result, err
}

func (s *boltStore) Delete(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		bucket := tx.Bucket(boltSessionsBucket)
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(id))
	})
}

func (s *boltStore) List(ctx context.Context) ([]string, error) {
	var ids []string
	err := s.db.View(func(tx *bolt.Tx) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		bucket := tx.Bucket(boltSessionsBucket)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(k, _ []byte) error {
			ids = append(ids, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *boltStore) Close() error {
	s.once.Do(func() {
		_ = s.db.Close()
	})
	return nil
}
