package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/kurobon/gitdojo/backend/internal/config"
	_ "github.com/kurobon/gitdojo/backend/internal/git/commands" // Register commands
	"github.com/kurobon/gitdojo/backend/internal/lesson"
	"github.com/kurobon/gitdojo/backend/internal/server"
	"github.com/kurobon/gitdojo/backend/internal/session"
	"github.com/kurobon/gitdojo/backend/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer store.Close()

	manager := session.NewManager(store)

	lessons := lesson.NewLoader(cfg.LessonsDir)
	if err := lessons.Load(); err != nil {
		log.Fatalf("lessons: %v", err)
	}
	log.Printf("Loaded %d lessons from %s", len(lessons.List()), cfg.LessonsDir)

	if cfg.LessonsWatch {
		go func() {
			err := lessons.Watch(context.Background(), func() {
				log.Printf("Lesson pack reloaded (%d lessons)", len(lessons.List()))
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("lesson watcher stopped: %v", err)
			}
		}()
	}

	srv := server.NewServer(manager, lessons)

	log.Printf("Server listening on %s (store=%s)", cfg.ListenAddr, cfg.StoreBackend)
	if err := http.ListenAndServe(cfg.ListenAddr, srv); err != nil {
		log.Fatal(err)
	}
}

func newStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StoreBackend {
	case "redis":
		return storage.NewRedisStore(cfg.RedisAddr)
	case "bolt":
		return storage.NewBoltStore(cfg.BoltPath)
	default:
		return storage.NewMemoryStore(), nil
	}
}
