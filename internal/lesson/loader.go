package lesson

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Loader reads a lesson pack from a directory of YAML files, one lesson per
// file, and serves it from memory. Load may be called again at any time
// (the watcher does) and swaps the whole pack at once, so readers never see
// a half-loaded mix.
type Loader struct {
	dir string

	mu      sync.RWMutex
	lessons map[string]*Lesson
}

func NewLoader(dir string) *Loader {
	return &Loader{dir: dir, lessons: map[string]*Lesson{}}
}

// Load parses every .yaml/.yml file in the pack directory. Any invalid file
// fails the whole load and the previously loaded pack stays in place.
func (l *Loader) Load() error {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return fmt.Errorf("read lesson dir: %w", err)
	}

	lessons := make(map[string]*Lesson)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !isLessonFile(name) {
			continue
		}
		lesson, err := loadFile(filepath.Join(l.dir, name))
		if err != nil {
			return err
		}
		if _, dup := lessons[lesson.ID]; dup {
			return fmt.Errorf("%s: duplicate lesson id %q", name, lesson.ID)
		}
		lessons[lesson.ID] = lesson
	}

	l.mu.Lock()
	l.lessons = lessons
	l.mu.Unlock()
	return nil
}

// Get returns the lesson with the given id.
func (l *Loader) Get(id string) (*Lesson, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	lesson, ok := l.lessons[id]
	return lesson, ok
}

// List returns every loaded lesson sorted by id.
func (l *Loader) List() []*Lesson {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Lesson, 0, len(l.lessons))
	for _, lesson := range l.lessons {
		out = append(out, lesson)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func loadFile(path string) (*Lesson, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lesson file: %w", err)
	}

	var lesson Lesson
	if err := yaml.Unmarshal(data, &lesson); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	// The filename is the id unless the file says otherwise.
	if lesson.ID == "" {
		base := filepath.Base(path)
		lesson.ID = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if err := lesson.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return &lesson, nil
}

func isLessonFile(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".yaml" || ext == ".yml"
}
