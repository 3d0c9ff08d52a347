package lesson

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Editors save in bursts (temp file, rename, write); collapse a burst into
// one reload.
const reloadDebounceDelay = 250 * time.Millisecond

// Watch reloads the pack whenever a lesson file under the pack directory
// changes, then calls onChange. It blocks until ctx is cancelled. A reload
// that fails is logged and the previous pack keeps serving.
func (l *Loader) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(l.dir); err != nil {
		return fmt.Errorf("watch %s: %w", l.dir, err)
	}

	reload := newDebouncer(reloadDebounceDelay, func() {
		if err := l.Load(); err != nil {
			log.Printf("lesson reload failed: %v", err)
			return
		}
		if onChange != nil {
			onChange()
		}
	})
	defer reload.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !isLessonFile(filepath.Base(ev.Name)) {
				continue
			}
			reload.Trigger()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("lesson watcher: %v", err)
		}
	}
}

// debouncer defers fn until delay has passed without another Trigger.
type debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	fn    func()
}

func newDebouncer(delay time.Duration, fn func()) *debouncer {
	return &debouncer{delay: delay, fn: fn}
}

func (d *debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fn)
}

func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
