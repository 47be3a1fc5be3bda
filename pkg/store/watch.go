package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventItineraryChanged indicates the itinerary blob was written or removed.
	EventItineraryChanged EventType = iota

	// EventStoreInvalidated signals a change that could not be classified;
	// callers should reload.
	EventStoreInvalidated
)

func (t EventType) String() string {
	switch t {
	case EventItineraryChanged:
		return "itinerary-changed"
	case EventStoreInvalidated:
		return "store-invalidated"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type EventType
}

// DefaultThrottle is how long the watcher waits to coalesce a burst of writes.
const DefaultThrottle = 100 * time.Millisecond

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel to avoid blocking the watcher. The channel is closed once
// ctx is done or the watcher encounters an unrecoverable error.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	blob := filepath.Join(append([]string{p.basePath}, blobPath()...)...)
	return watchFiles(ctx, p.logger, p.basePath, blob)
}

// watchFiles watches base and every directory below it, reporting
// EventItineraryChanged whenever one of targets is touched. Watcher errors
// are logged and reported as EventStoreInvalidated.
func watchFiles(ctx context.Context, logger *zap.Logger, base string, targets ...string) (<-chan Event, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				logger.Debug("store: watcher close", zap.Error(err))
			}
		})
	}

	dirs, err := collectDirs(base)
	if err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: enumerate directories: %w", err)
	}

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 64)
	isTarget := make(map[string]struct{}, len(targets))
	for _, target := range targets {
		isTarget[filepath.Clean(target)] = struct{}{}
	}

	var (
		sendMu sync.Mutex
		closed bool
	)
	go func() {
		defer func() {
			sendMu.Lock()
			closed = true
			close(events)
			sendMu.Unlock()
		}()
		defer closeWatcher()

		watched := make(map[string]struct{}, len(dirs))
		for _, dir := range dirs {
			watched[dir] = struct{}{}
		}

		send := func(ev Event) {
			sendMu.Lock()
			defer sendMu.Unlock()
			if closed {
				return
			}
			select {
			case events <- ev:
			default:
				// Consumer is behind; it reloads the whole blob anyway.
			}
		}

		throttle := newEventThrottle(DefaultThrottle)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("store: watch error", zap.String("base", base), zap.Error(err))
				throttle.Enqueue(Event{Type: EventStoreInvalidated}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}

				if evt.Op&fsnotify.Create == fsnotify.Create {
					// Target directories may only appear on first save.
					if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
						watchDir(watcher, logger, watched, filepath.Clean(evt.Name))
						// A target may have landed before the watch was added.
						for target := range isTarget {
							if _, err := os.Stat(target); err == nil {
								throttle.Enqueue(Event{Type: EventItineraryChanged}, send)
								break
							}
						}
						continue
					}
				}

				if _, ok := isTarget[filepath.Clean(evt.Name)]; ok {
					throttle.Enqueue(Event{Type: EventItineraryChanged}, send)
				}
			}
		}
	}()

	return events, nil
}

// watchDir adds dir to the watcher unless it is already watched. Failures are
// logged; the rest of the tree keeps being watched.
func watchDir(watcher *fsnotify.Watcher, logger *zap.Logger, watched map[string]struct{}, dir string) bool {
	if _, found := watched[dir]; found {
		return true
	}
	if err := watcher.Add(dir); err != nil {
		logger.Warn("store: watch directory", zap.String("dir", dir), zap.Error(err))
		return false
	}
	watched[dir] = struct{}{}
	return true
}

// collectDirs walks base and returns all directories that should be watched.
func collectDirs(base string) ([]string, error) {
	dirs := []string{base}
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() && path != base {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs, err
}

// eventThrottle coalesces rapid change notifications so a burst of writes is
// reported once.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev.Type] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[EventType]struct{})
	t.timer = nil
	t.mu.Unlock()

	for _, typ := range []EventType{EventItineraryChanged, EventStoreInvalidated} {
		if _, ok := pending[typ]; ok {
			send(Event{Type: typ})
		}
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
