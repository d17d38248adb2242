package api

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// TimelineChangeType indicates what happened to the timeline file.
type TimelineChangeType string

const (
	TimelineModified TimelineChangeType = "modified"
	TimelineDeleted  TimelineChangeType = "deleted"
)

// TimelineChange represents a timeline file change notification.
type TimelineChange struct {
	Type TimelineChangeType `json:"type"`
	Path string             `json:"path"`
}

// TimelineWatcherSubscriber receives timeline change notifications.
type TimelineWatcherSubscriber interface {
	OnTimelineChange(change TimelineChange)
}

// TimelineWatcher watches a single timeline file for changes and
// notifies subscribers. The watch is placed on the containing directory
// since editors replace files rather than writing in place.
type TimelineWatcher struct {
	watcher      *fsnotify.Watcher
	timelinePath string
	mu           sync.RWMutex
	subscribers  []TimelineWatcherSubscriber
	debounce     *time.Timer
	debounceMu   sync.Mutex
	stopCh       chan struct{}
	stopped      bool // Once stopped, cannot restart
	running      bool
}

// NewTimelineWatcher creates a watcher for the given timeline file.
func NewTimelineWatcher(timelinePath string) (*TimelineWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(timelinePath)
	if err != nil {
		watcher.Close()
		return nil, err
	}

	return &TimelineWatcher{
		watcher:      watcher,
		timelinePath: abs,
		stopCh:       make(chan struct{}),
	}, nil
}

// Subscribe adds a subscriber to receive change notifications.
func (tw *TimelineWatcher) Subscribe(sub TimelineWatcherSubscriber) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	tw.subscribers = append(tw.subscribers, sub)
}

// Start begins watching the timeline file's directory.
func (tw *TimelineWatcher) Start() error {
	tw.mu.Lock()
	if tw.running {
		tw.mu.Unlock()
		return nil
	}
	if tw.stopped {
		tw.mu.Unlock()
		return fmt.Errorf("timeline watcher cannot be restarted after stop")
	}
	tw.running = true
	tw.mu.Unlock()

	if err := tw.watcher.Add(filepath.Dir(tw.timelinePath)); err != nil {
		return err
	}

	go tw.run()
	return nil
}

// Stop stops watching for changes.
func (tw *TimelineWatcher) Stop() error {
	tw.mu.Lock()
	if !tw.running || tw.stopped {
		tw.mu.Unlock()
		return nil
	}
	tw.running = false
	tw.stopped = true
	tw.mu.Unlock()

	// Cancel any pending debounce timer so it can't fire after stop
	tw.debounceMu.Lock()
	if tw.debounce != nil {
		tw.debounce.Stop()
		tw.debounce = nil
	}
	tw.debounceMu.Unlock()

	close(tw.stopCh)
	return tw.watcher.Close()
}

func (tw *TimelineWatcher) run() {
	for {
		select {
		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			tw.handleEvent(event)

		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Timeline watcher error: %v", err)

		case <-tw.stopCh:
			return
		}
	}
}

func (tw *TimelineWatcher) handleEvent(event fsnotify.Event) {
	// Only the timeline file itself matters; the directory watch sees
	// every sibling.
	abs, err := filepath.Abs(event.Name)
	if err != nil || abs != tw.timelinePath {
		return
	}

	change := classifyEvent(event, tw.timelinePath)
	if change == nil {
		return
	}

	// Debounce: wait 100ms before emitting to coalesce rapid changes
	tw.debounceMu.Lock()
	if tw.debounce != nil {
		tw.debounce.Stop()
	}
	tw.debounce = time.AfterFunc(100*time.Millisecond, func() {
		tw.emitChange(*change)
	})
	tw.debounceMu.Unlock()
}

func classifyEvent(event fsnotify.Event, path string) *TimelineChange {
	switch {
	case event.Op&(fsnotify.Create|fsnotify.Write) != 0:
		return &TimelineChange{Type: TimelineModified, Path: path}
	case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		return &TimelineChange{Type: TimelineDeleted, Path: path}
	default:
		return nil
	}
}

func (tw *TimelineWatcher) emitChange(change TimelineChange) {
	// Check if watcher was stopped (debounce timer may fire after Stop)
	tw.mu.RLock()
	if tw.stopped {
		tw.mu.RUnlock()
		return
	}
	subs := make([]TimelineWatcherSubscriber, len(tw.subscribers))
	copy(subs, tw.subscribers)
	tw.mu.RUnlock()

	for _, sub := range subs {
		sub.OnTimelineChange(change)
	}
}
