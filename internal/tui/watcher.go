package tui

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/leadline-io/leadline/internal/config"
)

// outboxWatcher watches the outbox directories and pushes refresh messages
// into the program, so artifacts written mid-operation (or by another
// process) show up without a manual refresh.
type outboxWatcher struct {
	fsWatcher  *fsnotify.Watcher
	program    *programRef
	done       chan struct{}
	debounce   map[string]*time.Timer
	debounceMu sync.Mutex
}

func newOutboxWatcher(workspace string, program *programRef) (*outboxWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &outboxWatcher{
		fsWatcher: fsWatcher,
		program:   program,
		done:      make(chan struct{}),
		debounce:  make(map[string]*time.Timer),
	}

	dirs := []string{
		config.EmailsDir(workspace),
		config.CallRequestsDir(workspace),
		config.ProposalsDir(workspace),
		config.OutboxDir(workspace),
	}
	for _, dir := range dirs {
		// Missing dirs are created lazily; the workspace-level watches
		// still catch their contents appearing.
		_ = fsWatcher.Add(dir)
	}

	go w.processEvents()
	return w, nil
}

// Stop stops the watcher.
func (w *outboxWatcher) Stop() {
	close(w.done)
	_ = w.fsWatcher.Close()
}

func (w *outboxWatcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			// Rename covers atomic writes (temp file renamed onto target).
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.debounceEvent(event.Name)
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// debounceEvent coalesces bursts of events for the same path.
func (w *outboxWatcher) debounceEvent(path string) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}
	w.debounce[path] = time.AfterFunc(100*time.Millisecond, func() {
		w.debounceMu.Lock()
		delete(w.debounce, path)
		w.debounceMu.Unlock()
		w.program.Send(OutboxChangedMsg{})
	})
}
