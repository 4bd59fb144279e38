package prefs

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	watchDebounce = 200 * time.Millisecond
	pollInterval  = time.Second
)

// Watcher calls a function when the preference file changes on disk.
// It uses fsnotify on the file's directory and falls back to polling
// the file's modification time where fsnotify is not available.
type Watcher struct {
	path     string
	onChange func()
	log      *slog.Logger
	debounce time.Duration
	interval time.Duration

	fs   *fsnotify.Watcher
	done chan struct{}
	wg   sync.WaitGroup

	mu        sync.Mutex
	timer     *time.Timer
	closed    bool
	closeOnce sync.Once
}

// Watch starts watching path. onChange runs on the watcher's own
// goroutine, after writes have been quiet for a short while; callers
// that touch UI state should hand off to the UI loop.
func Watch(path string, onChange func(), log *slog.Logger) *Watcher {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	w := &Watcher{
		path:     filepath.Clean(path),
		onChange: onChange,
		log:      log,
		debounce: watchDebounce,
		interval: pollInterval,
		done:     make(chan struct{}),
	}
	w.start()
	return w
}

func (w *Watcher) start() {
	fw, err := fsnotify.NewWatcher()
	if err == nil {
		if err = fw.Add(filepath.Dir(w.path)); err != nil {
			_ = fw.Close()
		}
	}
	w.wg.Add(1)
	if err != nil {
		w.log.Debug("prefs: fsnotify unavailable, polling", "path", w.path, "err", err)
		go w.poll()
		return
	}
	w.fs = fw
	go w.run()
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if w.isFileEvent(ev) {
				w.schedule()
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			// Keep watching; a later event will resync.
			w.log.Debug("prefs: watch error", "err", err)
		}
	}
}

func (w *Watcher) isFileEvent(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}

func (w *Watcher) poll() {
	defer w.wg.Done()
	last := stamp(w.path)
	t := time.NewTicker(w.interval)
	defer t.Stop()
	for {
		select {
		case <-w.done:
			return
		case <-t.C:
			if s := stamp(w.path); s != last {
				last = s
				w.schedule()
			}
		}
	}
}

type fileStamp struct {
	mod  time.Time
	size int64
	ok   bool
}

func stamp(path string) fileStamp {
	fi, err := os.Stat(path)
	if err != nil {
		return fileStamp{}
	}
	return fileStamp{fi.ModTime(), fi.Size(), true}
}

func (w *Watcher) schedule() {
	if w.onChange == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer == nil {
		w.timer = time.AfterFunc(w.debounce, w.fire)
	} else {
		w.timer.Reset(w.debounce)
	}
}

func (w *Watcher) fire() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.timer = nil
	w.mu.Unlock()
	w.onChange()
}

// Close stops watching.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		w.mu.Lock()
		w.closed = true
		if w.timer != nil {
			w.timer.Stop()
			w.timer = nil
		}
		w.mu.Unlock()
		close(w.done)
		if w.fs != nil {
			err = w.fs.Close()
		}
		w.wg.Wait()
	})
	return err
}
