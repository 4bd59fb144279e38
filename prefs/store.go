package prefs

import (
	"image/color"
	"log/slog"
	"sync"
)

// TopicChanged is published with the new Colors whenever the pair changes.
const TopicChanged = "prefs.changed"

// Publisher receives change notifications. *libui.Bus implements it.
type Publisher interface {
	Publish(topic string, payload any)
}

// Store holds the current color pair, persists every change and
// publishes it. Pickers write to the store; views subscribe to
// TopicChanged.
type Store struct {
	path string
	pub  Publisher
	log  *slog.Logger

	mu  sync.Mutex
	cur Colors
}

// Open loads the pair from path and returns a store for it.
// A nil pub drops notifications.
func Open(path string, pub Publisher, log *slog.Logger) *Store {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Store{
		path: path,
		pub:  pub,
		log:  log,
		cur:  Load(path, log),
	}
}

// Path returns the preference file path.
func (s *Store) Path() string {
	return s.path
}

// Colors returns the current pair.
func (s *Store) Colors() Colors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// SetForeground sets the foreground color.
func (s *Store) SetForeground(c color.RGBA) error {
	return s.update(func(cur Colors) Colors {
		cur.Foreground = c
		return cur
	})
}

// SetBackground sets the background color.
func (s *Store) SetBackground(c color.RGBA) error {
	return s.update(func(cur Colors) Colors {
		cur.Background = c
		return cur
	})
}

// Swap exchanges the foreground and background colors.
func (s *Store) Swap() error {
	return s.update(Colors.Swapped)
}

// Set replaces the pair.
func (s *Store) Set(c Colors) error {
	return s.update(func(Colors) Colors { return c })
}

// update applies fn, saves and publishes. Setting the pair it already
// holds does nothing. A failed save keeps the new pair in memory,
// still publishes it and returns the error.
func (s *Store) update(fn func(Colors) Colors) error {
	s.mu.Lock()
	next := fn(s.cur)
	if next == s.cur {
		s.mu.Unlock()
		return nil
	}
	s.cur = next
	s.mu.Unlock()

	err := Save(s.path, next)
	if err != nil {
		s.log.Warn("saving colors failed", "path", s.path, "err", err)
	}
	s.publish(next)
	return err
}

// Reload re-reads the file and publishes the pair if it differs
// from the current one. It reports whether it changed.
func (s *Store) Reload() bool {
	c := Load(s.path, s.log)
	s.mu.Lock()
	if c == s.cur {
		s.mu.Unlock()
		return false
	}
	s.cur = c
	s.mu.Unlock()
	s.log.Info("colors reloaded", "path", s.path,
		"foreground", Hex(c.Foreground), "background", Hex(c.Background))
	s.publish(c)
	return true
}

func (s *Store) publish(c Colors) {
	if s.pub != nil {
		s.pub.Publish(TopicChanged, c)
	}
}
