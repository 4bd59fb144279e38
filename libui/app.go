// Package libui is a small retained-mode UI toolkit for Plan 9 and
// 9front. An App owns the window, the event loop and the services
// views need; it is passed explicitly to every view.
package libui

import (
	"image"
	"io"
	"log/slog"
	"sync"

	"github.com/elizafairlady/qrjelly/theme"
)

// Window is the platform window: where it sits on screen and how to
// move, hide and show it. Points are in screen coordinates.
type Window interface {
	Origin() (image.Point, error)
	Move(p image.Point) error
	Hide() error
	Show() error
	Current() error
	SetLabel(label string) error
	// Resize sets the size of the drawable area.
	Resize(w, h int) error
}

// Screen is the drawable area of the window.
type Screen interface {
	// Rect returns the drawable area in screen coordinates.
	Rect() image.Rectangle
	// Present copies img to the drawable area and makes it visible.
	Present(img *image.RGBA) error
	// Reattach refreshes the drawable area after a resize.
	Reattach() error
}

// App is the application context.
type App struct {
	Window Window
	Screen Screen
	Log    *slog.Logger
	Bus    *Bus
	Theme  *theme.Theme
	Fonts  *Fonts

	events  chan Event
	done    chan struct{}
	stop    sync.Once
	overlay View
	buttons int
	quit    bool
	closers []io.Closer
}

// New returns an App for win and scr. A nil logger discards output.
func New(win Window, scr Screen, log *slog.Logger) *App {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &App{
		Window: win,
		Screen: scr,
		Log:    log,
		Bus:    NewBus(),
		Theme:  theme.Default(),
		events: make(chan Event, 64),
		done:   make(chan struct{}),
	}
}

// Post queues ev for the Run loop. It is safe to call from any
// goroutine. Once Run has returned, events are dropped.
func (a *App) Post(ev Event) {
	select {
	case a.events <- ev:
	case <-a.done:
	}
}

// Do queues fn to run on the Run loop.
func (a *App) Do(fn func(*App)) {
	a.Post(Event{Kind: KindCall, Data: fn})
}

// Quit ends the Run loop after the current event.
func (a *App) Quit() {
	a.quit = true
}

// Done reports whether Quit has been called.
func (a *App) Done() bool {
	return a.quit
}

// Overlay shows v above the root view and routes input to it
// until Dismiss is called.
func (a *App) Overlay(v View) {
	a.overlay = v
}

// Dismiss removes the overlay.
func (a *App) Dismiss() {
	a.overlay = nil
}

// Overlaying returns the current overlay, or nil.
func (a *App) Overlaying() View {
	return a.overlay
}

// Bounds returns the drawable area in local coordinates.
func (a *App) Bounds() image.Rectangle {
	r := a.Screen.Rect()
	return r.Sub(r.Min)
}

// Close releases the devices opened for the App.
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
