package libui

import "image"

// Kind identifies the type of an Event.
type Kind int

const (
	KindMouse  Kind = iota // Data is Mouse
	KindKey                // Data is Key
	KindResize             // no data
	KindCall               // Data is func(*App)
	KindQuit               // no data
)

// Event represents an input event or a posted action.
type Event struct {
	Kind Kind
	Data any
}

// Mouse represents a decoded mouse event.
// Point is relative to the top-left of the drawable area;
// Screen is the same position in screen coordinates.
type Mouse struct {
	Point   image.Point
	Screen  image.Point
	Buttons int
	Prev    int // buttons at the previous mouse event, set by Step
}

// Primary reports whether the primary (left) button is held.
func (m Mouse) Primary() bool {
	return m.Buttons&1 != 0
}

// Pressed reports whether the primary button went down with this event.
func (m Mouse) Pressed() bool {
	return m.Primary() && m.Prev&1 == 0
}

// Key represents a decoded keyboard event.
type Key struct {
	Rune rune
}

// MouseEvent returns a mouse event at screen position p.
func MouseEvent(p image.Point, buttons int) Event {
	return Event{Kind: KindMouse, Data: Mouse{Screen: p, Buttons: buttons}}
}

// KeyEvent returns a key event for r.
func KeyEvent(r rune) Event {
	return Event{Kind: KindKey, Data: Key{Rune: r}}
}
