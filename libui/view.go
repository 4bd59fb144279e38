package libui

import "github.com/elizafairlady/qrjelly/layout"

// View is a component of the window. On every repaint the App asks
// the root view for a fresh layout tree, lays it out in the window and
// then asks the view to draw; views keep the nodes they return so they
// can find their rectangles when drawing and handling input.
type View interface {
	// Layout returns the view's layout tree.
	Layout(a *App) *layout.Node
	// Draw paints the view into c using the rectangles from the
	// last layout pass.
	Draw(a *App, c *Canvas)
	// Handle processes ev and reports whether it was consumed.
	Handle(a *App, ev Event) bool
}
