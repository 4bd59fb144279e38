package widget

import (
	"image/color"

	"github.com/elizafairlady/qrjelly/layout"
	"github.com/elizafairlady/qrjelly/libui"
)

// Label is a line of static text.
type Label struct {
	Text  string
	Bold  bool
	Color color.Color // nil means the theme text color
	Flex  int

	node *layout.Node
}

func (l *Label) Layout(a *libui.App) *layout.Node {
	w, h := libui.Measure(a.Fonts.Face(l.Bold), l.Text)
	l.node = &layout.Node{MinW: w, MinH: h, Flex: l.Flex}
	return l.node
}

func (l *Label) Draw(a *libui.App, c *libui.Canvas) {
	col := l.Color
	if col == nil {
		col = a.Theme.Text
	}
	c.Text(l.Text, l.node.Rect.Min, l.Bold, col)
}

func (l *Label) Handle(a *libui.App, ev libui.Event) bool {
	return false
}
