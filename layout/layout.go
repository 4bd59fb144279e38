// Package layout implements the box layout engine used by libui views.
//
// The engine performs two passes:
//  1. Measure: computes minimum sizes bottom-up.
//  2. Layout: assigns rectangles top-down with flex distribution.
//
// Containers are vertical boxes, horizontal boxes and stacks; anything
// else is a leaf whose minimum size is set by the view that built it.
package layout

import "image"

// Kind is the type of a node.
type Kind int

const (
	Leaf Kind = iota
	VBox
	HBox
	Stack
)

// Align positions a child on its container's cross axis when the child
// is narrower than the container (because of a max size).
type Align int

const (
	Stretch Align = iota
	Start
	Center
	End
)

// Insets is padding around a node's content.
type Insets struct {
	Left, Top, Right, Bottom int
}

// Uniform returns insets of n on every side.
func Uniform(n int) Insets {
	return Insets{n, n, n, n}
}

// Node is a layout node.
type Node struct {
	ID       string
	Kind     Kind
	Pad      Insets
	Gap      int
	MinW     int // requested minimum width
	MinH     int // requested minimum height
	MaxW     int // 0 means unbounded
	MaxH     int
	Flex     int // flex weight (0=fixed, >0=flex)
	Align    Align
	Children []*Node

	// Results
	W, H int             // measured minimum size
	Rect image.Rectangle // assigned rectangle
}

// Box returns a container of kind k holding children.
func Box(k Kind, children ...*Node) *Node {
	return &Node{Kind: k, Children: children}
}

// Fixed returns a leaf of exactly w×h.
func Fixed(id string, w, h int) *Node {
	return &Node{ID: id, MinW: w, MinH: h, MaxW: w, MaxH: h}
}

// Spacer returns a flexible empty leaf.
func Spacer() *Node {
	return &Node{Flex: 1}
}

// --- Measure pass ---

// Measure computes minimum sizes bottom-up.
func Measure(n *Node) {
	if n == nil {
		return
	}
	for _, c := range n.Children {
		Measure(c)
	}

	w, h := 0, 0
	switch n.Kind {
	case VBox:
		for i, c := range n.Children {
			w = max(w, c.W)
			h += c.H
			if i > 0 {
				h += n.Gap
			}
		}
	case HBox:
		for i, c := range n.Children {
			w += c.W
			h = max(h, c.H)
			if i > 0 {
				w += n.Gap
			}
		}
	default:
		for _, c := range n.Children {
			w = max(w, c.W)
			h = max(h, c.H)
		}
	}
	w += n.Pad.Left + n.Pad.Right
	h += n.Pad.Top + n.Pad.Bottom
	n.W = max(w, n.MinW)
	n.H = max(h, n.MinH)
}

// --- Layout pass ---

// Layout assigns rectangles to the tree, starting from the given bounds.
func Layout(n *Node, bounds image.Rectangle) {
	if n == nil {
		return
	}
	n.Rect = bounds
	inner := image.Rect(
		bounds.Min.X+n.Pad.Left, bounds.Min.Y+n.Pad.Top,
		bounds.Max.X-n.Pad.Right, bounds.Max.Y-n.Pad.Bottom,
	)
	if inner.Dx() < 0 {
		inner.Max.X = inner.Min.X
	}
	if inner.Dy() < 0 {
		inner.Max.Y = inner.Min.Y
	}

	switch n.Kind {
	case VBox:
		layoutBox(n.Children, inner, n.Gap, true)
	case HBox:
		layoutBox(n.Children, inner, n.Gap, false)
	default:
		for _, c := range n.Children {
			Layout(c, clamp(c, inner))
		}
	}
}

// Run measures n and lays it out in bounds, honoring n's own
// maximum size and alignment.
func Run(n *Node, bounds image.Rectangle) {
	if n == nil {
		return
	}
	Measure(n)
	Layout(n, clamp(n, bounds))
}

// layoutBox distributes space among children along an axis.
// If vertical=true, distributes along Y; otherwise along X.
func layoutBox(children []*Node, bounds image.Rectangle, gap int, vertical bool) {
	if len(children) == 0 {
		return
	}

	totalAvail := bounds.Dy()
	if !vertical {
		totalAvail = bounds.Dx()
	}

	fixedSize := gap * (len(children) - 1)
	totalFlex := 0
	for _, c := range children {
		if c.Flex > 0 {
			totalFlex += c.Flex
		} else {
			fixedSize += mainSize(c, vertical)
		}
	}

	flexSpace := max(totalAvail-fixedSize, 0)

	pos := bounds.Min.Y
	if !vertical {
		pos = bounds.Min.X
	}

	for _, c := range children {
		size := mainSize(c, vertical)
		if c.Flex > 0 && totalFlex > 0 {
			size = flexSpace * c.Flex / totalFlex
		}

		var r image.Rectangle
		if vertical {
			r = image.Rect(bounds.Min.X, pos, bounds.Max.X, pos+size)
		} else {
			r = image.Rect(pos, bounds.Min.Y, pos+size, bounds.Max.Y)
		}
		Layout(c, clamp(c, r))
		pos += size + gap
	}
}

func mainSize(c *Node, vertical bool) int {
	if vertical {
		return c.H
	}
	return c.W
}

// clamp enforces c's max size within r, placing the result by c.Align.
// Along the axis where r is larger, Stretch and Start keep the top-left.
func clamp(c *Node, r image.Rectangle) image.Rectangle {
	if c.MaxW > 0 && r.Dx() > c.MaxW {
		off := alignOffset(c.Align, r.Dx()-c.MaxW)
		r.Min.X += off
		r.Max.X = r.Min.X + c.MaxW
	}
	if c.MaxH > 0 && r.Dy() > c.MaxH {
		off := alignOffset(c.Align, r.Dy()-c.MaxH)
		r.Min.Y += off
		r.Max.Y = r.Min.Y + c.MaxH
	}
	return r
}

func alignOffset(a Align, slack int) int {
	switch a {
	case Center:
		return slack / 2
	case End:
		return slack
	}
	return 0
}

// --- Queries ---

// Flatten returns all nodes in the tree in depth-first order.
func Flatten(n *Node) []*Node {
	if n == nil {
		return nil
	}
	result := []*Node{n}
	for _, c := range n.Children {
		result = append(result, Flatten(c)...)
	}
	return result
}

// Find returns the first node with the given ID.
func Find(n *Node, id string) *Node {
	for _, c := range Flatten(n) {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// HitTest finds the deepest node with an ID whose rectangle contains pt.
func HitTest(n *Node, pt image.Point) *Node {
	if n == nil || !pt.In(n.Rect) {
		return nil
	}
	// Check children in reverse order (last = topmost)
	for i := len(n.Children) - 1; i >= 0; i-- {
		if hit := HitTest(n.Children[i], pt); hit != nil {
			return hit
		}
	}
	if n.ID != "" {
		return n
	}
	return nil
}
