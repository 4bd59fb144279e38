package widget

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/atotto/clipboard"

	"github.com/elizafairlady/qrjelly/draw"
	"github.com/elizafairlady/qrjelly/layout"
	"github.com/elizafairlady/qrjelly/libui"
)

// TextBox is a single-line text input. It takes keyboard input while
// focused; a click inside focuses it and a click elsewhere blurs it.
//
// Keys: Enter calls OnEnter, Backspace deletes a rune, ^W deletes a
// word, ^U clears, ^V pastes from the clipboard.
type TextBox struct {
	ID          string
	Text        string
	Placeholder string
	Focused     bool
	MinW        int
	Flex        int
	OnEnter     func(a *libui.App)
	OnChange    func(a *libui.App)

	// Paste reads the clipboard; nil means the system clipboard.
	Paste func() (string, error)

	node *layout.Node
}

func (t *TextBox) Layout(a *libui.App) *layout.Node {
	pad := a.Theme.Pad
	_, h := libui.Measure(a.Fonts.Face(false), "Mg")
	t.node = &layout.Node{ID: t.ID, MinW: max(t.MinW, 80), MinH: h + 2*pad, Flex: t.Flex}
	return t.node
}

func (t *TextBox) Draw(a *libui.App, c *libui.Canvas) {
	th := a.Theme
	r := t.node.Rect
	c.FillRoundRect(r, th.WidgetRadius, th.InputBg)
	if t.Focused {
		c.StrokeRoundRect(r, th.WidgetRadius, 2, th.FocusRing)
	} else {
		c.StrokeRoundRect(r, th.WidgetRadius, 1, th.Border)
	}

	inner := r.Inset(th.Pad)
	face := a.Fonts.Face(false)
	s := strings.ReplaceAll(t.Text, "\n", " ")
	if s == "" && !t.Focused {
		c.Text(t.Placeholder, inner.Min, false, th.DimText)
		return
	}
	if t.Focused {
		s += "|"
	}
	// Show the tail of the text when it does not fit.
	for s != "" {
		if w, _ := libui.Measure(face, s); w <= inner.Dx() {
			break
		}
		_, n := utf8.DecodeRuneInString(s)
		s = s[n:]
	}
	c.Text(s, inner.Min, false, th.InputFg)
}

func (t *TextBox) Handle(a *libui.App, ev libui.Event) bool {
	switch ev.Kind {
	case libui.KindMouse:
		if t.node == nil {
			return false
		}
		m, inside, _ := mouseIn(ev, t.node.Rect)
		if !m.Primary() {
			return false
		}
		t.Focused = inside
		return inside
	case libui.KindKey:
		if !t.Focused {
			return false
		}
		return t.key(a, ev.Data.(libui.Key).Rune)
	}
	return false
}

func (t *TextBox) key(a *libui.App, r rune) bool {
	old := t.Text
	switch r {
	case '\n', '\r':
		if t.OnEnter != nil {
			t.OnEnter(a)
		}
		return true
	case draw.KeyBackspace:
		if t.Text != "" {
			_, n := utf8.DecodeLastRuneInString(t.Text)
			t.Text = t.Text[:len(t.Text)-n]
		}
	case draw.KeyETB:
		t.Text = deleteWord(t.Text)
	case draw.KeyNAK:
		t.Text = ""
	case draw.KeySyn:
		paste := t.Paste
		if paste == nil {
			paste = clipboard.ReadAll
		}
		s, err := paste()
		if err != nil {
			a.Log.Warn("paste failed", "err", err)
			return true
		}
		t.Text += s
	default:
		if !unicode.IsPrint(r) {
			return false
		}
		t.Text += string(r)
	}
	if t.Text != old && t.OnChange != nil {
		t.OnChange(a)
	}
	return true
}

// deleteWord removes trailing spaces and then the last word of s.
func deleteWord(s string) string {
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	i := strings.LastIndexFunc(s, unicode.IsSpace)
	return s[:i+1]
}
