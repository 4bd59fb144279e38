package dialog

import (
	"path/filepath"
	"strings"

	"github.com/elizafairlady/qrjelly/draw"
	"github.com/elizafairlady/qrjelly/layout"
	"github.com/elizafairlady/qrjelly/libui"
	"github.com/elizafairlady/qrjelly/widget"
)

// DefaultExt is appended to save paths that have no extension.
const DefaultExt = ".png"

// SaveDialog asks for a file path. Enter or the Save button confirms
// a non-empty path; Escape or the Cancel button cancels.
type SaveDialog struct {
	Title string
	Hint  string
	// OnDone receives the chosen path, or ok=false on cancel.
	OnDone func(a *libui.App, path string, ok bool)

	Box    *widget.TextBox
	save   *widget.Button
	cancel *widget.Button
	title  *widget.Label
	hint   *widget.Label
	frame
}

// NewSaveDialog returns a save prompt with an empty path.
func NewSaveDialog(title string, done func(a *libui.App, path string, ok bool)) *SaveDialog {
	d := &SaveDialog{
		Title:  title,
		Hint:   "PNG (*.png)",
		OnDone: done,
	}
	d.Box = &widget.TextBox{ID: "path", Placeholder: "path/to/file.png", Focused: true, MinW: 280}
	d.Box.OnEnter = d.confirm
	d.save = &widget.Button{ID: "save", Text: "Save", OnClick: d.confirm}
	d.cancel = &widget.Button{ID: "cancel", Text: "Cancel", OnClick: func(a *libui.App) {
		d.finish(a, "", false)
	}}
	return d
}

// Show installs the dialog as the overlay.
func (d *SaveDialog) Show(a *libui.App) {
	a.Overlay(d)
}

func (d *SaveDialog) Layout(a *libui.App) *layout.Node {
	d.title = &widget.Label{Text: d.Title, Bold: true}
	d.hint = &widget.Label{Text: d.Hint, Color: a.Theme.DimText}
	d.save.Disabled = strings.TrimSpace(d.Box.Text) == ""
	buttons := &layout.Node{
		Kind:     layout.HBox,
		Gap:      a.Theme.Gap,
		Children: []*layout.Node{layout.Spacer(), d.cancel.Layout(a), d.save.Layout(a)},
	}
	body := &layout.Node{
		Kind:     layout.VBox,
		Gap:      a.Theme.Gap,
		Children: []*layout.Node{d.title.Layout(a), d.Box.Layout(a), d.hint.Layout(a), buttons},
	}
	return d.build(a, body)
}

func (d *SaveDialog) Draw(a *libui.App, c *libui.Canvas) {
	d.draw(a, c)
	d.title.Draw(a, c)
	d.Box.Draw(a, c)
	d.hint.Draw(a, c)
	d.cancel.Draw(a, c)
	d.save.Draw(a, c)
}

func (d *SaveDialog) Handle(a *libui.App, ev libui.Event) bool {
	if ev.Kind == libui.KindKey && ev.Data.(libui.Key).Rune == draw.KeyEscape {
		d.finish(a, "", false)
		return true
	}
	widget.Dispatch(a, ev, d.Box, d.cancel, d.save)
	// Keep the path box focused; the dialog has nothing else to type in.
	d.Box.Focused = true
	return true
}

func (d *SaveDialog) confirm(a *libui.App) {
	path := strings.TrimSpace(d.Box.Text)
	if path == "" {
		return
	}
	d.finish(a, WithDefaultExt(path), true)
}

func (d *SaveDialog) finish(a *libui.App, path string, ok bool) {
	a.Dismiss()
	if d.OnDone != nil {
		d.OnDone(a, path, ok)
	}
}

// WithDefaultExt appends DefaultExt to path when it has no extension.
func WithDefaultExt(path string) string {
	if filepath.Ext(path) == "" {
		return path + DefaultExt
	}
	return path
}
