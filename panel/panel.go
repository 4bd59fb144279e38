// Package panel is the QR generator form: a text input, generate and
// save buttons, foreground and background swatches with a swap
// button, a preview and a status line.
//
// Colors live in a prefs.Store. The panel never changes its own
// colors directly: pickers and the swap button write to the store and
// the panel regenerates when the store publishes the new pair.
package panel

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/elizafairlady/qrjelly/dialog"
	"github.com/elizafairlady/qrjelly/layout"
	"github.com/elizafairlady/qrjelly/libui"
	"github.com/elizafairlady/qrjelly/prefs"
	"github.com/elizafairlady/qrjelly/qr"
	"github.com/elizafairlady/qrjelly/widget"
)

// ErrNothingToSave is returned by Save before any successful Generate.
var ErrNothingToSave = errors.New("panel: nothing to save")

// SaveState says whether there is an image to save.
type SaveState int

const (
	SaveDisabled SaveState = iota
	SaveEnabled
)

func (s SaveState) String() string {
	if s == SaveEnabled {
		return "enabled"
	}
	return "disabled"
}

// Panel is the QR generator view.
type Panel struct {
	store *prefs.Store
	enc   *qr.Encoder
	log   *slog.Logger

	img       *image.Paletted
	saveState SaveState
	status    string
	failed    bool
	cancel    func()

	input    *widget.TextBox
	generate *widget.Button
	save     *widget.Button
	swap     *widget.Button
	colors   *widget.Label
	fg, bg   *widget.Swatch
	preview  *widget.Preview
	line     *widget.Label
	views    []libui.View
	root     *layout.Node
}

// New returns a panel drawing its colors from store and subscribed to
// its changes on a's bus. Call Close to unsubscribe.
func New(a *libui.App, store *prefs.Store, enc *qr.Encoder) *Panel {
	p := &Panel{
		store: store,
		enc:   enc,
		log:   a.Log,
	}
	p.input = &widget.TextBox{
		ID:          "input",
		Placeholder: "Enter text for QR code",
		Focused:     true,
		OnEnter:     func(*libui.App) { p.Generate(p.input.Text) },
	}
	p.generate = &widget.Button{ID: "generate", Text: "Generate QR Code",
		OnClick: func(*libui.App) { p.Generate(p.input.Text) }}
	p.save = &widget.Button{ID: "save", Text: "Save QR Code", Disabled: true,
		OnClick: p.PromptSave}
	p.swap = &widget.Button{ID: "swap", Text: "↔", OnClick: func(*libui.App) { p.SwapColors() }}
	p.colors = &widget.Label{Text: "QR Code Colors:"}
	p.fg = &widget.Swatch{ID: "fg", OnClick: p.PickForeground}
	p.bg = &widget.Swatch{ID: "bg", OnClick: p.PickBackground}
	p.preview = &widget.Preview{Size: a.Theme.PreviewSize, Placeholder: "No QR code yet"}
	p.line = &widget.Label{}
	p.views = []libui.View{p.input, p.generate, p.save, p.fg, p.bg, p.swap}

	p.cancel = libui.Listen(a.Bus, prefs.TopicChanged, p.colorsChanged)
	return p
}

// Close unsubscribes the panel from color changes.
func (p *Panel) Close() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// Text returns the input text.
func (p *Panel) Text() string {
	return p.input.Text
}

// SetText replaces the input text.
func (p *Panel) SetText(s string) {
	p.input.Text = s
}

// Image returns the last generated image, or nil.
func (p *Panel) Image() *image.Paletted {
	return p.img
}

// SaveState reports whether Save has an image to write.
func (p *Panel) SaveState() SaveState {
	return p.saveState
}

// Status returns the status line and whether it reports a failure.
func (p *Panel) Status() (string, bool) {
	return p.status, p.failed
}

func (p *Panel) setStatus(msg string, failed bool) {
	p.status, p.failed = msg, failed
}

// Generate encodes text with the current colors. On failure the
// previous image and save state are kept and the error is shown.
func (p *Panel) Generate(text string) error {
	c := p.store.Colors()
	img, err := p.enc.Encode(text, c.Foreground, c.Background)
	if err != nil {
		p.log.Debug("generate failed", "err", err)
		if errors.Is(err, qr.ErrEmptyText) {
			p.setStatus("Enter some text first", true)
		} else {
			p.setStatus(err.Error(), true)
		}
		return err
	}
	p.img = img
	p.preview.SetImage(img)
	p.saveState = SaveEnabled
	p.setStatus("", false)
	return nil
}

// SetForeground stores c as the foreground color.
func (p *Panel) SetForeground(c color.RGBA) error {
	return p.stored(p.store.SetForeground(c))
}

// SetBackground stores c as the background color.
func (p *Panel) SetBackground(c color.RGBA) error {
	return p.stored(p.store.SetBackground(c))
}

// SwapColors exchanges the foreground and background colors.
func (p *Panel) SwapColors() error {
	return p.stored(p.store.Swap())
}

func (p *Panel) stored(err error) error {
	if err != nil {
		p.setStatus(fmt.Sprintf("Saving colors failed: %v", err), true)
	}
	return err
}

// colorsChanged regenerates from the current input, if any.
func (p *Panel) colorsChanged(c prefs.Colors) {
	if p.input.Text == "" {
		return
	}
	p.Generate(p.input.Text)
}

// Save writes the last generated image to path, in the format given
// by the extension.
func (p *Panel) Save(path string) error {
	if p.img == nil {
		return ErrNothingToSave
	}
	if err := qr.WriteFile(path, p.img); err != nil {
		p.log.Warn("save failed", "path", path, "err", err)
		p.setStatus(err.Error(), true)
		return err
	}
	p.log.Info("saved", "path", path)
	p.setStatus("Saved to "+path, false)
	return nil
}

// PickForeground opens a color picker for the foreground color.
func (p *Panel) PickForeground(a *libui.App) {
	p.pick(a, "Select Foreground Color", p.store.Colors().Foreground, p.SetForeground)
}

// PickBackground opens a color picker for the background color.
func (p *Panel) PickBackground(a *libui.App) {
	p.pick(a, "Select Background Color", p.store.Colors().Background, p.SetBackground)
}

// pick stores the chosen color. Choosing the color already stored
// publishes nothing, so the panel regenerates by itself.
func (p *Panel) pick(a *libui.App, title string, cur color.RGBA, set func(color.RGBA) error) {
	dialog.NewColorDialog(title, cur, func(a *libui.App, c color.RGBA, ok bool) {
		if !ok {
			return
		}
		before := p.store.Colors()
		set(c)
		if after := p.store.Colors(); after == before {
			p.colorsChanged(after)
		}
	}).Show(a)
}

// PromptSave asks for a path and saves to it.
func (p *Panel) PromptSave(a *libui.App) {
	if p.img == nil {
		return
	}
	dialog.NewSaveDialog("Save QR Code", func(a *libui.App, path string, ok bool) {
		if ok {
			p.Save(path)
		}
	}).Show(a)
}

func (p *Panel) Layout(a *libui.App) *layout.Node {
	th := a.Theme
	c := p.store.Colors()
	p.fg.Color, p.bg.Color = c.Foreground, c.Background
	p.save.Disabled = p.saveState == SaveDisabled
	p.line.Text = p.status
	p.line.Color = th.DimText
	if p.failed {
		p.line.Color = th.ErrText
	}

	swap := p.swap.Layout(a)
	swap.MinW, swap.MaxW = th.SwatchSize, th.SwatchSize
	swap.MinH, swap.MaxH = th.SwatchSize, th.SwatchSize
	swap.Align = layout.Center
	label := p.colors.Layout(a)
	label.Align = layout.Center
	colorRow := layout.Box(layout.HBox,
		layout.Spacer(), label, p.fg.Layout(a), p.bg.Layout(a), swap, layout.Spacer())
	colorRow.Gap = th.Pad

	previewRow := layout.Box(layout.HBox, layout.Spacer(), p.preview.Layout(a), layout.Spacer())

	p.root = layout.Box(layout.VBox,
		p.input.Layout(a),
		p.generate.Layout(a),
		p.save.Layout(a),
		colorRow,
		previewRow,
		p.line.Layout(a),
		layout.Spacer(),
	)
	p.root.ID = "panel"
	p.root.Gap = th.Gap
	p.root.Flex = 1
	return p.root
}

func (p *Panel) Draw(a *libui.App, c *libui.Canvas) {
	for _, v := range p.views {
		v.Draw(a, c)
	}
	p.colors.Draw(a, c)
	p.preview.Draw(a, c)
	p.line.Draw(a, c)
}

func (p *Panel) Handle(a *libui.App, ev libui.Event) bool {
	return widget.Dispatch(a, ev, p.views...)
}
