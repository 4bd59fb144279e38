package dialog

import (
	"image"
	"image/color"
	"testing"

	"github.com/elizafairlady/qrjelly/draw"
	"github.com/elizafairlady/qrjelly/layout"
	"github.com/elizafairlady/qrjelly/libui"
	"github.com/elizafairlady/qrjelly/widget"
)

func testApp(t *testing.T) (*libui.App, libui.View) {
	t.Helper()
	a := libui.New(&libui.MemWindow{}, libui.NewMemScreen(image.Pt(0, 0), 400, 500), nil)
	return a, &widget.Label{Text: "root"}
}

func render(t *testing.T, a *libui.App, root libui.View) {
	t.Helper()
	if err := a.Render(root); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

func center(r image.Rectangle) image.Point {
	return r.Min.Add(r.Size().Div(2))
}

type colorResult struct {
	c     color.RGBA
	ok    bool
	calls int
}

func (r *colorResult) done(a *libui.App, c color.RGBA, ok bool) {
	r.c, r.ok = c, ok
	r.calls++
}

func TestColorDialogPick(t *testing.T) {
	a, root := testApp(t)
	var res colorResult
	d := NewColorDialog("Foreground", color.Black, res.done)
	d.Show(a)
	render(t, a, root)

	if d.card.Rect.Dx() >= 400 || d.card.Rect.Min.X <= 0 {
		t.Errorf("card = %v, want centered and narrower than the window", d.card.Rect)
	}

	p := center(d.cell(255))
	a.Step(root, libui.MouseEvent(p, 0)) // release of the opening click
	a.Step(root, libui.MouseEvent(p, 1))
	if res.calls != 1 || !res.ok {
		t.Fatalf("result = %+v, want one confirmed pick", res)
	}
	if res.c != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("picked %v, want white", res.c)
	}
	if a.Overlaying() != nil {
		t.Error("dialog still shown after pick")
	}
}

func TestColorDialogIgnoresOpeningPress(t *testing.T) {
	a, root := testApp(t)
	var res colorResult
	d := NewColorDialog("Foreground", color.Black, res.done)
	d.Show(a)
	render(t, a, root)

	// The button that opened the dialog is still held over the grid.
	a.Step(root, libui.MouseEvent(center(d.cell(3)), 1))
	if res.calls != 0 {
		t.Errorf("opening press picked a color: %+v", res)
	}
}

func TestColorDialogCancel(t *testing.T) {
	tests := []struct {
		name string
		ev   func(d *ColorDialog) []libui.Event
	}{
		{"escape", func(*ColorDialog) []libui.Event {
			return []libui.Event{libui.KeyEvent(draw.KeyEscape)}
		}},
		{"click outside", func(*ColorDialog) []libui.Event {
			return []libui.Event{libui.MouseEvent(image.Pt(1, 1), 0), libui.MouseEvent(image.Pt(1, 1), 1)}
		}},
	}
	for _, tt := range tests {
		a, root := testApp(t)
		var res colorResult
		d := NewColorDialog("Background", color.White, res.done)
		d.Show(a)
		render(t, a, root)
		for _, ev := range tt.ev(d) {
			a.Step(root, ev)
		}
		if res.calls != 1 || res.ok {
			t.Errorf("%s: result = %+v, want one cancel", tt.name, res)
		}
		if a.Overlaying() != nil {
			t.Errorf("%s: dialog still shown", tt.name)
		}
	}
}

func TestColorDialogClickCardMargin(t *testing.T) {
	a, root := testApp(t)
	var res colorResult
	d := NewColorDialog("Foreground", color.Black, res.done)
	d.Show(a)
	render(t, a, root)
	p := d.card.Rect.Min.Add(image.Pt(2, 2))
	a.Step(root, libui.MouseEvent(p, 0))
	a.Step(root, libui.MouseEvent(p, 1))
	if res.calls != 0 || a.Overlaying() == nil {
		t.Errorf("click on card margin closed the dialog: %+v", res)
	}
}

func TestCellAt(t *testing.T) {
	a, root := testApp(t)
	d := NewColorDialog("x", nil, nil)
	d.Show(a)
	render(t, a, root)
	for _, i := range []int{0, 15, 16, 200, 255} {
		if got := d.cellAt(center(d.cell(i))); got != i {
			t.Errorf("cellAt(center(cell(%d))) = %d", i, got)
		}
	}
	if got := d.cellAt(d.grid.Rect.Max); got != -1 {
		t.Errorf("cellAt(max) = %d, want -1", got)
	}
}

type saveResult struct {
	path  string
	ok    bool
	calls int
}

func (r *saveResult) done(a *libui.App, path string, ok bool) {
	r.path, r.ok = path, ok
	r.calls++
}

func TestSaveDialogEnter(t *testing.T) {
	a, root := testApp(t)
	var res saveResult
	d := NewSaveDialog("Save QR Code", res.done)
	d.Show(a)
	render(t, a, root)

	a.Step(root, libui.KeyEvent('\n'))
	if res.calls != 0 {
		t.Fatal("empty path confirmed")
	}
	for _, r := range "out/qr" {
		a.Step(root, libui.KeyEvent(r))
	}
	a.Step(root, libui.KeyEvent('\n'))
	if res.calls != 1 || !res.ok || res.path != "out/qr.png" {
		t.Errorf("result = %+v, want out/qr.png", res)
	}
	if a.Overlaying() != nil {
		t.Error("dialog still shown")
	}
}

func TestSaveDialogEscape(t *testing.T) {
	a, root := testApp(t)
	var res saveResult
	d := NewSaveDialog("Save QR Code", res.done)
	d.Show(a)
	render(t, a, root)
	d.Box.Text = "x.png"
	a.Step(root, libui.KeyEvent(draw.KeyEscape))
	if res.calls != 1 || res.ok {
		t.Errorf("result = %+v, want cancel", res)
	}
}

func TestSaveDialogButtons(t *testing.T) {
	a, root := testApp(t)
	var res saveResult
	d := NewSaveDialog("Save QR Code", res.done)
	d.Show(a)
	d.Box.Text = "qr.gif"
	render(t, a, root)

	p := center(layout.Find(d.root, "save").Rect)
	a.Step(root, libui.MouseEvent(p, 1))
	a.Step(root, libui.MouseEvent(p, 0))
	if res.calls != 1 || !res.ok || res.path != "qr.gif" {
		t.Errorf("result = %+v, want qr.gif", res)
	}
}

func TestSaveDialogCancelButton(t *testing.T) {
	a, root := testApp(t)
	var res saveResult
	d := NewSaveDialog("Save QR Code", res.done)
	d.Show(a)
	render(t, a, root)

	p := center(layout.Find(d.root, "cancel").Rect)
	a.Step(root, libui.MouseEvent(p, 1))
	a.Step(root, libui.MouseEvent(p, 0))
	if res.calls != 1 || res.ok {
		t.Errorf("result = %+v, want cancel", res)
	}
}

func TestWithDefaultExt(t *testing.T) {
	tests := []struct{ in, want string }{
		{"qr", "qr.png"},
		{"dir/qr", "dir/qr.png"},
		{"qr.jpg", "qr.jpg"},
		{"qr.bit", "qr.bit"},
		{"dir.d/qr", "dir.d/qr.png"},
	}
	for _, tt := range tests {
		if got := WithDefaultExt(tt.in); got != tt.want {
			t.Errorf("WithDefaultExt(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
