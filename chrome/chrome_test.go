package chrome

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/elizafairlady/qrjelly/draw"
	"github.com/elizafairlady/qrjelly/layout"
	"github.com/elizafairlady/qrjelly/libui"
	"github.com/elizafairlady/qrjelly/theme"
)

// box is a content view that fills its area and optionally consumes
// mouse presses.
type box struct {
	node    *layout.Node
	consume bool
	keys    []rune
}

func (b *box) Layout(a *libui.App) *layout.Node {
	b.node = &layout.Node{ID: "box", Flex: 1}
	return b.node
}

func (b *box) Draw(a *libui.App, c *libui.Canvas) {}

func (b *box) Handle(a *libui.App, ev libui.Event) bool {
	if k, ok := ev.Data.(libui.Key); ok {
		b.keys = append(b.keys, k.Rune)
		return true
	}
	return b.consume
}

func testFrame(t *testing.T) (*Frame, *libui.App, *libui.MemWindow, *libui.MemScreen) {
	t.Helper()
	w := &libui.MemWindow{Pos: image.Pt(100, 100)}
	s := libui.NewMemScreen(image.Pt(104, 104), 400, 300)
	a := libui.New(w, s, nil)
	f := New("QR Jelly", nil)
	if err := a.Render(f); err != nil {
		t.Fatal(err)
	}
	return f, a, w, s
}

// at returns the screen position of the center of the node called id.
func at(t *testing.T, f *Frame, s *libui.MemScreen, id string) image.Point {
	t.Helper()
	n := layout.Find(f.root, id)
	if n == nil {
		t.Fatalf("no node %q", id)
	}
	r := n.Rect
	return r.Min.Add(image.Pt(r.Dx()/2, r.Dy()/2)).Add(s.R.Min)
}

func TestDragMovesWindow(t *testing.T) {
	f, a, w, _ := testFrame(t)

	a.Step(f, libui.MouseEvent(image.Pt(110, 110), 1))
	d := f.Drag()
	if !d.Active || d.Anchor != image.Pt(10, 10) {
		t.Fatalf("drag = %+v, want active with anchor (10,10)", d)
	}
	a.Step(f, libui.MouseEvent(image.Pt(200, 200), 1))
	if w.Pos != image.Pt(190, 190) {
		t.Errorf("origin = %v, want (190,190)", w.Pos)
	}
	a.Step(f, libui.MouseEvent(image.Pt(200, 200), 0))
	if f.Drag().Active {
		t.Error("drag still active after release")
	}
	a.Step(f, libui.MouseEvent(image.Pt(300, 300), 0))
	if w.Pos != image.Pt(190, 190) {
		t.Errorf("origin moved to %v after release", w.Pos)
	}
}

func TestDragNeedsPrimaryPress(t *testing.T) {
	f, a, w, _ := testFrame(t)

	a.Step(f, libui.MouseEvent(image.Pt(110, 110), 4))
	a.Step(f, libui.MouseEvent(image.Pt(200, 200), 4))
	if f.Drag().Active || len(w.Moves) != 0 {
		t.Errorf("secondary button dragged: drag %+v, moves %v", f.Drag(), w.Moves)
	}
}

func TestDragNotOnConsumedPress(t *testing.T) {
	f, a, w, _ := testFrame(t)
	f.SetContent(&box{consume: true})
	a.Render(f)

	a.Step(f, libui.MouseEvent(image.Pt(250, 250), 1))
	a.Step(f, libui.MouseEvent(image.Pt(260, 260), 1))
	if f.Drag().Active || len(w.Moves) != 0 {
		t.Errorf("consumed press dragged: drag %+v, moves %v", f.Drag(), w.Moves)
	}
}

func TestDragOriginError(t *testing.T) {
	f, a, w, _ := testFrame(t)
	w.Err = errors.New("no wctl")
	a.Step(f, libui.MouseEvent(image.Pt(110, 110), 1))
	if f.Drag().Active {
		t.Error("drag started without a window origin")
	}
}

func TestMinimize(t *testing.T) {
	f, a, w, s := testFrame(t)
	p := at(t, f, s, "minimize")
	a.Step(f, libui.MouseEvent(p, 1))
	if f.Drag().Active {
		t.Error("press on minimize started a drag")
	}
	a.Step(f, libui.MouseEvent(p, 0))
	if !w.Hidden {
		t.Error("window not hidden after minimize")
	}
	if a.Done() {
		t.Error("minimize quit the app")
	}
}

func TestClose(t *testing.T) {
	f, a, _, s := testFrame(t)
	p := at(t, f, s, "close")
	a.Step(f, libui.MouseEvent(p, 1))
	a.Step(f, libui.MouseEvent(p, 0))
	if !a.Done() {
		t.Error("close did not quit")
	}
}

func TestCloseDraggedOff(t *testing.T) {
	f, a, _, s := testFrame(t)
	p := at(t, f, s, "close")
	a.Step(f, libui.MouseEvent(p, 1))
	a.Step(f, libui.MouseEvent(p.Add(image.Pt(0, 100)), 1))
	a.Step(f, libui.MouseEvent(p.Add(image.Pt(0, 100)), 0))
	if a.Done() {
		t.Error("release away from close quit")
	}
}

func TestShow(t *testing.T) {
	f, a, w, _ := testFrame(t)
	w.Hidden = true
	f.Show(a)
	if w.Hidden {
		t.Error("window still hidden")
	}
	if w.Label != "QR Jelly" {
		t.Errorf("label = %q, want QR Jelly", w.Label)
	}
}

func TestKeysGoToContent(t *testing.T) {
	f, a, _, _ := testFrame(t)
	b := &box{}
	f.SetContent(b)
	a.Render(f)
	a.Step(f, libui.KeyEvent('x'))
	if string(b.keys) != "x" {
		t.Errorf("content keys = %q, want x", string(b.keys))
	}
	if f.Content() != libui.View(b) {
		t.Error("Content() is not the view set")
	}
}

func TestContentArea(t *testing.T) {
	f, a, _, _ := testFrame(t)
	b := &box{}
	f.SetContent(b)
	a.Render(f)
	th := a.Theme
	top := th.Margin.Top + th.ControlSize + 2*th.ControlMargin + th.Gap + th.ContentTop
	want := image.Rect(th.Margin.Left, top, 400-th.Margin.Right, 300-th.Margin.Bottom)
	if b.node.Rect != want {
		t.Errorf("content rect = %v, want %v", b.node.Rect, want)
	}
}

func near(a, b color.RGBA) bool {
	d := func(x, y uint8) bool { return x-y <= 2 || y-x <= 2 }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestDrawBackground(t *testing.T) {
	_, a, _, s := testFrame(t)
	th := a.Theme
	if got := s.Last.RGBAAt(0, 0); !near(got, th.Backdrop) {
		t.Errorf("corner = %v, want backdrop %v", got, th.Backdrop)
	}
	want := theme.Over(th.Fill, th.Backdrop)
	if got := s.Last.RGBAAt(200, 150); !near(got, want) {
		t.Errorf("center = %v, want %v", got, want)
	}
}

func TestLoadIconPlan9Image(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 16, 16))
	src.Set(3, 4, color.RGBA{0xFF, 0x5F, 0x57, 0xFF})
	dir := t.TempDir()

	tests := []struct {
		name    string
		write   func(*os.File) error
		wantErr bool
	}{
		{"icon.bit", func(fp *os.File) error { return draw.WriteImage(fp, src) }, false},
		{"ICON.BIT", func(fp *os.File) error { return draw.WriteImage(fp, src) }, false},
		{"png.bit", func(fp *os.File) error { return png.Encode(fp, src) }, true},
	}
	for _, tt := range tests {
		path := filepath.Join(dir, tt.name)
		fp, err := os.Create(path)
		if err != nil {
			t.Fatal(err)
		}
		if err := tt.write(fp); err != nil {
			t.Fatal(err)
		}
		fp.Close()

		img, err := LoadIcon(path)
		if (err != nil) != tt.wantErr {
			t.Errorf("LoadIcon(%s) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			continue
		}
		if img.Bounds() != src.Bounds() {
			t.Errorf("LoadIcon(%s) bounds = %v, want %v", tt.name, img.Bounds(), src.Bounds())
		}
		r, g, b, _ := img.At(3, 4).RGBA()
		if r>>8 != 0xFF || g>>8 != 0x5F || b>>8 != 0x57 {
			t.Errorf("LoadIcon(%s) pixel = %v, want #FF5F57", tt.name, img.At(3, 4))
		}
	}
}

func TestLoadIcon(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icon.png")
	fp, _ := os.Create(path)
	png.Encode(fp, image.NewRGBA(image.Rect(0, 0, 32, 32)))
	fp.Close()

	img, err := LoadIcon(path)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 32 {
		t.Errorf("icon width = %d, want 32", img.Bounds().Dx())
	}
	if _, err := LoadIcon(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("LoadIcon of a missing file succeeded")
	}

	f := New("x", img)
	a := libui.New(&libui.MemWindow{}, libui.NewMemScreen(image.Point{}, 200, 100), nil)
	if err := a.Render(f); err != nil {
		t.Fatal(err)
	}
	if f.icon.Rect.Dx() != IconSize {
		t.Errorf("icon slot = %d wide, want %d", f.icon.Rect.Dx(), IconSize)
	}
}
