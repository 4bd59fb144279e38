package libui

import (
	"image"
	"image/color"
	"testing"

	"github.com/elizafairlady/qrjelly/layout"
)

// recView records the events it receives and paints itself red.
type recView struct {
	node    *layout.Node
	events  []Event
	consume bool
}

func (v *recView) Layout(a *App) *layout.Node {
	v.node = &layout.Node{ID: "rec", Flex: 1}
	return v.node
}

func (v *recView) Draw(a *App, c *Canvas) {
	c.Fill(v.node.Rect, color.RGBA{255, 0, 0, 255})
}

func (v *recView) Handle(a *App, ev Event) bool {
	v.events = append(v.events, ev)
	return v.consume
}

func testApp() (*App, *MemWindow, *MemScreen) {
	w := &MemWindow{Pos: image.Pt(96, 46)}
	s := NewMemScreen(image.Pt(100, 50), 64, 48)
	return New(w, s, nil), w, s
}

func TestStepTranslatesMouse(t *testing.T) {
	a, _, _ := testApp()
	v := &recView{}
	a.Step(v, MouseEvent(image.Pt(110, 70), 1))
	if len(v.events) != 1 {
		t.Fatalf("got %d events, want 1", len(v.events))
	}
	m := v.events[0].Data.(Mouse)
	if m.Point != image.Pt(10, 20) {
		t.Errorf("local point = %v, want (10,20)", m.Point)
	}
	if m.Screen != image.Pt(110, 70) {
		t.Errorf("screen point = %v, want (110,70)", m.Screen)
	}
	if !m.Primary() {
		t.Error("Primary() = false, want true")
	}
}

func TestStepOverlayTakesInput(t *testing.T) {
	a, _, _ := testApp()
	root, ov := &recView{}, &recView{}
	a.Overlay(ov)
	a.Step(root, KeyEvent('x'))
	if len(root.events) != 0 || len(ov.events) != 1 {
		t.Errorf("root got %d, overlay got %d, want 0 and 1", len(root.events), len(ov.events))
	}
	a.Dismiss()
	a.Step(root, KeyEvent('y'))
	if len(root.events) != 1 {
		t.Errorf("root got %d events after Dismiss, want 1", len(root.events))
	}
}

func TestStepCallAndQuit(t *testing.T) {
	a, _, _ := testApp()
	v := &recView{}
	ran := false
	a.Step(v, Event{Kind: KindCall, Data: func(*App) { ran = true }})
	if !ran {
		t.Error("posted call did not run")
	}
	a.Step(v, Event{Kind: KindQuit})
	if !a.Done() {
		t.Error("Done() = false after quit event")
	}
	if len(v.events) != 0 {
		t.Errorf("view saw %d events, want 0", len(v.events))
	}
}

func TestRenderPresents(t *testing.T) {
	a, _, s := testApp()
	if err := a.Render(&recView{}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if s.Presents != 1 || s.Last == nil {
		t.Fatalf("Presents = %d", s.Presents)
	}
	if got := s.Last.Bounds(); got != image.Rect(0, 0, 64, 48) {
		t.Errorf("frame bounds = %v", got)
	}
	if got := s.Last.RGBAAt(32, 24); got.R < 250 || got.G > 5 {
		t.Errorf("center pixel = %v, want red", got)
	}
}

func TestRunQuitsOnPostedQuit(t *testing.T) {
	a, _, s := testApp()
	v := &recView{}
	a.Post(KeyEvent('a'))
	a.Do(func(a *App) { a.Quit() })
	if err := a.Run(v); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(v.events) != 1 {
		t.Errorf("view saw %d events, want 1", len(v.events))
	}
	if s.Presents < 1 {
		t.Error("Run never presented")
	}
}

func TestPostAfterRunDoesNotBlock(t *testing.T) {
	a, _, _ := testApp()
	a.Do(func(a *App) { a.Quit() })
	if err := a.Run(&recView{}); err != nil {
		t.Fatal(err)
	}
	for range 200 {
		a.Post(KeyEvent('x'))
	}
}

func TestStepTracksPress(t *testing.T) {
	a, _, _ := testApp()
	v := &recView{}
	a.Step(v, MouseEvent(image.Pt(110, 70), 1))
	a.Step(v, MouseEvent(image.Pt(111, 70), 1))
	a.Step(v, MouseEvent(image.Pt(111, 70), 0))
	a.Step(v, MouseEvent(image.Pt(111, 70), 5))
	want := []bool{true, false, false, true}
	for i, ev := range v.events {
		if got := ev.Data.(Mouse).Pressed(); got != want[i] {
			t.Errorf("event %d: Pressed() = %v, want %v", i, got, want[i])
		}
	}
}
