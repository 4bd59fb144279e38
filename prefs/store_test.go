package prefs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

type recorder struct {
	topics []string
	colors []Colors
}

func (r *recorder) Publish(topic string, payload any) {
	r.topics = append(r.topics, topic)
	r.colors = append(r.colors, payload.(Colors))
}

func TestStoreSetPersistsAndPublishes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.json")
	var rec recorder
	s := Open(path, &rec, nil)
	if s.Colors() != Default() {
		t.Fatalf("initial = %+v, want defaults", s.Colors())
	}

	red := color.RGBA{255, 0, 0, 255}
	if err := s.SetForeground(red); err != nil {
		t.Fatalf("SetForeground: %v", err)
	}
	if len(rec.colors) != 1 || rec.topics[0] != TopicChanged || rec.colors[0].Foreground != red {
		t.Errorf("published %+v on %v", rec.colors, rec.topics)
	}
	if got := Load(path, nil); got.Foreground != red || got.Background != white {
		t.Errorf("file holds %+v", got)
	}

	// Same color again: nothing to do.
	if err := s.SetForeground(red); err != nil {
		t.Fatal(err)
	}
	if len(rec.colors) != 1 {
		t.Errorf("unchanged set published %d events", len(rec.colors)-1)
	}

	blue := color.RGBA{0, 0, 255, 255}
	s.SetBackground(blue)
	if got := s.Colors(); got != (Colors{red, blue}) {
		t.Errorf("Colors = %+v", got)
	}
}

func TestStoreSwapTwiceRestoresFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.json")
	s := Open(path, nil, nil)
	s.Set(Colors{color.RGBA{0x11, 0x22, 0x33, 255}, color.RGBA{0x44, 0x55, 0x66, 255}})
	before, _ := os.ReadFile(path)
	orig := s.Colors()

	if err := s.Swap(); err != nil {
		t.Fatal(err)
	}
	if got := s.Colors(); got != orig.Swapped() {
		t.Errorf("after one swap = %+v", got)
	}
	if err := s.Swap(); err != nil {
		t.Fatal(err)
	}
	after, _ := os.ReadFile(path)
	if s.Colors() != orig {
		t.Errorf("after two swaps = %+v, want %+v", s.Colors(), orig)
	}
	if string(before) != string(after) {
		t.Errorf("file changed:\n%s\n%s", before, after)
	}
}

func TestStoreSaveFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "colors.json")
	var rec recorder
	s := Open(path, &rec, nil)
	green := color.RGBA{0, 255, 0, 255}
	if err := s.SetForeground(green); err == nil {
		t.Error("SetForeground into a missing directory succeeded")
	}
	if s.Colors().Foreground != green {
		t.Error("failed save dropped the in-memory change")
	}
	if len(rec.colors) != 1 {
		t.Errorf("published %d events, want 1", len(rec.colors))
	}
}

func TestStoreReload(t *testing.T) {
	path := writeFile(t, t.TempDir(), `{"foreground_color":"#000000","background_color":"#ffffff"}`)
	var rec recorder
	s := Open(path, &rec, nil)
	if s.Reload() {
		t.Error("Reload of unchanged file reported a change")
	}
	os.WriteFile(path, []byte(`{"foreground_color":"#123456"}`), 0o644)
	if !s.Reload() {
		t.Fatal("Reload missed the change")
	}
	if s.Colors().Foreground != (color.RGBA{0x12, 0x34, 0x56, 255}) {
		t.Errorf("Colors = %+v", s.Colors())
	}
	if len(rec.colors) != 1 {
		t.Errorf("published %d events, want 1", len(rec.colors))
	}
}
