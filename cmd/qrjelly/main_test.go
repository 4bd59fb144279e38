package main

import (
	"bytes"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/elizafairlady/qrjelly/config"
	"github.com/elizafairlady/qrjelly/prefs"
	"github.com/elizafairlady/qrjelly/theme"
)

func TestVersion(t *testing.T) {
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "qrjelly "+version+"\n" {
		t.Errorf("output = %q", got)
	}
}

func TestPrint(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"print", "hello", "-c", filepath.Join(dir, "none.yaml"), "--env", filepath.Join(dir, ".env")})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.ContainsAny(buf.String(), "▀▄█") {
		t.Errorf("no QR code in output:\n%s", buf.String())
	}
}

func TestEncodeCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "hello.png")
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"encode", "hello", "-o", out, "--fg", "#ff0000",
		"-c", filepath.Join(dir, "none.yaml"), "--env", filepath.Join(dir, ".env")})
	t.Setenv("QRJELLY_PREFS", filepath.Join(dir, "colors.json"))
	t.Setenv("QRJELLY_LOG_LEVEL", "error")
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	fp, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	img, _, err := image.Decode(fp)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 290 {
		t.Errorf("width = %d, want 290", img.Bounds().Dx())
	}
	// Top left finder pattern, just inside the border.
	if r, g, _, _ := img.At(45, 45).RGBA(); r>>8 != 0xFF || g != 0 {
		t.Errorf("finder pixel = %v, want red", img.At(45, 45))
	}
}

func TestEncodeUsesSavedColors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "colors.json")
	saved := prefs.Colors{Foreground: theme.MustParse("#0000ff"), Background: theme.MustParse("#ffff00")}
	if err := prefs.Save(path, saved); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.PrefsPath = path
	out := filepath.Join(dir, "out.gif")
	if err := runEncode(cfg, slog.New(slog.DiscardHandler), "hi", out, "", ""); err != nil {
		t.Fatal(err)
	}
	fp, _ := os.Open(out)
	defer fp.Close()
	img, _, err := image.Decode(fp)
	if err != nil {
		t.Fatal(err)
	}
	if r, g, b, _ := img.At(1, 1).RGBA(); r>>8 != 0xFF || g>>8 != 0xFF || b != 0 {
		t.Errorf("border pixel = %v, want yellow", img.At(1, 1))
	}
}

func TestEncodeBadColor(t *testing.T) {
	cfg := config.Default()
	cfg.PrefsPath = filepath.Join(t.TempDir(), "colors.json")
	err := runEncode(cfg, slog.New(slog.DiscardHandler), "hi", filepath.Join(t.TempDir(), "x.png"), "red", "")
	if err == nil || !strings.Contains(err.Error(), "--fg") {
		t.Errorf("err = %v, want a --fg error", err)
	}
}

func TestEncodeUnsupported(t *testing.T) {
	cfg := config.Default()
	cfg.PrefsPath = filepath.Join(t.TempDir(), "colors.json")
	if err := runEncode(cfg, slog.New(slog.DiscardHandler), "hi", filepath.Join(t.TempDir(), "x.svg"), "", ""); err == nil {
		t.Error("encode to .svg succeeded")
	}
}
