package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kozaktomas/contact-sheet/internal/layout"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONTACT_SHEET_MAX_PIXELS", "")
	t.Setenv("CONTACT_SHEET_JPEG_QUALITY", "")
	t.Setenv("CONTACT_SHEET_FONT_SIZE", "")
	t.Setenv("CONTACT_SHEET_CAPTION_HEIGHT", "")

	cfg := Load()

	if cfg.Sheet.Paper != "A4" {
		t.Errorf("expected A4, got %s", cfg.Sheet.Paper)
	}
	if cfg.Sheet.PageOrient != "portrait" || cfg.Sheet.UniformOrient != "portrait" {
		t.Errorf("expected portrait orientations, got %s/%s", cfg.Sheet.PageOrient, cfg.Sheet.UniformOrient)
	}
	if cfg.Sheet.MarginMM != 10 || cfg.Sheet.GapMM != 2 {
		t.Errorf("expected margin 10 and gap 2, got %v and %v", cfg.Sheet.MarginMM, cfg.Sheet.GapMM)
	}
	if cfg.Sheet.Labels != "none" {
		t.Errorf("expected labels none, got %s", cfg.Sheet.Labels)
	}
	if cfg.Sheet.Order != "film-bottom-up" {
		t.Errorf("expected film-bottom-up, got %s", cfg.Sheet.Order)
	}
	if cfg.Sheet.Output != "contact_sheet.pdf" {
		t.Errorf("expected contact_sheet.pdf, got %s", cfg.Sheet.Output)
	}
	if cfg.Sheet.Rows != nil || cfg.Sheet.Cols != nil {
		t.Error("rows and cols should default to automatic")
	}
	if cfg.Render.MaxPixels != 1920 {
		t.Errorf("expected max pixels 1920, got %d", cfg.Render.MaxPixels)
	}
	if cfg.Render.JPEGQuality != 85 {
		t.Errorf("expected quality 85, got %d", cfg.Render.JPEGQuality)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONTACT_SHEET_MAX_PIXELS", "800")
	t.Setenv("CONTACT_SHEET_JPEG_QUALITY", "250")
	t.Setenv("CONTACT_SHEET_FONT_SIZE", "9.5")
	t.Setenv("CONTACT_SHEET_CAPTION_HEIGHT", "not-a-number")

	cfg := Load()

	if cfg.Render.MaxPixels != 800 {
		t.Errorf("expected 800, got %d", cfg.Render.MaxPixels)
	}
	if cfg.Render.JPEGQuality != 100 {
		t.Errorf("expected quality clamped to 100, got %d", cfg.Render.JPEGQuality)
	}
	if cfg.Render.FontSize != 9.5 {
		t.Errorf("expected 9.5, got %v", cfg.Render.FontSize)
	}
	if cfg.Render.CaptionHeightPt != 10 {
		t.Errorf("invalid value should fall back to 10, got %v", cfg.Render.CaptionHeightPt)
	}
}

func TestEnvInt(t *testing.T) {
	t.Setenv("TEST_ENV_INT", "-3")
	if got := envInt("TEST_ENV_INT", 7); got != 7 {
		t.Errorf("negative value should fall back, got %d", got)
	}
	t.Setenv("TEST_ENV_INT", "12")
	if got := envInt("TEST_ENV_INT", 7); got != 12 {
		t.Errorf("expected 12, got %d", got)
	}
}

func TestPaper(t *testing.T) {
	cfg := Load()

	a4, err := cfg.Paper("a4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a4 != layout.A4 {
		t.Errorf("expected %+v, got %+v", layout.A4, a4)
	}

	letter, err := cfg.Paper("Letter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if letter.WidthMM != 215.9 {
		t.Errorf("expected letter width 215.9, got %v", letter.WidthMM)
	}

	_, err = cfg.Paper("B7")
	if !errors.Is(err, layout.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestLoadPreset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "film.yaml")
	preset := "page_orient: landscape\nrows: 6\nlabels: index\n"
	if err := os.WriteFile(path, []byte(preset), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load()
	if err := cfg.LoadPreset(path); err != nil {
		t.Fatalf("LoadPreset returned error: %v", err)
	}

	if cfg.Sheet.PageOrient != "landscape" {
		t.Errorf("expected landscape, got %s", cfg.Sheet.PageOrient)
	}
	if cfg.Sheet.Rows == nil || *cfg.Sheet.Rows != 6 {
		t.Errorf("expected rows 6, got %v", cfg.Sheet.Rows)
	}
	if cfg.Sheet.Cols != nil {
		t.Errorf("cols should stay automatic, got %v", *cfg.Sheet.Cols)
	}
	if cfg.Sheet.Labels != "index" {
		t.Errorf("expected labels index, got %s", cfg.Sheet.Labels)
	}
	// Untouched keys keep their defaults.
	if cfg.Sheet.MarginMM != 10 {
		t.Errorf("expected default margin, got %v", cfg.Sheet.MarginMM)
	}
}

func TestLoadPreset_Errors(t *testing.T) {
	cfg := Load()
	if err := cfg.LoadPreset(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing preset")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rows: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := cfg.LoadPreset(path); err == nil {
		t.Error("expected error for malformed preset")
	}
}
