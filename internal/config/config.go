package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kozaktomas/contact-sheet/internal/constants"
	"github.com/kozaktomas/contact-sheet/internal/layout"
	"gopkg.in/yaml.v3"
)

//go:embed papers.yaml
var papersYAML []byte

type Config struct {
	Sheet  SheetConfig
	Render RenderConfig
	Papers PapersConfig
}

// SheetConfig holds the layout choices. It is what a preset file contains
// and what command line flags override.
type SheetConfig struct {
	Paper         string  `yaml:"paper"`
	PageOrient    string  `yaml:"page_orient"`
	UniformOrient string  `yaml:"uniform_orient"`
	Rows          *int    `yaml:"rows"` // nil: computed
	Cols          *int    `yaml:"cols"` // nil: computed
	MarginMM      float64 `yaml:"margin_mm"`
	GapMM         float64 `yaml:"gap_mm"`
	Labels        string  `yaml:"labels"`
	Order         string  `yaml:"order"`
	Output        string  `yaml:"output"`
	Upscale       bool    `yaml:"upscale"`
	Recursive     bool    `yaml:"recursive"`
}

// RenderConfig controls output quality. Set via environment only.
type RenderConfig struct {
	MaxPixels       int     // long edge of embedded thumbnails (default 1920)
	JPEGQuality     int     // 1-100 (default 85)
	FontSize        float64 // caption font size in points (default 7)
	CaptionHeightPt float64 // strip reserved under each thumbnail (default 10)
}

type PapersConfig struct {
	Papers []layout.Paper `yaml:"papers"`
}

// DefaultSheet returns the built-in layout defaults.
func DefaultSheet() SheetConfig {
	return SheetConfig{
		Paper:         constants.DefaultPaper,
		PageOrient:    string(layout.OrientPortrait),
		UniformOrient: string(layout.OrientPortrait),
		MarginMM:      constants.DefaultMarginMM,
		GapMM:         constants.DefaultGapMM,
		Labels:        "none",
		Order:         string(layout.OrderFilmBottomUp),
		Output:        constants.DefaultOutput,
	}
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envFloat is envInt for positive floats.
func envFloat(key string, defaultVal float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
		return f
	}
	return defaultVal
}

func Load() *Config {
	var papers PapersConfig
	if err := yaml.Unmarshal(papersYAML, &papers); err != nil {
		// This is an embedded file so this error should never happen in practice
		panic("failed to unmarshal embedded papers.yaml: " + err.Error())
	}

	return &Config{
		Sheet: DefaultSheet(),
		Render: RenderConfig{
			MaxPixels:       envInt("CONTACT_SHEET_MAX_PIXELS", constants.MaxImageSize),
			JPEGQuality:     min(envInt("CONTACT_SHEET_JPEG_QUALITY", constants.DefaultJPEGQuality), 100),
			FontSize:        envFloat("CONTACT_SHEET_FONT_SIZE", constants.DefaultFontSize),
			CaptionHeightPt: envFloat("CONTACT_SHEET_CAPTION_HEIGHT", constants.DefaultCaptionHeightPt),
		},
		Papers: papers,
	}
}

// LoadPreset reads a YAML preset from path on top of the current sheet
// settings. Keys missing from the file keep their current value.
func (c *Config) LoadPreset(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read preset: %w", err)
	}
	sheet := c.Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return fmt.Errorf("failed to parse preset %s: %w", path, err)
	}
	c.Sheet = sheet
	return nil
}

// Paper looks up a paper size by name, case-insensitively.
func (c *Config) Paper(name string) (layout.Paper, error) {
	for _, p := range c.Papers.Papers {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return layout.Paper{}, fmt.Errorf("%w: unknown paper size %q (known: %s)",
		layout.ErrInvalidConfiguration, name, strings.Join(c.PaperNames(), ", "))
}

// PaperNames lists the known paper sizes in file order.
func (c *Config) PaperNames() []string {
	names := make([]string, 0, len(c.Papers.Papers))
	for _, p := range c.Papers.Papers {
		names = append(names, p.Name)
	}
	return names
}
