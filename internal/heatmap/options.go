package heatmap

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"litmap/internal/config"
)

// Options is the figure configuration: palette endpoints, fonts, sizing and
// cell-label behavior. Dimensions are inches, font sizes points.
type Options struct {
	Title  string
	XLabel string
	YLabel string

	Low  color.Color
	High color.Color

	CellLabels     bool
	ShowZeroLabels bool

	HeightPerRow   float64
	WidthPerColumn float64
	MinHeight      float64
	MinWidth       float64

	TickFontSize float64
	RowFontSize  float64
	CellFontSize float64

	DPI int
}

// OptionsFrom maps the environment configuration onto figure options.
// Titles and axis names are set per figure by the caller.
func OptionsFrom(cfg config.Config) (Options, error) {
	low, err := ParseHexColor(cfg.LowColor)
	if err != nil {
		return Options{}, fmt.Errorf("LITMAP_LOW_COLOR: %w", err)
	}
	high, err := ParseHexColor(cfg.HighColor)
	if err != nil {
		return Options{}, fmt.Errorf("LITMAP_HIGH_COLOR: %w", err)
	}
	return Options{
		Low:            low,
		High:           high,
		ShowZeroLabels: cfg.ShowZeroLabels,
		HeightPerRow:   cfg.HeightPerRow,
		WidthPerColumn: cfg.WidthPerColumn,
		MinHeight:      cfg.MinHeight,
		MinWidth:       cfg.MinWidth,
		TickFontSize:   cfg.TickFontSize,
		RowFontSize:    cfg.RowFontSize,
		CellFontSize:   cfg.CellFontSize,
		DPI:            cfg.DPI,
	}, nil
}

// ParseHexColor parses "#rrggbb" (leading '#' optional).
func ParseHexColor(s string) (color.Color, error) {
	hexs := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hexs) != 6 {
		return nil, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hexs, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
