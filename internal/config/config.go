package config

import (
	"fmt"
	"os"
	"strconv"

	"litmap/internal/util"
)

type Config struct {
	DataInDir  string
	DataOutDir string

	HeightPerRow   float64
	WidthPerColumn float64
	MinHeight      float64
	MinWidth       float64

	LowColor  string
	HighColor string

	TickFontSize  float64
	RowFontSize   float64
	CellFontSize  float64
	LabelMaxRunes int

	DPI            int
	ShowZeroLabels bool
}

func Load() Config {
	return Config{
		DataInDir:      getenv("LITMAP_DATA_IN", ""),
		DataOutDir:     getenv("LITMAP_DATA_OUT", "./figures"),
		HeightPerRow:   getenvFloat("LITMAP_HEIGHT_PER_ROW", 0.25),
		WidthPerColumn: getenvFloat("LITMAP_WIDTH_PER_COLUMN", 0.5),
		MinHeight:      getenvFloat("LITMAP_MIN_HEIGHT", 4),
		MinWidth:       getenvFloat("LITMAP_MIN_WIDTH", 6),
		LowColor:       getenv("LITMAP_LOW_COLOR", "#ffffff"),
		HighColor:      getenv("LITMAP_HIGH_COLOR", "#1f77b4"),
		TickFontSize:   getenvFloat("LITMAP_TICK_FONT_SIZE", 10),
		RowFontSize:    getenvFloat("LITMAP_ROW_FONT_SIZE", 6),
		CellFontSize:   getenvFloat("LITMAP_CELL_FONT_SIZE", 8),
		LabelMaxRunes:  getenvInt("LITMAP_LABEL_MAX_RUNES", 80),
		DPI:            getenvInt("LITMAP_DPI", 300),
		ShowZeroLabels: getenvBool("LITMAP_SHOW_ZERO_LABELS", false),
	}
}

// InputDir resolves the directory holding the rq<N>.txt lists. An explicit
// LITMAP_DATA_IN wins; otherwise the process working directory is used,
// matching the run-where-the-lists-live convention.
func (c Config) InputDir() (string, error) {
	if c.DataInDir != "" {
		return c.DataInDir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrNoWorkdir, err)
	}
	return wd, nil
}

func getenv(k, fallback string) string {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	return v
}

func getenvInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvFloat(k string, fallback float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getenvBool(k string, fallback bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
