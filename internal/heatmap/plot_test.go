package heatmap

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"litmap/internal/config"

	"github.com/ledongthuc/pdf"
)

func testGrid() *Grid {
	return &Grid{
		RowLabels: []string{"2020", "2021", "2022"},
		ColLabels: []string{"RQ1", "RQ2"},
		Values:    [][]float64{{2, 0}, {1, 1}, {0, 3}},
		Min:       0,
		Max:       3,
	}
}

func testOptions(t *testing.T) Options {
	t.Helper()
	opt, err := OptionsFrom(config.Load())
	if err != nil {
		t.Fatal(err)
	}
	opt.Title = "test"
	opt.XLabel = "Research Questions"
	opt.YLabel = "Year"
	opt.CellLabels = true
	opt.DPI = 72 // keep the test image small
	return opt
}

func TestRenderPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "years-by-rq.png")
	if err := NewPlotRenderer().RenderPNG(testGrid(), testOptions(t), path); err != nil {
		t.Fatalf("render png: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not decodable png: %v", err)
	}
	if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		t.Fatalf("empty image: %v", img.Bounds())
	}
}

func TestRenderPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "years-by-rq.pdf")
	if err := NewPlotRenderer().RenderPDF(testGrid(), testOptions(t), path); err != nil {
		t.Fatalf("render pdf: %v", err)
	}
	f, reader, err := pdf.Open(path)
	if err != nil {
		t.Fatalf("output is not openable pdf: %v", err)
	}
	defer f.Close()
	if reader.NumPage() < 1 {
		t.Fatalf("expected at least one page, got %d", reader.NumPage())
	}
}

func TestRenderEmptyGrid(t *testing.T) {
	g := &Grid{}
	err := NewPlotRenderer().RenderPNG(g, testOptions(t), filepath.Join(t.TempDir(), "x.png"))
	if err == nil {
		t.Fatal("expected error for empty grid")
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#1f77b4")
	if err != nil {
		t.Fatal(err)
	}
	if c != (color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}) {
		t.Fatalf("unexpected color: %+v", c)
	}
	if _, err := ParseHexColor("blue"); err == nil {
		t.Fatal("expected error for non-hex input")
	}
}

func TestGradientEndpoints(t *testing.T) {
	g := gradient{low: color.White, high: color.Black, steps: 16}
	colors := g.Colors()
	if len(colors) != 16 {
		t.Fatalf("expected 16 steps, got %d", len(colors))
	}
	if luminance(colors[0]) < 0.99 {
		t.Fatalf("first step must be the low endpoint")
	}
	if luminance(colors[15]) > 0.01 {
		t.Fatalf("last step must be the high endpoint")
	}
}

func TestContrastPair(t *testing.T) {
	above, below := contrastPair(color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff})
	if above != color.White || below != color.Black {
		t.Fatalf("dark high endpoint needs light text above the midpoint")
	}
}
