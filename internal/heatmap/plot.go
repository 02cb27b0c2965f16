package heatmap

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"

	"litmap/internal/util"
)

// Renderer produces figure files from a grid. Split from aggregation so the
// matrix packages stay testable without a plot backend.
type Renderer interface {
	RenderPNG(g *Grid, opt Options, path string) error
	RenderPDF(g *Grid, opt Options, path string) error
}

// PlotRenderer draws grids with gonum/plot.
type PlotRenderer struct{}

func NewPlotRenderer() *PlotRenderer {
	return &PlotRenderer{}
}

func (r *PlotRenderer) RenderPNG(g *Grid, opt Options, path string) error {
	p, err := buildPlot(g, opt)
	if err != nil {
		return err
	}
	w, h := figureSize(g, opt)
	dpi := opt.DPI
	if dpi <= 0 {
		dpi = 300
	}
	canvas := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
	p.Draw(draw.New(canvas))
	return writeCanvas(path, func(f *os.File) error {
		_, err := vgimg.PngCanvas{Canvas: canvas}.WriteTo(f)
		return err
	})
}

func (r *PlotRenderer) RenderPDF(g *Grid, opt Options, path string) error {
	p, err := buildPlot(g, opt)
	if err != nil {
		return err
	}
	w, h := figureSize(g, opt)
	canvas := vgpdf.New(w, h)
	p.Draw(draw.New(canvas))
	return writeCanvas(path, func(f *os.File) error {
		_, err := canvas.WriteTo(f)
		return err
	})
}

func writeCanvas(path string, write func(*os.File) error) error {
	if err := util.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func buildPlot(g *Grid, opt Options) (*plot.Plot, error) {
	if len(g.RowLabels) == 0 || len(g.ColLabels) == 0 {
		return nil, fmt.Errorf("%w: empty grid", util.ErrNoRecords)
	}

	p := plot.New()
	p.Title.Text = opt.Title
	p.X.Label.Text = opt.XLabel
	p.Y.Label.Text = opt.YLabel

	hm := plotter.NewHeatMap(gridData{g}, gradient{low: opt.Low, high: opt.High, steps: 256})
	hm.Min, hm.Max = g.Min, g.Max
	if hm.Max <= hm.Min {
		// degenerate scale, e.g. an all-zero grid
		hm.Max = hm.Min + 1
	}
	p.Add(hm)

	p.X.Tick.Marker = labelTicks(g.ColLabels)
	p.X.Tick.Label.Font.Size = vg.Points(opt.TickFontSize)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter

	p.Y.Tick.Marker = labelTicks(g.RowLabels)
	p.Y.Tick.Label.Font.Size = vg.Points(opt.RowFontSize)

	if opt.CellLabels {
		labels, err := cellLabels(g, opt)
		if err != nil {
			return nil, err
		}
		p.Add(labels)
	}
	return p, nil
}

// gridData adapts a Grid to plotter.GridXYZ: column c is centered on x=c,
// row r on y=r, so row 0 sits at the bottom.
type gridData struct{ g *Grid }

func (d gridData) Dims() (c, r int)   { return len(d.g.ColLabels), len(d.g.RowLabels) }
func (d gridData) Z(c, r int) float64 { return d.g.Values[r][c] }
func (d gridData) X(c int) float64    { return float64(c) }
func (d gridData) Y(r int) float64    { return float64(r) }

func labelTicks(labels []string) plot.Ticker {
	ticks := make([]plot.Tick, len(labels))
	for i, l := range labels {
		ticks[i] = plot.Tick{Value: float64(i), Label: l}
	}
	return plot.ConstantTicks(ticks)
}

// cellLabels writes each count in its cell. Label color flips at the
// midpoint between the grid's min and max so text stays readable on both
// ends of the palette.
func cellLabels(g *Grid, opt Options) (*plotter.Labels, error) {
	mid := (g.Min + g.Max) / 2
	lightText, darkText := contrastPair(opt.High)

	var xys plotter.XYs
	var texts []string
	var above []bool
	for r := range g.RowLabels {
		for c := range g.ColLabels {
			v := g.Values[r][c]
			if v == 0 && !opt.ShowZeroLabels {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(c), Y: float64(r)})
			texts = append(texts, strconv.FormatFloat(v, 'f', -1, 64))
			above = append(above, v > mid)
		}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, fmt.Errorf("cell labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = vg.Points(opt.CellFontSize)
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YCenter
		if above[i] {
			labels.TextStyle[i].Color = lightText
		} else {
			labels.TextStyle[i].Color = darkText
		}
	}
	return labels, nil
}

// contrastPair picks the label colors for cells above and below the
// midpoint, based on how dark the palette's high endpoint is.
func contrastPair(high color.Color) (aboveMid, belowMid color.Color) {
	if luminance(high) < 0.5 {
		return color.White, color.Black
	}
	return color.Black, color.White
}

func luminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 0xffff
}

func figureSize(g *Grid, opt Options) (w, h vg.Length) {
	cols := float64(len(g.ColLabels))
	rows := float64(len(g.RowLabels))
	wIn := math.Max(opt.MinWidth, cols*opt.WidthPerColumn)
	hIn := math.Max(opt.MinHeight, rows*opt.HeightPerRow)
	return vg.Length(wIn) * vg.Inch, vg.Length(hIn) * vg.Inch
}

// gradient linearly interpolates between two palette endpoints.
type gradient struct {
	low, high color.Color
	steps     int
}

func (g gradient) Colors() []color.Color {
	n := g.steps
	if n < 2 {
		n = 2
	}
	lr, lg, lb, la := g.low.RGBA()
	hr, hg, hb, ha := g.high.RGBA()
	out := make([]color.Color, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		out[i] = color.RGBA64{
			R: lerp(lr, hr, t),
			G: lerp(lg, hg, t),
			B: lerp(lb, hb, t),
			A: lerp(la, ha, t),
		}
	}
	return out
}

func lerp(a, b uint32, t float64) uint16 {
	return uint16(float64(a) + (float64(b)-float64(a))*t)
}
