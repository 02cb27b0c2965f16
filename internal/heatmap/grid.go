// Package heatmap draws matrix figures. Aggregation hands over a Grid, a
// renderer turns it into image files; the Renderer interface keeps the
// matrix packages free of any plotting dependency.
package heatmap

import (
	"strconv"

	"litmap/internal/matrix"
	"litmap/internal/util"
)

// Grid is the renderer's view of an aggregated matrix: ordered labels plus a
// dense value table. Row 0 is drawn at the bottom of the figure.
type Grid struct {
	RowLabels []string
	ColLabels []string
	Values    [][]float64 // [row][col]
	Min, Max  float64     // color-scale bounds
}

// Transpose swaps rows and columns, for the axis-swapped figure styles.
func (g *Grid) Transpose() *Grid {
	out := &Grid{
		RowLabels: g.ColLabels,
		ColLabels: g.RowLabels,
		Values:    make([][]float64, len(g.ColLabels)),
		Min:       g.Min,
		Max:       g.Max,
	}
	for r := range out.Values {
		out.Values[r] = make([]float64, len(g.RowLabels))
		for c := range out.Values[r] {
			out.Values[r][c] = g.Values[c][r]
		}
	}
	return out
}

// PresenceGrid converts the article presence table. The most referenced
// article is row 0, so it lands at the bottom of the figure.
func PresenceGrid(p *matrix.Presence, maxLabelRunes int) *Grid {
	g := &Grid{
		RowLabels: make([]string, len(p.Articles)),
		ColLabels: rqLabels(p.RQs),
		Values:    make([][]float64, len(p.Articles)),
		Min:       0,
		Max:       1,
	}
	for r := range p.Articles {
		g.RowLabels[r] = util.DisplayLabel(p.Articles[r], maxLabelRunes)
		g.Values[r] = make([]float64, len(p.RQs))
		for c := range p.RQs {
			if p.At(r, c) {
				g.Values[r][c] = 1
			}
		}
	}
	return g
}

// FrequencyGrid converts the year frequency table, keeping its global
// min/max as the color-scale bounds.
func FrequencyGrid(f *matrix.Frequency) *Grid {
	g := &Grid{
		RowLabels: make([]string, len(f.Years)),
		ColLabels: rqLabels(f.RQs),
		Values:    make([][]float64, len(f.Years)),
		Min:       float64(f.Min),
		Max:       float64(f.Max),
	}
	for r, year := range f.Years {
		g.RowLabels[r] = strconv.Itoa(year)
		g.Values[r] = make([]float64, len(f.RQs))
		for c := range f.RQs {
			g.Values[r][c] = float64(f.At(r, c))
		}
	}
	return g
}

func rqLabels(ids []int) []string {
	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = matrix.RQLabel(id)
	}
	return labels
}
