// Command years renders the year × research-question frequency heatmaps:
// paired PNG (300 dpi) + PDF per figure style, a console table of the
// counts, and a manifest tying the figures back to their input lists.
package main

import (
	"fmt"
	"log"
	"path/filepath"

	"litmap/internal/config"
	"litmap/internal/heatmap"
	"litmap/internal/matrix"
	"litmap/internal/refs"
	"litmap/internal/scan"
	"litmap/internal/summary"
	"litmap/internal/util"

	"github.com/joho/godotenv"
)

type style struct {
	name    string
	swapped bool
	xLabel  string
	yLabel  string
}

var styles = []style{
	{name: "years-by-rq", xLabel: "Research Questions", yLabel: "Year"},
	{name: "rq-by-years", swapped: true, xLabel: "Year", yLabel: "Research Questions"},
}

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()

	inDir, err := cfg.InputDir()
	if err != nil {
		log.Fatal(err)
	}
	sources, err := scan.Discover(inDir)
	if err != nil {
		log.Fatal(err)
	}
	records, err := refs.ParseAll(sources)
	if err != nil {
		log.Fatal(err)
	}
	for _, rec := range records {
		if rec.Year == nil {
			log.Printf("warn: no trailing year, excluded from counts: %q (rq%d)", rec.Article, rec.RQ)
		}
	}

	f, err := matrix.BuildFrequency(records)
	if err != nil {
		log.Fatal(err)
	}

	table := summary.Table(f)
	fmt.Print(table)

	opt, err := heatmap.OptionsFrom(cfg)
	if err != nil {
		log.Fatal(err)
	}
	opt.CellLabels = true

	grid := heatmap.FrequencyGrid(f)
	renderer := heatmap.NewPlotRenderer()
	var outputs []string
	for _, s := range styles {
		g := grid
		if s.swapped {
			g = grid.Transpose()
		}
		o := opt
		o.XLabel, o.YLabel = s.xLabel, s.yLabel
		if err := renderer.RenderPNG(g, o, filepath.Join(cfg.DataOutDir, s.name+".png")); err != nil {
			log.Fatal(err)
		}
		if err := renderer.RenderPDF(g, o, filepath.Join(cfg.DataOutDir, s.name+".pdf")); err != nil {
			log.Fatal(err)
		}
		outputs = append(outputs, s.name+".png", s.name+".pdf")
	}

	if err := util.WriteTextAtomic(filepath.Join(cfg.DataOutDir, "summary.txt"), table); err != nil {
		log.Fatal(err)
	}
	outputs = append(outputs, "summary.txt")

	m, err := summary.BuildManifest(sources, f, outputs)
	if err != nil {
		log.Fatal(err)
	}
	if err := m.Write(filepath.Join(cfg.DataOutDir, "manifest.json")); err != nil {
		log.Fatal(err)
	}

	log.Printf("run %s: %d dated records (%d skipped), years %d-%d, %d figures -> %s",
		m.RunID, f.Dated, f.Skipped, m.YearMin, m.YearMax, len(styles)*2, cfg.DataOutDir)
}
