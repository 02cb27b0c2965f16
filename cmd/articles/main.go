// Command articles renders the article × research-question presence heatmap
// from the rq<N>.txt lists in the working directory (or LITMAP_DATA_IN).
package main

import (
	"log"
	"path/filepath"

	"litmap/internal/config"
	"litmap/internal/heatmap"
	"litmap/internal/matrix"
	"litmap/internal/refs"
	"litmap/internal/scan"

	"github.com/joho/godotenv"
)

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
	p, err := matrix.BuildPresence(records)
	if err != nil {
		log.Fatal(err)
	}

	opt, err := heatmap.OptionsFrom(cfg)
	if err != nil {
		log.Fatal(err)
	}
	opt.XLabel = "Research Questions"
	opt.YLabel = "Articles"

	out := filepath.Join(cfg.DataOutDir, "articles-heatmap.png")
	grid := heatmap.PresenceGrid(p, cfg.LabelMaxRunes)
	if err := heatmap.NewPlotRenderer().RenderPNG(grid, opt, out); err != nil {
		log.Fatal(err)
	}
	log.Printf("presence heatmap: %d articles x %d research questions -> %s", len(p.Articles), len(p.RQs), out)
}
