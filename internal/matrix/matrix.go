// Package matrix pivots parsed reference records into the two tables the
// heatmaps are drawn from: article presence and per-year frequency. Both are
// plain ordered tables (row keys, column keys, dense cells) so the renderer
// and the text summary can walk them without knowing how they were built.
package matrix

import (
	"fmt"
	"sort"

	"litmap/internal/refs"
)

// RQLabel formats a research question id the way the source files name them.
func RQLabel(id int) string {
	return fmt.Sprintf("RQ%d", id)
}

func sortedRQs(records []refs.Record) []int {
	seen := map[int]struct{}{}
	var rqs []int
	for _, r := range records {
		if _, ok := seen[r.RQ]; ok {
			continue
		}
		seen[r.RQ] = struct{}{}
		rqs = append(rqs, r.RQ)
	}
	sort.Ints(rqs)
	return rqs
}
