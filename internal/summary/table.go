// Package summary reports on a finished aggregation: a tabwriter table of
// the frequency matrix for the console, and a JSON manifest tying the
// rendered figures back to the exact inputs they came from.
package summary

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"litmap/internal/matrix"
)

// Table renders the frequency matrix as an aligned text table with per-year
// and per-RQ totals. The same string is printed to the console and written
// next to the figures.
func Table(f *matrix.Frequency) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', tabwriter.AlignRight)

	// every cell ends with a tab, the last one included; tabwriter only
	// aligns tab-terminated cells
	fmt.Fprint(w, "Year")
	for _, rq := range f.RQs {
		fmt.Fprintf(w, "\t%s", matrix.RQLabel(rq))
	}
	fmt.Fprint(w, "\tTotal\t\n")

	for row, year := range f.Years {
		fmt.Fprintf(w, "%d", year)
		for col := range f.RQs {
			fmt.Fprintf(w, "\t%d", f.At(row, col))
		}
		fmt.Fprintf(w, "\t%d\t\n", f.RowTotal(row))
	}

	fmt.Fprint(w, "Total")
	for col := range f.RQs {
		fmt.Fprintf(w, "\t%d", f.ColTotal(col))
	}
	fmt.Fprintf(w, "\t%d\t\n", f.Dated)

	_ = w.Flush()
	return buf.String()
}
