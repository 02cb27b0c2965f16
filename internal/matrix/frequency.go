package matrix

import (
	"litmap/internal/refs"
	"litmap/internal/util"
)

// Frequency is the year × research-question count table. Years is contiguous
// from the earliest to the latest observed year, so every (year, RQ) pair has
// an explicit cell even when its count is zero. Min and Max bound the color
// scale.
type Frequency struct {
	Years []int
	RQs   []int
	Cells []int

	Min, Max int
	Dated    int // records that contributed a count
	Skipped  int // records excluded for lack of a year
}

// At returns the count for Years[row] × RQs[col].
func (f *Frequency) At(row, col int) int {
	return f.Cells[row*len(f.RQs)+col]
}

// RowTotal sums one year across all research questions.
func (f *Frequency) RowTotal(row int) int {
	total := 0
	for c := range f.RQs {
		total += f.At(row, c)
	}
	return total
}

// ColTotal sums one research question across all years.
func (f *Frequency) ColTotal(col int) int {
	total := 0
	for r := range f.Years {
		total += f.At(r, col)
	}
	return total
}

// BuildFrequency pivots records into a completed year grid. Unlike presence,
// duplicate lines increment the count. Records without a year are skipped;
// if none carry a year the grid cannot be built and the run halts.
func BuildFrequency(records []refs.Record) (*Frequency, error) {
	if len(records) == 0 {
		return nil, util.ErrNoRecords
	}
	type cell struct{ year, rq int }
	counts := map[cell]int{}
	f := &Frequency{RQs: sortedRQs(records)}
	minYear, maxYear := 0, 0
	for _, r := range records {
		if r.Year == nil {
			f.Skipped++
			continue
		}
		y := *r.Year
		if f.Dated == 0 || y < minYear {
			minYear = y
		}
		if f.Dated == 0 || y > maxYear {
			maxYear = y
		}
		f.Dated++
		counts[cell{year: y, rq: r.RQ}]++
	}
	if f.Dated == 0 {
		return nil, util.ErrNoYears
	}

	f.Years = make([]int, 0, maxYear-minYear+1)
	for y := minYear; y <= maxYear; y++ {
		f.Years = append(f.Years, y)
	}
	f.Cells = make([]int, len(f.Years)*len(f.RQs))
	f.Min, f.Max = -1, 0
	for row, y := range f.Years {
		for col, rq := range f.RQs {
			n := counts[cell{year: y, rq: rq}]
			f.Cells[row*len(f.RQs)+col] = n
			if f.Min < 0 || n < f.Min {
				f.Min = n
			}
			if n > f.Max {
				f.Max = n
			}
		}
	}
	return f, nil
}
