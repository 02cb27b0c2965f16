package matrix

import (
	"testing"

	"litmap/internal/refs"
	"litmap/internal/util"

	"github.com/stretchr/testify/require"
)

func rec(rq int, article string) refs.Record {
	return refs.Record{RQ: rq, Article: article}
}

func dated(rq int, article string, year int) refs.Record {
	return refs.Record{RQ: rq, Article: article, Year: &year}
}

func TestBuildPresenceTwoLists(t *testing.T) {
	// rq1 = [A, B], rq2 = [B]
	p, err := BuildPresence([]refs.Record{rec(1, "A"), rec(1, "B"), rec(2, "B")})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, p.RQs)
	// B appears in two lists so it ranks first (bottom of the figure).
	require.Equal(t, []string{"B", "A"}, p.Articles)
	require.Equal(t, []int{2, 1}, p.Totals)
	require.True(t, p.At(0, 0))  // B in RQ1
	require.True(t, p.At(0, 1))  // B in RQ2
	require.True(t, p.At(1, 0))  // A in RQ1
	require.False(t, p.At(1, 1)) // A not in RQ2
}

func TestBuildPresenceDuplicatesCollapse(t *testing.T) {
	once, err := BuildPresence([]refs.Record{rec(1, "Article_A")})
	require.NoError(t, err)
	twice, err := BuildPresence([]refs.Record{rec(1, "Article_A"), rec(1, "Article_A")})
	require.NoError(t, err)
	require.Equal(t, once, twice)
}

func TestBuildPresenceCaseStaysDistinct(t *testing.T) {
	p, err := BuildPresence([]refs.Record{rec(1, "article a"), rec(1, "Article A")})
	require.NoError(t, err)
	require.Len(t, p.Articles, 2)
}

func TestBuildPresenceNumericColumnOrder(t *testing.T) {
	p, err := BuildPresence([]refs.Record{rec(10, "A"), rec(2, "A")})
	require.NoError(t, err)
	require.Equal(t, []int{2, 10}, p.RQs)
	require.Equal(t, "RQ2", RQLabel(p.RQs[0]))
}

func TestBuildPresenceEmpty(t *testing.T) {
	_, err := BuildPresence(nil)
	require.ErrorIs(t, err, util.ErrNoRecords)
}

func TestBuildFrequencyCounts(t *testing.T) {
	// rq1 = [Paper X 2020, Paper Y 2020, Paper Z 2021]
	f, err := BuildFrequency([]refs.Record{
		dated(1, "Paper X 2020", 2020),
		dated(1, "Paper Y 2020", 2020),
		dated(1, "Paper Z 2021", 2021),
	})
	require.NoError(t, err)
	require.Equal(t, []int{2020, 2021}, f.Years)
	require.Equal(t, []int{1}, f.RQs)
	require.Equal(t, 2, f.At(0, 0))
	require.Equal(t, 1, f.At(1, 0))
	// single RQ, both years populated: the smallest cell is 1, not 0
	require.Equal(t, 1, f.Min)
	require.Equal(t, 2, f.Max)
}

func TestBuildFrequencyZeroFillsGaps(t *testing.T) {
	f, err := BuildFrequency([]refs.Record{
		dated(1, "a 2018", 2018),
		dated(2, "b 2021", 2021),
	})
	require.NoError(t, err)
	require.Equal(t, []int{2018, 2019, 2020, 2021}, f.Years)
	for row := range f.Years {
		for col := range f.RQs {
			require.GreaterOrEqual(t, f.At(row, col), 0)
		}
	}
	require.Equal(t, 0, f.At(1, 0)) // 2019 exists with an explicit zero
	require.Equal(t, 0, f.At(0, 1)) // rq2 had nothing in 2018
	require.Equal(t, 0, f.Min)      // zero-filled cells anchor the scale
	require.Equal(t, 1, f.Max)
}

func TestBuildFrequencyCellSumMatchesDated(t *testing.T) {
	f, err := BuildFrequency([]refs.Record{
		dated(1, "a 2020", 2020),
		dated(1, "a 2020", 2020), // duplicates increment, unlike presence
		dated(2, "b 2022", 2022),
		rec(2, "no year here"),
	})
	require.NoError(t, err)
	sum := 0
	for _, n := range f.Cells {
		sum += n
	}
	require.Equal(t, f.Dated, sum)
	require.Equal(t, 3, f.Dated)
	require.Equal(t, 1, f.Skipped)
}

func TestBuildFrequencyTotals(t *testing.T) {
	f, err := BuildFrequency([]refs.Record{
		dated(1, "a 2020", 2020),
		dated(2, "b 2020", 2020),
		dated(2, "c 2021", 2021),
	})
	require.NoError(t, err)
	require.Equal(t, 2, f.RowTotal(0))
	require.Equal(t, 1, f.RowTotal(1))
	require.Equal(t, 1, f.ColTotal(0))
	require.Equal(t, 2, f.ColTotal(1))
}

func TestBuildFrequencyNoYears(t *testing.T) {
	_, err := BuildFrequency([]refs.Record{rec(1, "undated reference")})
	require.ErrorIs(t, err, util.ErrNoYears)
}
