package matrix

import (
	"sort"

	"litmap/internal/refs"
	"litmap/internal/util"
)

// Presence is the article × research-question table. Articles[0] is the most
// referenced article and is drawn at the bottom of the figure; RQs ascend
// numerically. Cells is row-major.
type Presence struct {
	Articles []string
	RQs      []int
	Cells    []bool
	Totals   []int // per-article distinct-RQ counts, aligned with Articles
}

// At reports whether Articles[row] appears in the RQs[col] list.
func (p *Presence) At(row, col int) bool {
	return p.Cells[row*len(p.RQs)+col]
}

// BuildPresence pivots records into a presence table. Identical lines within
// one file collapse to a single entry; an article's total is the number of
// research questions whose list mentions it.
func BuildPresence(records []refs.Record) (*Presence, error) {
	if len(records) == 0 {
		return nil, util.ErrNoRecords
	}
	byArticle := map[string]map[int]struct{}{}
	for _, r := range records {
		set, ok := byArticle[r.Article]
		if !ok {
			set = map[int]struct{}{}
			byArticle[r.Article] = set
		}
		set[r.RQ] = struct{}{}
	}

	type ranked struct {
		article string
		total   int
	}
	list := make([]ranked, 0, len(byArticle))
	for a, set := range byArticle {
		list = append(list, ranked{article: a, total: len(set)})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].total != list[j].total {
			return list[i].total > list[j].total
		}
		return list[i].article < list[j].article
	})

	rqs := sortedRQs(records)
	col := map[int]int{}
	for i, id := range rqs {
		col[id] = i
	}

	p := &Presence{
		Articles: make([]string, len(list)),
		RQs:      rqs,
		Cells:    make([]bool, len(list)*len(rqs)),
		Totals:   make([]int, len(list)),
	}
	for row, r := range list {
		p.Articles[row] = r.article
		p.Totals[row] = r.total
		for id := range byArticle[r.article] {
			p.Cells[row*len(rqs)+col[id]] = true
		}
	}
	return p, nil
}
