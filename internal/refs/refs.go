package refs

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"litmap/internal/scan"
	"litmap/internal/util"
)

// Record is one parsed reference line. Year is nil when the line carries no
// trailing publication year; such records still count for presence matrices
// but are excluded from year aggregation.
type Record struct {
	RQ      int
	Article string
	Year    *int
}

// A trailing 4-digit token in 1900-2099, not preceded by another digit so
// "vol. 12020" is not misread as a year.
var yearPattern = regexp.MustCompile(`(?:^|[^0-9])((?:19|20)[0-9]{2})$`)

// ParseFile reads one reference list. Lines are trimmed, empties dropped,
// and the whole trimmed line is the article identifier. Casing and interior
// whitespace are preserved, so references differing only there stay distinct.
func ParseFile(src scan.Source) ([]Record, error) {
	f, err := os.Open(src.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", src.Path, err)
	}
	defer f.Close()

	var records []Record
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		// trim only: identity is the verbatim trimmed line, cleanup for
		// axis labels happens at display time
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		rec := Record{RQ: src.RQ, Article: line}
		if m := yearPattern.FindStringSubmatch(line); m != nil {
			if y, err := strconv.Atoi(m[1]); err == nil {
				rec.Year = &y
			}
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", src.Path, err)
	}
	return records, nil
}

// ParseAll parses every discovered list in order. Zero records across all
// files is fatal for both heatmap variants.
func ParseAll(sources []scan.Source) ([]Record, error) {
	var records []Record
	for _, src := range sources {
		rs, err := ParseFile(src)
		if err != nil {
			return nil, err
		}
		records = append(records, rs...)
	}
	if len(records) == 0 {
		return nil, util.ErrNoRecords
	}
	return records, nil
}
