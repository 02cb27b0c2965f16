package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"litmap/internal/util"
)

// Source is one discovered reference list: the file path and the research
// question id taken from its name.
type Source struct {
	Path string
	RQ   int
}

var namePattern = regexp.MustCompile(`(?i)^rq(\d+)\.txt$`)

// Discover lists the rq<digits>.txt files in dir, sorted by numeric id so
// RQ2 always precedes RQ10. Two files mapping to the same id is an error:
// ids must be unique per file.
func Discover(dir string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir %s: %w", dir, err)
	}
	byID := map[int]string{}
	sources := make([]Source, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := namePattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		id, err := strconv.Atoi(m[1])
		if err != nil {
			id = 0
		}
		if prev, ok := byID[id]; ok {
			return nil, fmt.Errorf("research question %d claimed by both %s and %s", id, prev, e.Name())
		}
		byID[id] = e.Name()
		sources = append(sources, Source{Path: filepath.Join(dir, e.Name()), RQ: id})
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w in %s", util.ErrNoInputFiles, dir)
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i].RQ < sources[j].RQ })
	return sources, nil
}
