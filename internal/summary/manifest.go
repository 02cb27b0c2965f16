package summary

import (
	"time"

	"litmap/internal/matrix"
	"litmap/internal/scan"
	"litmap/internal/util"

	"github.com/google/uuid"
)

type InputFile struct {
	Path   string `json:"path"`
	RQ     int    `json:"rq"`
	SHA256 string `json:"sha256"`
}

// Manifest records one rendering run: which lists went in, what came out.
// It is an output artifact, not state; nothing reads it back.
type Manifest struct {
	RunID     string      `json:"run_id"`
	CreatedAt time.Time   `json:"created_at"`
	Inputs    []InputFile `json:"inputs"`
	Records   int         `json:"records"`
	Dated     int         `json:"dated_records"`
	Skipped   int         `json:"skipped_records"`
	YearMin   int         `json:"year_min"`
	YearMax   int         `json:"year_max"`
	Outputs   []string    `json:"outputs"`
}

// BuildManifest digests the input files and assembles the run record.
func BuildManifest(sources []scan.Source, f *matrix.Frequency, outputs []string) (Manifest, error) {
	m := Manifest{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Records:   f.Dated + f.Skipped,
		Dated:     f.Dated,
		Skipped:   f.Skipped,
		Outputs:   outputs,
	}
	if len(f.Years) > 0 {
		m.YearMin = f.Years[0]
		m.YearMax = f.Years[len(f.Years)-1]
	}
	for _, src := range sources {
		digest, err := util.SHA256HexFile(src.Path)
		if err != nil {
			return Manifest{}, err
		}
		m.Inputs = append(m.Inputs, InputFile{Path: src.Path, RQ: src.RQ, SHA256: digest})
	}
	return m, nil
}

// Write stores the manifest as indented JSON, atomically.
func (m Manifest) Write(path string) error {
	return util.WriteJSONAtomic(path, m)
}
