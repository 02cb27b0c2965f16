package util

import (
	"fmt"
	"os"
)

// EnsureDir creates the output directory tree if it is absent. Figures,
// summaries and manifests all land under directories made here.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", path, err)
	}
	return nil
}
