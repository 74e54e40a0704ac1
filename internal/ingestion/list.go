package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jonathan/resume-ranker/internal/types"
)

// Reasons recorded for directory entries that are not scored.
const (
	SkipReasonReference   = "reference document"
	SkipReasonUnsupported = "unsupported file format"
	SkipReasonNotRegular  = "not a regular file"
)

// ListCandidates returns the sorted paths of candidate files directly inside
// dir, skipping the reference file, non-regular entries and unsupported
// extensions. Skipped entries are returned for diagnostics.
func ListCandidates(dir, referencePath string) ([]string, []types.SkippedFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read candidates directory %s: %w", dir, err)
	}

	refBase := filepath.Base(referencePath)
	refAbs, _ := filepath.Abs(referencePath)

	var (
		paths   []string
		skipped []types.SkippedFile
	)
	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if name == refBase || sameFile(path, refAbs) {
			skipped = append(skipped, types.SkippedFile{SourceName: name, Reason: SkipReasonReference})
			continue
		}
		if !entry.Type().IsRegular() {
			if info, err := os.Stat(path); err != nil || !info.Mode().IsRegular() {
				skipped = append(skipped, types.SkippedFile{SourceName: name, Reason: SkipReasonNotRegular})
				continue
			}
		}
		if !IsSupported(name) {
			skipped = append(skipped, types.SkippedFile{SourceName: name, Reason: SkipReasonUnsupported})
			continue
		}
		paths = append(paths, path)
	}

	sort.Strings(paths)
	return paths, skipped, nil
}

func sameFile(path, refAbs string) bool {
	if refAbs == "" {
		return false
	}
	abs, err := filepath.Abs(path)
	return err == nil && abs == refAbs
}
