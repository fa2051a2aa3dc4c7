package spdx

import (
	"path/filepath"
	"sort"
)

// CombinedEntry is the deduplicated union of several entries' metadata.
// It is derived and read-only.
type CombinedEntry struct {
	Licenses   []string
	Copyrights []string
}

// Combine merges entries into a single deduplicated view. Entries are
// ordered by their path made relative to baseDir (lexical string order),
// then each license identifier and copyright statement is admitted the
// first time it is seen. First-seen order wins globally.
func Combine(baseDir string, entries []*FileEntry) *CombinedEntry {
	sorted := make([]*FileEntry, len(entries))
	copy(sorted, entries)

	rel := func(path string) string {
		if r, err := filepath.Rel(baseDir, path); err == nil {
			return r
		}
		return path
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return rel(sorted[i].Path) < rel(sorted[j].Path)
	})

	combined := &CombinedEntry{}
	seenLicense := make(map[string]bool)
	seenCopyright := make(map[string]bool)
	for _, e := range sorted {
		for _, l := range e.Licenses {
			if !seenLicense[l] {
				seenLicense[l] = true
				combined.Licenses = append(combined.Licenses, l)
			}
		}
		for _, c := range e.Copyrights {
			if !seenCopyright[c] {
				seenCopyright[c] = true
				combined.Copyrights = append(combined.Copyrights, c)
			}
		}
	}
	return combined
}
