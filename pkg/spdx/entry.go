// Package spdx implements the per-file license metadata model.
//
// A [FileEntry] carries the SPDX license identifiers and copyright
// statements that apply to one file. Entries are constructed either from
// known facts (a DEP-5 stanza, CLI flags) or by extracting an existing
// header from file content. The only mutating operation is
// [FileEntry.UpdateFileContents], which rewrites the file's header on
// disk; the entry itself is immutable once built.
package spdx

import (
	"strings"

	"github.com/reuselite/reuselite/pkg/comment"
)

// Markers delimiting a region that the extractor must skip. Nested
// regions are not supported: an inner end marker terminates the outer
// region early. The marker lines themselves stay in the scanned set.
const (
	IgnoreStartTag = "REUSE-IgnoreStart"
	IgnoreEndTag   = "REUSE-IgnoreEnd"
)

// SidecarSuffix is appended to a binary file's path to form its sidecar
// license file.
const SidecarSuffix = ".license"

// FileEntry holds the license metadata for a single file. Duplicate
// identifiers and statements are permitted at this layer; deduplication
// happens in [Combine].
type FileEntry struct {
	Path       string   // file-system path of the target file
	Licenses   []string // SPDX license identifiers, in encounter order
	Copyrights []string // copyright statements, in encounter order
}

// NewFileEntry constructs an entry from known facts.
func NewFileEntry(path string, licenses, copyrights []string) *FileEntry {
	return &FileEntry{Path: path, Licenses: licenses, Copyrights: copyrights}
}

// ReadFromFile extracts license metadata from the file at path.
// A missing or unreadable file, or one without any recognizable
// metadata, yields nil. Malformed content never fails; unmatched lines
// are simply not metadata.
func ReadFromFile(fsys FileSystem, path string) *FileEntry {
	if !fsys.Exists(path) {
		return nil
	}
	content, err := fsys.ReadText(path)
	if err != nil {
		return nil
	}
	return Extract(path, content)
}

// Extract scans content for SPDX metadata and returns an entry for path,
// or nil if the content has none.
//
// Content is split into physical lines on CR and LF, discarding empty
// entries. Lines inside an ignore region are skipped. A line containing
// the license identifier marker contributes the trimmed text after the
// marker; otherwise the line is tested against every copyright pattern,
// contributing one capture per matching pattern.
func Extract(path, content string) *FileEntry {
	lines := strings.FieldsFunc(content, func(r rune) bool {
		return r == '\n' || r == '\r'
	})

	var licenses, copyrights []string
	for _, line := range filterIgnored(lines) {
		if strings.Contains(line, comment.LicenseTag) {
			_, after, _ := strings.Cut(line, comment.LicenseTag)
			licenses = append(licenses, strings.TrimSpace(after))
			continue
		}
		copyrights = append(copyrights, comment.CopyrightCaptures(line)...)
	}

	if len(licenses) == 0 && len(copyrights) == 0 {
		return nil
	}
	return &FileEntry{Path: path, Licenses: licenses, Copyrights: copyrights}
}

// filterIgnored drops the lines between an ignore-start and the next
// ignore-end marker. The region is exclusive of both marker lines.
func filterIgnored(lines []string) []string {
	var out []string
	ignoring := false
	for _, line := range lines {
		if ignoring {
			if strings.Contains(line, IgnoreEndTag) {
				ignoring = false
				out = append(out, line)
			}
			continue
		}
		if strings.Contains(line, IgnoreStartTag) {
			ignoring = true
		}
		out = append(out, line)
	}
	return out
}
