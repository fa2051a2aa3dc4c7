package spdx

import (
	"bytes"
	"strings"

	"github.com/reuselite/reuselite/pkg/comment"
	"github.com/reuselite/reuselite/pkg/errors"
)

// UpdateFileContents rewrites the header of the file at e.Path from the
// entry's metadata, preserving the rest of the content. The comment
// style is resolved from the file extension unless override is non-nil.
//
// A file containing a zero byte is treated as binary: its content is
// left untouched and the header is written to a sidecar file at
// <path>.license using the plain style, replacing any previous sidecar
// header. Updating a .license file that is itself binary is an
// INVALID_REQUEST error.
//
// The write is a plain read-modify-write with no atomic-replace
// guarantee; callers needing atomicity should write to a temporary file
// and rename.
func (e *FileEntry) UpdateFileContents(fsys FileSystem, override *comment.Style) error {
	style := comment.ForPath(e.Path)
	if override != nil {
		style = *override
	}

	if fsys.Exists(e.Path) {
		raw, err := fsys.ReadBytes(e.Path)
		if err != nil {
			return err
		}
		if bytes.IndexByte(raw, 0) >= 0 {
			if strings.HasSuffix(e.Path, SidecarSuffix) {
				return errors.New(errors.ErrCodeInvalidRequest,
					"%s is binary; cannot create a sidecar for a sidecar", e.Path)
			}
			return e.writeHeader(fsys, e.Path+SidecarSuffix, comment.Plain)
		}
	}

	return e.writeHeader(fsys, e.Path, style)
}

// writeHeader writes the generated header to path, prepended to the
// existing content with any prior header stripped. A missing target gets
// the header alone.
func (e *FileEntry) writeHeader(fsys FileSystem, path string, style comment.Style) error {
	content := style.Header(e.Copyrights, e.Licenses)
	if fsys.Exists(path) {
		existing, err := fsys.ReadText(path)
		if err != nil {
			return err
		}
		content += style.StripHeader(existing)
	}
	return fsys.WriteText(path, content)
}
