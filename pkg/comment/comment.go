// Package comment generates and strips SPDX metadata comment headers.
//
// Every supported file type maps to a [Style]: a fixed comment syntax
// described by an optional start-of-block line, a per-line prefix, and an
// optional end-of-block line. Styles are value types; the full set is
// closed and selected by file extension via [ForPath] or [ForExtension].
//
// # Header Format
//
// A generated header consists of one line per copyright statement, a
// separator line, and one line per license identifier, all wrapped in the
// style's comment syntax:
//
//	// SPDX-FileCopyrightText: 2024 Jane Doe <jane@example.com>
//	//
//	// SPDX-License-Identifier: MIT
//
// [Style.StripHeader] is the inverse operation: it removes a previously
// generated header (tolerating hand-edited variations) while leaving the
// remaining content untouched, so that generate-strip-generate is a fixed
// point.
package comment

import (
	"regexp"
	"strings"
)

// SPDX tag markers recognized in file content.
const (
	// LicenseTag marks a license identifier line.
	LicenseTag = "SPDX-License-Identifier:"

	// FileCopyrightTag marks a copyright statement line.
	FileCopyrightTag = "SPDX-FileCopyrightText:"
)

// CopyrightPatterns are the recognized copyright statement forms, tested
// in order against each line. A line may match more than one pattern; each
// match contributes its first capture group. The patterns stay separate
// rather than combined so that multi-match duplication is preserved.
var CopyrightPatterns = []*regexp.Regexp{
	regexp.MustCompile(`SPDX-(?:File|Snippet)CopyrightText:\s*(.*)`),
	regexp.MustCompile(`Copyright(?:\s+\([cC]\))?\s+(.+)`),
	regexp.MustCompile(`©\s+(.+)`),
}

// CopyrightCaptures returns the statement captured by every copyright
// pattern that matches line, in pattern order. The result is empty if no
// pattern matches.
func CopyrightCaptures(line string) []string {
	var captures []string
	for _, p := range CopyrightPatterns {
		if m := p.FindStringSubmatch(line); m != nil {
			captures = append(captures, m[1])
		}
	}
	return captures
}

// IsCopyright reports whether line matches any copyright pattern.
func IsCopyright(line string) bool {
	for _, p := range CopyrightPatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

// Style describes the comment syntax for one family of file types.
// The zero value is the plain style (no comment syntax at all).
type Style struct {
	Name   string // style identifier (e.g. "line", "hash")
	Start  string // start-of-block line, "" if the style has none
	Prefix string // per-line prefix, may be ""
	End    string // end-of-block line, "" if the style has none
}

// separator returns the line emitted between the copyright and license
// sections: the prefix with trailing whitespace removed.
func (s Style) separator() string {
	return strings.TrimRight(s.Prefix, " \t")
}

// Header renders the metadata header for the given copyright statements
// and license identifiers. The result ends in exactly one trailing
// newline. With no statements at all the result is a single newline.
func (s Style) Header(copyrights, licenses []string) string {
	if len(copyrights) == 0 && len(licenses) == 0 {
		return "\n"
	}

	var lines []string
	if s.Start != "" {
		lines = append(lines, s.Start)
	}
	for _, c := range copyrights {
		lines = append(lines, s.Prefix+FileCopyrightTag+" "+c)
	}
	if len(copyrights) > 0 {
		lines = append(lines, s.separator())
	}
	for _, l := range licenses {
		lines = append(lines, s.Prefix+LicenseTag+" "+l)
	}
	if s.End != "" {
		lines = append(lines, s.End)
	}

	return strings.Join(lines, "\n") + "\n"
}

// StripHeader removes a previously generated metadata header from content.
//
// The scan walks lines from the top until the header block ends. SPDX
// metadata lines and the style's start/end lines are dropped. Separator
// lines are buffered: a later metadata line clears them (they belonged to
// the header), while the first ordinary line flushes them back out to
// preserve spacing. A blank line ending the block drops the buffer
// instead, since the blank itself already separates header from content.
//
// The input's trailing-newline convention is preserved.
func (s Style) StripHeader(content string) string {
	hadNewline := strings.HasSuffix(content, "\n")
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")

	sepTrim := strings.TrimSpace(s.Prefix)
	startTrim := strings.TrimSpace(s.Start)
	endTrim := strings.TrimSpace(s.End)

	var out []string
	var buffered []string
	ended := false

	for _, line := range lines {
		if ended {
			out = append(out, line)
			continue
		}

		if IsCopyright(line) || strings.Contains(line, LicenseTag) {
			buffered = nil
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == sepTrim {
			buffered = append(buffered, line)
			continue
		}
		if (s.Start != "" && trimmed == startTrim) || (s.End != "" && trimmed == endTrim) {
			continue
		}

		if trimmed != "" {
			out = append(out, buffered...)
		}
		buffered = nil
		ended = true
		out = append(out, line)
	}

	result := strings.Join(out, "\n")
	if hadNewline && result != "" {
		result += "\n"
	}
	return result
}
