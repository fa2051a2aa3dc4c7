package dep5

import (
	"regexp"
	"strings"
)

// Locations lists the well-known copyright file paths, relative to the
// project root, in lookup order.
var Locations = []string{".reuse/dep5", "debian/copyright"}

// FilesStanza is one interpreted Files paragraph of a copyright file.
type FilesStanza struct {
	Patterns   []string // whitespace-separated path patterns
	Copyrights []string // one statement per line of the Copyright field
	License    string   // first line of the License field
}

// CopyrightFile is the interpreted form of a DEP-5 copyright file,
// reduced to its Files stanzas.
type CopyrightFile struct {
	Stanzas []FilesStanza
}

// Interpret extracts the Files stanzas from a parsed control file.
// Stanzas without a Files field (the header stanza, standalone License
// stanzas) are skipped. Field values keep their input order.
func Interpret(cf *ControlFile) *CopyrightFile {
	out := &CopyrightFile{}
	for _, s := range cf.Stanzas {
		files, ok := s.Get("Files")
		if !ok {
			continue
		}

		fs := FilesStanza{Patterns: strings.Fields(files)}
		if c, ok := s.Get("Copyright"); ok {
			for _, line := range strings.Split(c, "\n") {
				if line = strings.TrimSpace(line); line != "" {
					fs.Copyrights = append(fs.Copyrights, line)
				}
			}
		}
		if l, ok := s.Get("License"); ok {
			// Only the first line names the license; the rest is
			// the verbatim license text.
			fs.License, _, _ = strings.Cut(l, "\n")
			fs.License = strings.TrimSpace(fs.License)
		}
		out.Stanzas = append(out.Stanzas, fs)
	}
	return out
}

// FindFacts returns the license identifiers and copyright statements that
// apply to relPath, a path relative to the project root using forward
// slashes. Per DEP-5 semantics the last matching Files stanza wins.
func (c *CopyrightFile) FindFacts(relPath string) (licenses, copyrights []string, ok bool) {
	for _, s := range c.Stanzas {
		if !s.Matches(relPath) {
			continue
		}
		ok = true
		licenses = nil
		copyrights = nil
		if s.License != "" {
			licenses = []string{s.License}
		}
		copyrights = append(copyrights, s.Copyrights...)
	}
	return licenses, copyrights, ok
}

// Matches reports whether any of the stanza's patterns matches relPath.
func (s *FilesStanza) Matches(relPath string) bool {
	for _, p := range s.Patterns {
		if matchPattern(p, relPath) {
			return true
		}
	}
	return false
}

// matchPattern implements DEP-5 wildcard matching: '*' matches any number
// of characters including '/', '?' matches exactly one character.
func matchPattern(pattern, path string) bool {
	var sb strings.Builder
	sb.WriteString("^")
	for _, r := range pattern {
		switch r {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")

	re, err := regexp.Compile(sb.String())
	if err != nil {
		return false
	}
	return re.MatchString(path)
}
