// Package dep5 parses Debian machine-readable copyright files (DEP-5).
//
// REUSE repurposes the DEP-5 format to declare licensing for files that
// cannot hold an embedded header. The package is split in two layers: a
// generic Debian-control stanza parser ([Parse]) and an interpretation
// layer ([Interpret]) that maps Files stanzas to per-path license and
// copyright facts.
package dep5

import (
	"strings"

	"github.com/reuselite/reuselite/pkg/errors"
)

// Field is a single key/value pair within a stanza. Keys are not required
// to be unique; order mirrors the input.
type Field struct {
	Key   string
	Value string
}

// Stanza is one blank-line-delimited section of a control file: an
// ordered sequence of fields.
type Stanza struct {
	Fields []Field
}

// Get returns the value of the first field with the given key.
func (s *Stanza) Get(key string) (string, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// ControlFile is an ordered sequence of stanzas. It is constructed once
// by [Parse] and read-only afterward.
type ControlFile struct {
	Stanzas []Stanza
}

// Parse reads Debian-control-format text into ordered stanzas.
//
// Lines starting with '#' are comments and are skipped entirely; they
// never terminate a stanza. A blank line ends the current stanza. A line
// with leading whitespace continues the previous field: its trimmed text
// is appended to that field's value, joined by a newline. Any other line
// must contain a ':' separating key from value.
//
// Parse fails with an INVALID_FORMAT error on a field line without ':',
// or on a continuation line that has no field to continue.
func Parse(text string) (*ControlFile, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	cf := &ControlFile{}
	var current *Stanza

	for i, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "#") {
			continue
		}

		if strings.TrimSpace(line) == "" {
			if current != nil {
				cf.Stanzas = append(cf.Stanzas, *current)
				current = nil
			}
			continue
		}

		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			if current == nil || len(current.Fields) == 0 {
				return nil, errors.New(errors.ErrCodeInvalidFormat,
					"line %d: continuation line before any field", i+1)
			}
			last := &current.Fields[len(current.Fields)-1]
			last.Value += "\n" + strings.TrimSpace(line)
			continue
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"line %d: missing ':' separator", i+1)
		}
		if current == nil {
			current = &Stanza{}
		}
		current.Fields = append(current.Fields, Field{Key: key, Value: strings.TrimSpace(value)})
	}

	if current != nil {
		cf.Stanzas = append(cf.Stanzas, *current)
	}

	return cf, nil
}
