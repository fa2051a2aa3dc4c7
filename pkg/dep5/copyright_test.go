package dep5

import (
	"reflect"
	"testing"
)

const sampleCopyright = `Format: https://www.debian.org/doc/packaging-manuals/copyright-format/1.0/
Upstream-Name: demo

Files: *
Copyright: 2023 Jane Doe <jane@example.com>
License: MIT

Files: assets/* logo.png
Copyright: 2020 ACME Corp
 2021 ACME Corp
License: CC-BY-4.0

Files: vendor/*
License: Apache-2.0
 Licensed under the Apache License, Version 2.0.
`

func TestInterpret(t *testing.T) {
	cf, err := Parse(sampleCopyright)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	c := Interpret(cf)
	if len(c.Stanzas) != 3 {
		t.Fatalf("got %d Files stanzas, want 3 (header stanza skipped)", len(c.Stanzas))
	}

	want := []FilesStanza{
		{
			Patterns:   []string{"*"},
			Copyrights: []string{"2023 Jane Doe <jane@example.com>"},
			License:    "MIT",
		},
		{
			Patterns:   []string{"assets/*", "logo.png"},
			Copyrights: []string{"2020 ACME Corp", "2021 ACME Corp"},
			License:    "CC-BY-4.0",
		},
		{
			Patterns: []string{"vendor/*"},
			License:  "Apache-2.0",
		},
	}
	if !reflect.DeepEqual(c.Stanzas, want) {
		t.Errorf("Interpret() = %+v, want %+v", c.Stanzas, want)
	}
}

func TestFindFacts(t *testing.T) {
	cf, err := Parse(sampleCopyright)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	c := Interpret(cf)

	tests := []struct {
		name           string
		path           string
		wantLicenses   []string
		wantCopyrights []string
		wantOK         bool
	}{
		{
			name:           "catch-all stanza",
			path:           "src/main.go",
			wantLicenses:   []string{"MIT"},
			wantCopyrights: []string{"2023 Jane Doe <jane@example.com>"},
			wantOK:         true,
		},
		{
			name:           "later stanza wins",
			path:           "assets/icon.svg",
			wantLicenses:   []string{"CC-BY-4.0"},
			wantCopyrights: []string{"2020 ACME Corp", "2021 ACME Corp"},
			wantOK:         true,
		},
		{
			name:           "exact filename pattern",
			path:           "logo.png",
			wantLicenses:   []string{"CC-BY-4.0"},
			wantCopyrights: []string{"2020 ACME Corp", "2021 ACME Corp"},
			wantOK:         true,
		},
		{
			name:         "license-only stanza",
			path:         "vendor/lib/util.js",
			wantLicenses: []string{"Apache-2.0"},
			wantOK:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			licenses, copyrights, ok := c.FindFacts(tt.path)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !reflect.DeepEqual(licenses, tt.wantLicenses) {
				t.Errorf("licenses = %v, want %v", licenses, tt.wantLicenses)
			}
			if !reflect.DeepEqual(copyrights, tt.wantCopyrights) {
				t.Errorf("copyrights = %v, want %v", copyrights, tt.wantCopyrights)
			}
		})
	}
}

func TestFindFactsNoMatch(t *testing.T) {
	c := &CopyrightFile{Stanzas: []FilesStanza{
		{Patterns: []string{"docs/*"}, License: "MIT"},
	}}
	if _, _, ok := c.FindFacts("src/main.go"); ok {
		t.Error("FindFacts should report no match")
	}
}

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"*", "anything/at/all.txt", true},
		{"docs/*", "docs/guide.md", true},
		{"docs/*", "docs/sub/deep.md", true}, // '*' crosses '/'
		{"docs/*", "src/guide.md", false},
		{"*.png", "logo.png", true},
		{"*.png", "assets/logo.png", true},
		{"file?.txt", "file1.txt", true},
		{"file?.txt", "file12.txt", false},
		{"a+b.txt", "a+b.txt", true}, // regex metachars escaped
		{"a+b.txt", "aab.txt", false},
		{"exact.go", "exact.go", true},
		{"exact.go", "exact_go", false},
	}

	for _, tt := range tests {
		if got := matchPattern(tt.pattern, tt.path); got != tt.want {
			t.Errorf("matchPattern(%q, %q) = %v, want %v", tt.pattern, tt.path, got, tt.want)
		}
	}
}
