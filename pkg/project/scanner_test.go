package project

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/reuselite/reuselite/pkg/cache"
	"github.com/reuselite/reuselite/pkg/config"
	"github.com/reuselite/reuselite/pkg/observability"
)

// writeTree creates the given files under a fresh temp root, keyed by
// slash-separated relative path.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	return root
}

const sampleDEP5 = `Format: https://www.debian.org/doc/packaging-manuals/copyright-format/1.0/
Upstream-Name: demo

Files: docs/*
Copyright: 2026 Docs Team
License: CC-BY-4.0
`

func TestScanResolvesSources(t *testing.T) {
	root := writeTree(t, map[string]string{
		".reuse/dep5":      sampleDEP5,
		"docs/guide.md":    "# Guide\n",
		"src/main.go":      "// SPDX-FileCopyrightText: 2026 Jane Doe\n//\n// SPDX-License-Identifier: MIT\n\npackage main\n",
		"logo.png":         "\x89PNG\x00data",
		"logo.png.license": "SPDX-FileCopyrightText: 2026 Jane Doe\n\nSPDX-License-Identifier: CC0-1.0\n",
		"orphan.txt":       "no metadata here\n",
		config.FileName:    "",
		"LICENSES/MIT.txt": "MIT License ...\n",
		".git/config":      "[core]\n",
	})

	report, err := NewScanner(Options{}).Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	want := map[string]Source{
		"docs/guide.md": SourceDEP5,
		"src/main.go":   SourceHeader,
		"logo.png":      SourceSidecar,
		"orphan.txt":    SourceNone,
	}
	if len(report.Files) != len(want) {
		t.Fatalf("scanned %d files, want %d: %+v", len(report.Files), len(want), report.Files)
	}
	for _, f := range report.Files {
		if f.Source != want[f.Path] {
			t.Errorf("%s: source = %q, want %q", f.Path, f.Source, want[f.Path])
		}
	}

	if report.Compliant() {
		t.Error("report should not be compliant with orphan.txt present")
	}
	missing := report.Missing()
	if len(missing) != 1 || missing[0].Path != "orphan.txt" {
		t.Errorf("missing = %+v", missing)
	}
}

func TestScanPrecedence(t *testing.T) {
	// docs/guide.md matches the DEP-5 stanza and also carries a header;
	// the copyright file wins.
	root := writeTree(t, map[string]string{
		".reuse/dep5":   sampleDEP5,
		"docs/guide.md": "<!--\nSPDX-License-Identifier: MIT\n-->\n# Guide\n",
	})

	report, err := NewScanner(Options{}).Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(report.Files) != 1 {
		t.Fatalf("files = %+v", report.Files)
	}
	f := report.Files[0]
	if f.Source != SourceDEP5 {
		t.Errorf("source = %q, want dep5", f.Source)
	}
	if !reflect.DeepEqual(f.Licenses, []string{"CC-BY-4.0"}) {
		t.Errorf("licenses = %v", f.Licenses)
	}
}

func TestScanExcludes(t *testing.T) {
	root := writeTree(t, map[string]string{
		"main.go":        "package main\n",
		"vendor/dep.go":  "package dep\n",
		"api.gen.go":     "package main\n",
		"notes/draft.md": "draft\n",
	})
	cfg := &config.Config{Lint: config.LintConfig{Exclude: []string{"vendor", "*.gen.go"}}}

	report, err := NewScanner(Options{Config: cfg}).Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	got := make([]string, 0, len(report.Files))
	for _, f := range report.Files {
		got = append(got, f.Path)
	}
	want := []string{"main.go", "notes/draft.md"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("scanned = %v, want %v", got, want)
	}
}

func TestScanInvalidCopyrightFile(t *testing.T) {
	root := writeTree(t, map[string]string{
		".reuse/dep5": " stray continuation\n",
		"main.go":     "package main\n",
	})
	if _, err := NewScanner(Options{}).Scan(context.Background(), root); err == nil {
		t.Fatal("expected error for malformed copyright file")
	}
}

type countingCacheHooks struct {
	hits, misses, sets atomic.Int64
}

func (h *countingCacheHooks) OnCacheHit(context.Context, string)      { h.hits.Add(1) }
func (h *countingCacheHooks) OnCacheMiss(context.Context, string)     { h.misses.Add(1) }
func (h *countingCacheHooks) OnCacheSet(context.Context, string, int) { h.sets.Add(1) }

func TestScanUsesCache(t *testing.T) {
	hooks := &countingCacheHooks{}
	observability.SetCacheHooks(hooks)
	t.Cleanup(observability.Reset)

	root := writeTree(t, map[string]string{
		"a.go": "// SPDX-License-Identifier: MIT\npackage a\n",
		"b.go": "package b\n",
	})
	store, err := cache.NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("cache: %v", err)
	}
	scanner := NewScanner(Options{Cache: store})

	first, err := scanner.Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("first scan: %v", err)
	}
	if hooks.misses.Load() != 2 || hooks.sets.Load() != 2 {
		t.Errorf("first scan: misses=%d sets=%d", hooks.misses.Load(), hooks.sets.Load())
	}

	second, err := scanner.Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("second scan: %v", err)
	}
	if hooks.hits.Load() != 2 {
		t.Errorf("second scan: hits=%d, want 2", hooks.hits.Load())
	}
	if !reflect.DeepEqual(first.Files, second.Files) {
		t.Errorf("cached scan diverged:\nfirst:  %+v\nsecond: %+v", first.Files, second.Files)
	}
}

func TestEntries(t *testing.T) {
	report := &Report{
		Root: "/repo",
		Files: []FileInfo{
			{Path: "src/main.go", Licenses: []string{"MIT"}, Copyrights: []string{"2026 Jane Doe"}, Source: SourceHeader},
		},
	}
	entries := report.Entries()
	if len(entries) != 1 {
		t.Fatalf("entries = %+v", entries)
	}
	if entries[0].Path != filepath.Join("/repo", "src", "main.go") {
		t.Errorf("path = %q", entries[0].Path)
	}
}
