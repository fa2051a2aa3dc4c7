// Package project resolves license metadata for whole source trees.
//
// A scan walks the tree once and resolves each file's licensing facts
// from three places, in order of precedence:
//
//  1. A DEP-5 copyright file (.reuse/dep5 or debian/copyright)
//  2. A .license sidecar next to the file
//  3. An SPDX comment header embedded in the file itself
//
// The first source that yields any facts wins; sources are not merged.
package project

import (
	"context"
	"encoding/json"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/reuselite/reuselite/pkg/cache"
	"github.com/reuselite/reuselite/pkg/config"
	"github.com/reuselite/reuselite/pkg/dep5"
	"github.com/reuselite/reuselite/pkg/observability"
	"github.com/reuselite/reuselite/pkg/spdx"
)

// Source identifies where a file's license metadata was found.
type Source string

const (
	SourceDEP5    Source = "dep5"
	SourceSidecar Source = "sidecar"
	SourceHeader  Source = "header"
	SourceNone    Source = "none"
)

// FileInfo holds the resolved metadata for one scanned file.
type FileInfo struct {
	Path       string   `json:"path"` // slash-separated, relative to the scan root
	Licenses   []string `json:"licenses,omitempty"`
	Copyrights []string `json:"copyrights,omitempty"`
	Source     Source   `json:"source"`
}

// Compliant reports whether the file carries both a license identifier
// and a copyright statement.
func (f FileInfo) Compliant() bool {
	return len(f.Licenses) > 0 && len(f.Copyrights) > 0
}

// Report is the result of scanning a tree.
type Report struct {
	Root     string
	Files    []FileInfo
	Duration time.Duration
}

// Missing returns the files that lack a license, a copyright, or both.
func (r *Report) Missing() []FileInfo {
	var out []FileInfo
	for _, f := range r.Files {
		if !f.Compliant() {
			out = append(out, f)
		}
	}
	return out
}

// Compliant reports whether every scanned file carries full metadata.
func (r *Report) Compliant() bool {
	return len(r.Missing()) == 0
}

// Entries converts the report into file entries with paths joined back
// onto the scan root, suitable for combining.
func (r *Report) Entries() []*spdx.FileEntry {
	entries := make([]*spdx.FileEntry, 0, len(r.Files))
	for _, f := range r.Files {
		entries = append(entries, spdx.NewFileEntry(
			filepath.Join(r.Root, filepath.FromSlash(f.Path)), f.Licenses, f.Copyrights))
	}
	return entries
}

// Options configures scan behavior.
type Options struct {
	Config *config.Config       // Project config (default: zero config)
	Cache  cache.Cache          // Per-file memoization (default: none)
	FS     spdx.FileSystem      // File access (default: the OS)
	Logger func(string, ...any) // Progress/error callback (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Config == nil {
		opts.Config = &config.Config{}
	}
	if opts.Cache == nil {
		opts.Cache = cache.NewNullCache()
	}
	if opts.FS == nil {
		opts.FS = spdx.NewOSFileSystem()
	}
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// Scanner resolves metadata for every file under a root directory.
type Scanner struct {
	opts Options
}

// NewScanner creates a scanner with the given options.
func NewScanner(opts Options) *Scanner {
	return &Scanner{opts: opts.WithDefaults()}
}

// skippedDirs are never descended into during a scan.
var skippedDirs = map[string]bool{
	".git":     true,
	"LICENSES": true,
}

// Scan walks root and resolves metadata for every regular file. Sidecar
// files, DEP-5 copyright files and the project config file describe other
// files and are not themselves reported.
func (s *Scanner) Scan(ctx context.Context, root string) (*Report, error) {
	start := time.Now()
	hooks := observability.Scan()
	hooks.OnScanStart(ctx, root)

	cf, dep5Hash, err := s.loadCopyright(root)
	if err != nil {
		hooks.OnScanDone(ctx, root, 0, time.Since(start), err)
		return nil, err
	}

	var files []FileInfo
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if d == nil {
				return walkErr
			}
			s.opts.Logger("skipping %s: %v", path, walkErr)
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		slash := filepath.ToSlash(rel)
		if d.IsDir() {
			if path != root && (skippedDirs[d.Name()] || s.opts.Config.Excluded(slash)) {
				return filepath.SkipDir
			}
			return nil
		}
		if !s.scannable(slash) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		fileStart := time.Now()
		hooks.OnFileStart(ctx, slash)
		info := s.resolve(ctx, root, slash, cf, dep5Hash)
		hooks.OnFileDone(ctx, slash, info.Source != SourceNone, time.Since(fileStart), nil)
		files = append(files, info)
		return nil
	})
	if err != nil {
		hooks.OnScanDone(ctx, root, len(files), time.Since(start), err)
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	report := &Report{Root: root, Files: files, Duration: time.Since(start)}
	hooks.OnScanDone(ctx, root, len(files), report.Duration, nil)
	return report, nil
}

// scannable reports whether the file at the slash-separated relative path
// should be resolved and reported.
func (s *Scanner) scannable(slash string) bool {
	if strings.HasSuffix(slash, spdx.SidecarSuffix) {
		return false
	}
	if slash == config.FileName {
		return false
	}
	for _, loc := range dep5.Locations {
		if slash == loc {
			return false
		}
	}
	return !s.opts.Config.Excluded(slash)
}

// loadCopyright reads and interprets the first DEP-5 copyright file found
// under root. The returned hash covers its raw content so cached per-file
// results are invalidated when the copyright file changes.
func (s *Scanner) loadCopyright(root string) (*dep5.CopyrightFile, string, error) {
	for _, loc := range dep5.Locations {
		path := filepath.Join(root, filepath.FromSlash(loc))
		if !s.opts.FS.Exists(path) {
			continue
		}
		text, err := s.opts.FS.ReadText(path)
		if err != nil {
			return nil, "", err
		}
		control, err := dep5.Parse(text)
		if err != nil {
			return nil, "", err
		}
		s.opts.Logger("using copyright file %s", loc)
		return dep5.Interpret(control), cache.Hash([]byte(text)), nil
	}
	return nil, "", nil
}

// resolve determines the metadata for one file, consulting the cache first.
func (s *Scanner) resolve(ctx context.Context, root, slash string, cf *dep5.CopyrightFile, dep5Hash string) FileInfo {
	path := filepath.Join(root, filepath.FromSlash(slash))

	key := ""
	if data, err := s.opts.FS.ReadBytes(path); err == nil {
		key = cache.EntryKey(slash, cache.Hash(data)+dep5Hash)
		if cached, ok, err := s.opts.Cache.Get(ctx, key); err == nil && ok {
			var info FileInfo
			if err := json.Unmarshal(cached, &info); err == nil {
				observability.Cache().OnCacheHit(ctx, "entry")
				return info
			}
		}
		observability.Cache().OnCacheMiss(ctx, "entry")
	}

	info := FileInfo{Path: slash, Source: SourceNone}
	switch {
	case cf != nil && s.applyDEP5(cf, slash, &info):
	case s.applyEntry(spdx.ReadFromFile(s.opts.FS, path+spdx.SidecarSuffix), SourceSidecar, &info):
	case s.applyEntry(spdx.ReadFromFile(s.opts.FS, path), SourceHeader, &info):
	}

	if key != "" {
		if data, err := json.Marshal(info); err == nil {
			if err := s.opts.Cache.Set(ctx, key, data); err == nil {
				observability.Cache().OnCacheSet(ctx, "entry", len(data))
			}
		}
	}
	return info
}

func (s *Scanner) applyDEP5(cf *dep5.CopyrightFile, slash string, info *FileInfo) bool {
	licenses, copyrights, ok := cf.FindFacts(slash)
	if !ok {
		return false
	}
	info.Licenses = licenses
	info.Copyrights = copyrights
	info.Source = SourceDEP5
	return true
}

func (s *Scanner) applyEntry(entry *spdx.FileEntry, source Source, info *FileInfo) bool {
	if entry == nil {
		return false
	}
	info.Licenses = entry.Licenses
	info.Copyrights = entry.Copyrights
	info.Source = source
	return true
}
