// Package config loads per-project settings from a .reuselite.toml file at
// the project root. All fields are optional; a missing file yields the zero
// config.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/reuselite/reuselite/pkg/comment"
	"github.com/reuselite/reuselite/pkg/errors"
)

// FileName is the config file looked up at the project root.
const FileName = ".reuselite.toml"

// Config holds project-level defaults and overrides.
type Config struct {
	Annotate AnnotateConfig    `toml:"annotate"`
	Lint     LintConfig        `toml:"lint"`
	Styles   map[string]string `toml:"styles"`
}

// AnnotateConfig supplies defaults used when annotate flags are omitted.
type AnnotateConfig struct {
	License    string   `toml:"license"`
	Copyrights []string `toml:"copyright"`
}

// LintConfig controls which paths the scanner skips.
type LintConfig struct {
	Exclude []string `toml:"exclude"`
}

// Load reads the config file from dir. A missing file is not an error and
// returns the zero config.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config file")
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", FileName)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	for ext, name := range c.Styles {
		if _, ok := comment.ByName(name); !ok {
			return errors.New(errors.ErrCodeInvalidStyle, "unknown comment style %q for extension %q", name, ext)
		}
	}
	if c.Annotate.License != "" {
		if err := errors.ValidateLicenseID(c.Annotate.License); err != nil {
			return err
		}
	}
	for _, cp := range c.Annotate.Copyrights {
		if err := errors.ValidateStatement(cp); err != nil {
			return err
		}
	}
	return nil
}

// StyleFor resolves the comment style for path, honoring configured
// per-extension overrides before the built-in extension table.
func (c *Config) StyleFor(path string) comment.Style {
	ext := filepath.Ext(path)
	if name, ok := c.Styles[ext]; ok {
		if style, ok := comment.ByName(name); ok {
			return style
		}
	}
	return comment.ForPath(path)
}

// Excluded reports whether rel (a slash-separated path relative to the
// project root) matches any configured lint exclude pattern. Patterns match
// the path itself or any of its parent directories.
func (c *Config) Excluded(rel string) bool {
	for _, pattern := range c.Lint.Exclude {
		if matched, err := filepath.Match(pattern, rel); err == nil && matched {
			return true
		}
		for dir := filepath.Dir(rel); dir != "." && dir != "/"; dir = filepath.Dir(dir) {
			if matched, err := filepath.Match(pattern, dir); err == nil && matched {
				return true
			}
		}
	}
	return false
}
