// Package cli implements the reuselite command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/reuselite/reuselite/pkg/buildinfo"
	"github.com/reuselite/reuselite/pkg/cache"
	"github.com/reuselite/reuselite/pkg/config"
	"github.com/reuselite/reuselite/pkg/project"
)

// appName is the application name used for directories and display.
const appName = "reuselite"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "reuselite",
		Short:        "Reuselite manages SPDX license headers in source trees",
		Long:         `Reuselite adds, inspects, and checks SPDX license and copyright headers across a source tree, following the REUSE conventions for comment headers, .license sidecar files, and DEP-5 copyright files.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.lintCommand())
	root.AddCommand(c.annotateCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newScanner creates a project scanner backed by the on-disk cache.
func (c *CLI) newScanner(cfg *config.Config, noCache bool) *project.Scanner {
	store, err := newCache(noCache)
	if err != nil {
		store = cache.NewNullCache()
	}
	return project.NewScanner(project.Options{
		Config: cfg,
		Cache:  store,
		Logger: c.Logger.Debugf,
	})
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/reuselite/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
