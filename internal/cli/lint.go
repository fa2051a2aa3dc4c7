package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/reuselite/reuselite/pkg/config"
	"github.com/reuselite/reuselite/pkg/project"
)

// lintCommand creates the lint command for checking tree compliance.
func (c *CLI) lintCommand() *cobra.Command {
	var (
		noCache bool
		quiet   bool
	)

	cmd := &cobra.Command{
		Use:   "lint [path]",
		Short: "Check every file for license and copyright metadata",
		Long: `Check every file under a directory for license and copyright metadata.

A file is compliant when it carries at least one SPDX license identifier
and one copyright statement, resolved from a DEP-5 copyright file, a
.license sidecar, or a comment header in the file itself.

The command exits non-zero when any file is missing metadata. Scan results
are cached locally, keyed by file content, for faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			return c.runLint(cmd.Context(), root, noCache, quiet)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable scan result caching")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress output, only set the exit code")

	return cmd
}

// runLint scans root and reports files missing metadata.
func (c *CLI) runLint(ctx context.Context, root string, noCache, quiet bool) error {
	logger := loggerFromContext(ctx)
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	var spinner *Spinner
	if !quiet {
		spinner = newSpinnerWithContext(ctx, fmt.Sprintf("Scanning %s...", root))
		spinner.Start()
	}

	report, err := c.newScanner(cfg, noCache).Scan(ctx, root)
	if err != nil {
		if spinner != nil {
			spinner.StopWithError("Scan failed")
		}
		return fmt.Errorf("lint %s: %w", root, err)
	}
	if spinner != nil {
		spinner.Stop()
	}
	prog.done(fmt.Sprintf("Checked %d files", len(report.Files)))

	missing := report.Missing()
	if len(missing) == 0 {
		if !quiet {
			printSuccess("All %d files carry license metadata", len(report.Files))
		}
		return nil
	}

	if !quiet {
		printMissing(missing)
	}
	return fmt.Errorf("%d of %d files are missing license metadata", len(missing), len(report.Files))
}

// printMissing lists non-compliant files grouped by what they lack.
func printMissing(missing []project.FileInfo) {
	groups := map[string][]string{}
	for _, f := range missing {
		switch {
		case len(f.Licenses) == 0 && len(f.Copyrights) == 0:
			groups["no license or copyright"] = append(groups["no license or copyright"], f.Path)
		case len(f.Licenses) == 0:
			groups["no license"] = append(groups["no license"], f.Path)
		default:
			groups["no copyright"] = append(groups["no copyright"], f.Path)
		}
	}

	labels := make([]string, 0, len(groups))
	for label := range groups {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		printWarning("%s (%d files)", label, len(groups[label]))
		for _, path := range groups[label] {
			printFile(path)
		}
	}
}
