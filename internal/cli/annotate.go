package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reuselite/reuselite/pkg/comment"
	"github.com/reuselite/reuselite/pkg/config"
	"github.com/reuselite/reuselite/pkg/errors"
	"github.com/reuselite/reuselite/pkg/spdx"
)

// annotateOptions holds the resolved inputs for one annotate run.
type annotateOptions struct {
	License     string
	Copyrights  []string
	StyleName   string
	Interactive bool
}

// annotateCommand creates the annotate command for writing SPDX headers.
func (c *CLI) annotateCommand() *cobra.Command {
	opts := annotateOptions{}

	cmd := &cobra.Command{
		Use:   "annotate [files...]",
		Short: "Add or replace SPDX headers in files",
		Long: `Add or replace the SPDX metadata header of each given file.

Existing metadata in the file (or its .license sidecar) is preserved and
merged with the new facts, then a fresh header is written. The comment
style is chosen by file extension unless overridden with --style.

For binary files the header is written to a .license sidecar next to the
file instead, leaving the file's bytes untouched.

Defaults for --license and --copyright can be set in ` + config.FileName + `.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAnnotate(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.License, "license", "l", "", "SPDX license identifier to add (e.g. MIT)")
	cmd.Flags().StringArrayVarP(&opts.Copyrights, "copyright", "c", nil, "copyright statement to add (repeatable)")
	cmd.Flags().StringVar(&opts.StyleName, "style", "", "force a comment style: "+joinNames())
	cmd.Flags().BoolVarP(&opts.Interactive, "interactive", "i", false, "pick the license from a list")

	return cmd
}

func joinNames() string {
	names := comment.Names()
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}

// runAnnotate validates inputs and rewrites the header of every file.
func (c *CLI) runAnnotate(ctx context.Context, files []string, opts annotateOptions) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	if opts.License == "" {
		opts.License = cfg.Annotate.License
	}
	if len(opts.Copyrights) == 0 {
		opts.Copyrights = cfg.Annotate.Copyrights
	}

	if opts.License == "" && opts.Interactive {
		picked, err := pickLicense(ctx)
		if err != nil {
			return err
		}
		if picked == "" {
			printInfo("No license selected")
			return nil
		}
		opts.License = picked
	}

	if opts.License == "" && len(opts.Copyrights) == 0 {
		return errors.New(errors.ErrCodeInvalidInput,
			"nothing to annotate: provide --license, --copyright, or defaults in %s", config.FileName)
	}
	if opts.License != "" {
		if err := errors.ValidateLicenseID(opts.License); err != nil {
			return err
		}
	}
	for _, cp := range opts.Copyrights {
		if err := errors.ValidateStatement(cp); err != nil {
			return err
		}
	}
	for _, path := range files {
		if err := errors.ValidateTargetPath(path); err != nil {
			return err
		}
	}

	fsys := spdx.NewOSFileSystem()
	for _, path := range files {
		override, err := styleOverride(cfg, opts.StyleName, path)
		if err != nil {
			return err
		}
		entry := mergedEntry(fsys, path, opts)
		if err := entry.UpdateFileContents(fsys, override); err != nil {
			return fmt.Errorf("annotate %s: %w", path, err)
		}
		printFile(path)
	}
	printSuccess("Annotated %d files", len(files))
	return nil
}

// styleOverride resolves the forced comment style for path, if any.
// An explicit --style wins over a per-extension config override; with
// neither, the built-in extension table applies.
func styleOverride(cfg *config.Config, name, path string) (*comment.Style, error) {
	if name != "" {
		style, ok := comment.ByName(name)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidStyle,
				"unknown comment style %q (valid: %s)", name, joinNames())
		}
		return &style, nil
	}
	if style := cfg.StyleFor(path); style.Name != comment.ForPath(path).Name {
		return &style, nil
	}
	return nil, nil
}

// mergedEntry combines the file's existing metadata with the new facts.
// New identifiers and statements are appended after existing ones, each
// admitted once.
func mergedEntry(fsys spdx.FileSystem, path string, opts annotateOptions) *spdx.FileEntry {
	existing := spdx.ReadFromFile(fsys, path+spdx.SidecarSuffix)
	if existing == nil {
		existing = spdx.ReadFromFile(fsys, path)
	}

	var licenses, copyrights []string
	if existing != nil {
		licenses = existing.Licenses
		copyrights = existing.Copyrights
	}
	if opts.License != "" {
		licenses = appendUnique(licenses, opts.License)
	}
	for _, cp := range opts.Copyrights {
		copyrights = appendUnique(copyrights, cp)
	}
	return spdx.NewFileEntry(path, licenses, copyrights)
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}
