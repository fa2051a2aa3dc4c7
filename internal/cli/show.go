package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/reuselite/reuselite/pkg/config"
	"github.com/reuselite/reuselite/pkg/project"
	"github.com/reuselite/reuselite/pkg/spdx"
)

// showCommand creates the show command for inspecting resolved metadata.
func (c *CLI) showCommand() *cobra.Command {
	var (
		combine bool
		asJSON  bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "show [path]",
		Short: "Print the resolved metadata for a tree",
		Long: `Print the license and copyright metadata resolved for every file
under a directory, along with the source each fact came from.

With --combine, all per-file metadata is merged into a single deduplicated
view: files are visited in path order and each license identifier and
copyright statement is listed the first time it is seen.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			return c.runShow(cmd.Context(), root, combine, asJSON, noCache)
		},
	}

	cmd.Flags().BoolVar(&combine, "combine", false, "merge all files into one deduplicated view")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of styled text")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable scan result caching")

	return cmd
}

// runShow scans root and prints per-file or combined metadata.
func (c *CLI) runShow(ctx context.Context, root string, combine, asJSON, noCache bool) error {
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}
	report, err := c.newScanner(cfg, noCache).Scan(ctx, root)
	if err != nil {
		return fmt.Errorf("show %s: %w", root, err)
	}

	if combine {
		combined := spdx.Combine(root, report.Entries())
		if asJSON {
			return writeJSON(combined)
		}
		printCombined(combined)
		return nil
	}

	if asJSON {
		return writeJSON(report.Files)
	}
	for _, f := range report.Files {
		printFileInfo(f)
	}
	printDetail("%d files · %s", len(report.Files), report.Duration.Round(time.Millisecond))
	return nil
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printFileInfo(f project.FileInfo) {
	fmt.Println(StyleTitle.Render(f.Path) + " " + StyleDim.Render("("+string(f.Source)+")"))
	if len(f.Licenses) > 0 {
		printKeyValue("license", strings.Join(f.Licenses, ", "))
	}
	for _, cp := range f.Copyrights {
		printKeyValue("copyright", cp)
	}
	if len(f.Licenses) == 0 && len(f.Copyrights) == 0 {
		printDetail("no metadata")
	}
}

func printCombined(combined *spdx.CombinedEntry) {
	if len(combined.Licenses) > 0 {
		fmt.Println(StyleTitle.Render("Licenses"))
		for _, l := range combined.Licenses {
			printFile(l)
		}
	}
	if len(combined.Copyrights) > 0 {
		fmt.Println(StyleTitle.Render("Copyrights"))
		for _, cp := range combined.Copyrights {
			printFile(cp)
		}
	}
	if len(combined.Licenses) == 0 && len(combined.Copyrights) == 0 {
		printInfo("No metadata found")
	}
}
