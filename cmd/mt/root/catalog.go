package root

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"missiontracker/internal/catalog"
	"missiontracker/internal/config"
	"missiontracker/internal/ui"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog [file]",
		Short: "Show catalog sources, or validate a YAML/CSV catalog file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return checkCatalogFile(cmd, args[0])
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconInfo, "Catalog"))
			fmt.Fprintln(out, ui.LabelValue("Built-in missions", len(catalog.Builtin())))
			fmt.Fprintln(out, ui.LabelValue("Catalog file", orNone(cfg.CatalogFile)))
			fmt.Fprintln(out, ui.LabelValue("Sheet", sheetText(cfg)))
			return nil
		},
	}

	return cmd
}

func checkCatalogFile(cmd *cobra.Command, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var res catalog.Result
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		res, err = catalog.ParseSheet(f)
	case ".yaml", ".yml":
		res, err = catalog.ParseFile(f)
	default:
		return errors.New("catalog file must be .csv, .yaml or .yml")
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, is := range res.Issues {
		style := ui.Warn
		if is.Skipped {
			style = ui.Bad
		}
		fmt.Fprintln(out, style.Render(ui.IconWarn+" "+is.String()))
	}
	merged := catalog.Merge(catalog.Builtin(), res.Missions)
	added := len(merged) - len(catalog.Builtin())
	fmt.Fprintf(out, "%s %d missions read, %d new after merge, %d issues\n",
		ui.Good.Render(ui.IconDone), len(res.Missions), added, len(res.Issues))
	return nil
}

func sheetText(cfg config.Config) string {
	switch {
	case cfg.SheetURL == "":
		return orNone("")
	case cfg.Offline:
		return catalog.ExportURL(cfg.SheetURL) + " " + ui.Muted.Render("(offline)")
	default:
		return catalog.ExportURL(cfg.SheetURL)
	}
}

func orNone(s string) string {
	if s == "" {
		return ui.Muted.Render("(none)")
	}
	return s
}
