package root

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"missiontracker/internal/ui"
)

const Version = "0.3.0"

type globalOptions struct {
	dbPath      string
	sheetURL    string
	catalogFile string
	offline     bool
}

var opts globalOptions

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "mt",
		Short:         "Mission tracker: daily and weekly game chores with 05:00 resets",
		Long:          "mt tracks recurring in-game missions locally. Completions expire at the daily, weekly or bi-weekly 05:00 reset; key stock regenerates once per day.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.dbPath, "db", "", "State database path (default $MT_DB_PATH or ~/.missiontracker.db)")
	pf.StringVar(&opts.sheetURL, "sheet", "", "Mission sheet URL to import (default $MT_SHEET_URL)")
	pf.StringVar(&opts.catalogFile, "catalog", "", "YAML mission catalog to import (default $MT_CATALOG_FILE)")
	pf.BoolVar(&opts.offline, "offline", false, "Skip the mission sheet and use local missions only")

	cmd.AddCommand(
		newBoardCmd(),
		newStatusCmd(),
		newListCmd(),
		newDoCmd(),
		newUndoCmd(),
		newStockCmd(),
		newFloorCmd(),
		newResetCmd(),
		newResetsCmd(),
		newCatalogCmd(),
	)
	return cmd
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
