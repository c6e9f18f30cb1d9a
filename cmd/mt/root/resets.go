package root

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"missiontracker/internal/engine"
	"missiontracker/internal/ui"
)

func newResetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resets",
		Short: "Show the last and next reset instants per cadence",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			loc, err := cfg.Location()
			if err != nil {
				return err
			}
			sch, err := cfg.Schedule(loc)
			if err != nil {
				return err
			}
			printResets(cmd.OutOrStdout(), sch, engine.RealClock{Location: loc}.Now())
			return nil
		},
	}

	return cmd
}

func printResets(out io.Writer, sch engine.Schedule, now time.Time) {
	fmt.Fprintln(out, ui.H2.Render(ui.IconClock+" Resets"))
	for _, c := range []engine.Cadence{engine.CadenceDaily, engine.CadenceWeekly, engine.CadenceBiWeekly} {
		last, _ := sch.LastReset(c, now)
		next, _ := sch.NextReset(c, now)
		fmt.Fprintf(out, "- %-10s last %s  next %s %s\n",
			string(c)+":",
			ui.Muted.Render(last.Format("Mon 01-02 15:04")),
			ui.Key.Render(next.Format("Mon 01-02 15:04")),
			ui.Muted.Render("(in "+ui.Countdown(next.Sub(now))+")"))
	}
}
