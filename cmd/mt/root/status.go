package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"missiontracker/internal/engine"
	"missiontracker/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show progress, key stock and the next resets",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openService(ctx, false)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			now := a.svc.Now()
			st := a.svc.State()
			visible := engine.VisibleMissions(a.missions, now)

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Mission Status"))
			fmt.Fprintln(out, ui.LabelValue("Now", now.Format("Mon 2006-01-02 15:04")))
			fmt.Fprintln(out, "")

			for _, c := range []engine.Category{engine.CategoryDaily, engine.CategoryWeekly, engine.CategoryOther} {
				p := engine.CategoryProgress(visible, st, c)
				if p.Total == 0 {
					continue
				}
				fmt.Fprintf(out, "%-10s %s\n", ui.CategoryTitle(c), ui.ProgressBar(p, 20))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconKey+" Keys"))
			fmt.Fprintf(out, "- boss:  %s\n", ui.Gauge(st.BossKeys, engine.MaxKeys))
			fmt.Fprintf(out, "- elite: %s\n", ui.Gauge(st.EliteKeys, engine.MaxKeys))
			fmt.Fprintf(out, "- %s %d/%d\n", ui.Key.Render("Ruins floor:"), st.RuinsFloor, engine.MaxRuinsFloor)
			fmt.Fprintln(out, "")

			printResets(out, a.svc.Schedule(), now)
			return nil
		},
	}

	return cmd
}
