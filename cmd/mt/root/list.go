package root

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"missiontracker/internal/engine"
	"missiontracker/internal/ui"
)

func newListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List missions and their completion keys",
		Long:  "List the missions eligible right now with the keys accepted by 'mt do'. Use --all to include events outside their window.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openService(ctx, false)
			if err != nil {
				return err
			}
			defer cleanup()

			now := a.svc.Now()
			st := a.svc.State()
			missions := a.missions
			if !all {
				missions = engine.VisibleMissions(missions, now)
			}

			out := cmd.OutOrStdout()
			for _, c := range []engine.Category{engine.CategoryDaily, engine.CategoryWeekly, engine.CategoryOther} {
				var section []engine.Mission
				for _, m := range missions {
					if m.Category == c {
						section = append(section, m)
					}
				}
				if len(section) == 0 {
					continue
				}
				fmt.Fprintln(out, ui.H2.Render(ui.CategoryTitle(c)))
				for _, m := range section {
					printMission(out, m, st, engine.IsActive(m, now))
				}
				fmt.Fprintln(out, "")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include events outside their active window")

	return cmd
}

func printMission(out io.Writer, m engine.Mission, st engine.State, active bool) {
	title := strings.TrimSpace(m.Image + " " + m.Name)
	var notes []string
	if !active {
		notes = append(notes, "inactive")
	}
	if !m.Activation.IsZero() {
		notes = append(notes, activationText(m.Activation))
	}
	if c := engine.EffectiveCadence(m); c != engine.CadenceDaily && c != engine.CadenceWeekly {
		notes = append(notes, string(c))
	}
	suffix := ""
	if len(notes) > 0 {
		suffix = " " + ui.Muted.Render("("+strings.Join(notes, ", ")+")")
	}

	switch m.EffectiveKind() {
	case engine.KindStock:
		fmt.Fprintf(out, "  %s %s  %s\n", title, ui.Gauge(st.Stock(m.Stock.Resource), engine.MaxKeys), ui.Muted.Render("mt stock "+string(m.Stock.Resource)+" <n>"))
		return
	case engine.KindRuins:
		fmt.Fprintf(out, "  %s floor %d/%d%s  %s\n", title, st.RuinsFloor, engine.MaxRuinsFloor, suffix, ui.Muted.Render("mt floor <n>"))
		return
	}

	keys := engine.CompletionKeys(m)
	if len(keys) == 1 && keys[0] == m.ID {
		fmt.Fprintf(out, "  %s %s%s  %s\n", ui.Check(st.IsCompleted(m.ID)), title, suffix, ui.Muted.Render(m.ID))
		return
	}
	fmt.Fprintf(out, "  %s%s\n", title, suffix)
	for _, k := range keys {
		fmt.Fprintf(out, "    %s %s\n", ui.Check(st.IsCompleted(k)), ui.Muted.Render(k))
	}
	if m.EffectiveKind() == engine.KindRaid {
		for _, sub := range m.SubItems {
			for _, d := range engine.RaidDifficulties {
				if m.CellLocked(sub.ID, d) {
					fmt.Fprintf(out, "    %s %s\n", ui.IconLocked, ui.Muted.Render(engine.CellKey(m.ID, sub.ID, d)))
				}
			}
		}
	}
}

func activationText(a engine.Activation) string {
	var parts []string
	if len(a.Days) > 0 {
		days := make([]string, 0, len(a.Days))
		for _, d := range a.Days {
			days = append(days, d.String()[:3])
		}
		parts = append(parts, strings.Join(days, "/"))
	}
	if a.Window != nil {
		parts = append(parts, a.Window.String())
	}
	return strings.Join(parts, " ")
}
