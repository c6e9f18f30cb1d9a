package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"missiontracker/internal/engine"
	"missiontracker/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <key>",
		Short: "Toggle a mission, store item or raid cell",
		Long:  "Toggle a completion key such as d-login, w-world-raid:day1 or w-raid:ice_hard. Run 'mt list' to see the keys.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("key is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			key := args[0]
			a, cleanup, err := openService(ctx, false)
			if err != nil {
				return err
			}
			defer cleanup()

			m, err := engine.ValidateKey(a.missions, key)
			if err != nil {
				return err
			}
			if !engine.IsActive(m, a.svc.Now()) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" "+m.Name+" is outside its active window"))
			}

			st, err := a.svc.Toggle(ctx, key)
			if err != nil {
				return err
			}
			if st.IsCompleted(key) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconDone+" Completed"), m.Name, ui.Muted.Render(key))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Warn.Render(ui.IconTodo+" Cleared"), m.Name, ui.Muted.Render(key))
			}
			return nil
		},
	}

	return cmd
}
