package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"missiontracker/internal/ui"
)

func newUndoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Undo the most recent completion",
		Long: `Undo the most recent "mark complete".

Only completions are recorded in the undo history: clearing a key with
'mt do' removes it from the history, and counters are never undone.
The history keeps the last 20 completions.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openService(ctx, false)
			if err != nil {
				return err
			}
			defer cleanup()

			st, key, err := a.svc.Undo(ctx)
			if err != nil {
				return err
			}
			if key == "" {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(ui.IconInfo+" Nothing to undo"))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Warn.Render(ui.IconUndo+" Undid"), key,
				ui.Muted.Render(fmt.Sprintf("(%d left in history)", len(st.UndoStack))))
			return nil
		},
	}

	return cmd
}
