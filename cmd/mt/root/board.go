package root

import (
	"github.com/spf13/cobra"

	"missiontracker/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive mission board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openService(ctx, true)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, a.svc, a.loader.Load, cmd.OutOrStdout())
		},
	}

	return cmd
}
