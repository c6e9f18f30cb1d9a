package root

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"missiontracker/internal/engine"
	"missiontracker/internal/ui"
)

func newFloorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "floor <n>",
		Short: "Record the ruins floor reached (clamped to 0-60)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("floor is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("floor must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			n, _ := strconv.Atoi(args[0])

			a, cleanup, err := openService(ctx, false)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := a.svc.SetRuinsFloor(ctx, n)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %d/%d\n", ui.IconRuins, ui.Key.Render("Ruins floor:"), st.RuinsFloor, engine.MaxRuinsFloor)
			return nil
		},
	}

	return cmd
}
