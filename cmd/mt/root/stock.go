package root

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"missiontracker/internal/engine"
	"missiontracker/internal/ui"
)

func newStockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock <boss|elite> <n>",
		Short: "Set a key counter (clamped to 0-6)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("resource and count are required")
			}
			if _, err := engine.ParseResource(args[0]); err != nil {
				return err
			}
			if _, err := strconv.Atoi(args[1]); err != nil {
				return errors.New("count must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			r, _ := engine.ParseResource(args[0])
			n, _ := strconv.Atoi(args[1])

			a, cleanup, err := openService(ctx, false)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := a.svc.SetStock(ctx, r, n)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.IconKey, ui.Key.Render(string(r)+":"), ui.Gauge(st.Stock(r), engine.MaxKeys))
			return nil
		},
	}

	return cmd
}
