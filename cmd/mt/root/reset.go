package root

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"missiontracker/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all progress and refill key stock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				fmt.Fprint(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Reset ALL progress? [y/N] "))
				line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				switch strings.ToLower(strings.TrimSpace(line)) {
				case "y", "yes":
				default:
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Aborted."))
					return nil
				}
			}

			ctx := cmd.Context()
			a, cleanup, err := openService(ctx, false)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := a.svc.ResetAll(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconReset+" All progress reset"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
