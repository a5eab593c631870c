package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syre-ai/neural-foundry/internal/engine"
	"github.com/syre-ai/neural-foundry/internal/ui"
)

func newCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <mission_id>",
		Short: "Claim rewards for a finished mission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			res, err := app.Runner.Complete(cmd.Context(), args[0])
			if err != nil {
				var incomplete engine.MissionIncompleteError
				if errors.As(err, &incomplete) {
					fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" Not so fast! Checkpoint still failing: "+incomplete.Checkpoint))
					fmt.Fprintln(out, "  "+incomplete.Message)
					fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("See details with: foundry check %s", incomplete.ID)))
					return nil
				}
				if renderMissionErr(out, err) {
					return nil
				}
				return err
			}
			ui.CompleteBanner(out, res)
			if !res.AlreadyCompleted {
				fmt.Fprintln(out)
				fmt.Fprintln(out, ui.Muted.Render("Find your next mission with: foundry missions"))
			}
			return nil
		},
	}
}
