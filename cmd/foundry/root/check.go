package root

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/syre-ai/neural-foundry/internal/engine"
	"github.com/syre-ai/neural-foundry/internal/ui"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <mission_id>",
		Short: "Validate a mission's checkpoints",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			res, err := app.Runner.Check(cmd.Context(), args[0])
			if err != nil {
				if renderMissionErr(out, err) {
					return nil
				}
				return err
			}
			ui.CheckTable(out, res)
			return nil
		},
	}
}

// renderMissionErr prints lookup and lifecycle errors as guidance text.
// It reports whether the error was handled.
func renderMissionErr(out io.Writer, err error) bool {
	var notFound engine.MissionNotFoundError
	if errors.As(err, &notFound) {
		fmt.Fprintln(out, ui.Bad.Render(ui.IconError+" "+err.Error()))
		fmt.Fprintln(out, ui.Muted.Render("See available missions with: foundry missions"))
		return true
	}
	var notStarted engine.MissionNotStartedError
	if errors.As(err, &notStarted) {
		fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" "+err.Error()))
		return true
	}
	return false
}
