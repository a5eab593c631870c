package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syre-ai/neural-foundry/internal/engine"
	"github.com/syre-ai/neural-foundry/internal/ui"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play <mission_id>",
		Short: "Start a mission and set up its workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			res, err := app.Runner.Start(cmd.Context(), args[0])
			if err != nil {
				var notFound engine.MissionNotFoundError
				if errors.As(err, &notFound) {
					fmt.Fprintln(out, ui.Bad.Render(ui.IconError+" "+err.Error()))
					fmt.Fprintln(out, ui.Muted.Render("See available missions with: foundry missions"))
					return nil
				}
				return err
			}

			fmt.Fprint(out, ui.RenderMarkdown(res.Instructions))
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.LabelValue("Workspace", res.Workspace))
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf(
				"Check progress with: foundry check %s", res.Info.ID)))
			return nil
		},
	}
}
