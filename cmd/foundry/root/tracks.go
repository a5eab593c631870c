package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syre-ai/neural-foundry/internal/ui"
)

func newTracksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tracks",
		Short: "List learning tracks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Learning Tracks"))
			ui.TrackTable(out, app.Runner.Registry.Tracks(), func(trackID string) int {
				return len(app.Runner.Registry.ByTrack(trackID))
			})
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.Muted.Render("List a track's missions with: foundry missions --track <track_id>"))
			return nil
		},
	}
}
