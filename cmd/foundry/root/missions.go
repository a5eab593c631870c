package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syre-ai/neural-foundry/internal/ui"
)

func newMissionsCmd() *cobra.Command {
	var trackID string

	cmd := &cobra.Command{
		Use:   "missions",
		Short: "List missions and their status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			infos := app.Runner.Registry.All()
			if trackID != "" {
				infos = app.Runner.Registry.ByTrack(trackID)
				if len(infos) == 0 {
					fmt.Fprintln(out, ui.Warn.Render("No missions in track: "+trackID))
					fmt.Fprintln(out, ui.Muted.Render("See available tracks with: foundry tracks"))
					return nil
				}
			}
			fmt.Fprintln(out, ui.Heading(ui.IconMission, "Missions"))
			ui.MissionTable(out, app.State, infos)
			return nil
		},
	}
	cmd.Flags().StringVar(&trackID, "track", "", "only list missions in this track")
	return cmd
}
