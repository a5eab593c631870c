package root

import (
	"github.com/spf13/cobra"

	"github.com/syre-ai/neural-foundry/internal/tui"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive mission board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()
			return tui.RunBoard(cmd.Context(), app.Runner, cmd.OutOrStdout())
		},
	}
}
