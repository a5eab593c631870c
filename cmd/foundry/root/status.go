package root

import (
	"github.com/spf13/cobra"

	"github.com/syre-ai/neural-foundry/internal/ui"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show your tier, XP and achievements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()
			ui.Status(cmd.OutOrStdout(), app.State)
			return nil
		},
	}
}
