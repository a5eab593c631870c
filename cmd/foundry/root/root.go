package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/syre-ai/neural-foundry/internal/ui"
)

const Version = "0.2.0"

var rootCmd = &cobra.Command{
	Use:           "foundry",
	Short:         "Neural Foundry — master new skills through hands-on missions",
	Long:          "Neural Foundry is a gamified CLI that teaches hands-on coding through missions with validated checkpoints, XP and tier progression.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, cleanup, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()
		ui.Welcome(cmd.OutOrStdout(), app.State)
		return nil
	},
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatusCmd(),
		newMissionsCmd(),
		newTracksCmd(),
		newPlayCmd(),
		newCheckCmd(),
		newCompleteCmd(),
		newHistoryCmd(),
		newBoardCmd(),
	)

	// Failures are rendered as styled console text; the process always
	// exits 0 so shell pipelines over the output keep working.
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
	}
}
