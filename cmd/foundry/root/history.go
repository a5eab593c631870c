package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syre-ai/neural-foundry/internal/journal"
	"github.com/syre-ai/neural-foundry/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent mission events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Mission History"))
			if app.Journal == nil {
				fmt.Fprintln(out, ui.Warn.Render("Journal unavailable; no history recorded."))
				return nil
			}
			events, err := app.Journal.ListRecent(cmd.Context(), limit)
			if err != nil {
				fmt.Fprintln(out, ui.Warn.Render("Could not read history: "+err.Error()))
				return nil
			}
			ui.HistoryTable(out, events)
			if completions, err := app.Journal.CountByKind(cmd.Context(), journal.KindCompleted); err == nil && completions > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%d completion(s) recorded all-time.", completions)))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of events to show")
	return cmd
}
