package cli

import (
	"github.com/spf13/cobra"

	"github.com/comalice/layoutfocus/internal/logging"
	"github.com/comalice/layoutfocus/internal/tui"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive focus playground",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Log lines would tear the alternate screen.
			app.logger = logging.Discard()
			store, l, b := app.newStores()
			defer b.Detach()
			defer store.Close()
			return tui.Run(tui.New(store, l))
		},
	}
}
