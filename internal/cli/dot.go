package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comalice/layoutfocus/internal/core"
	"github.com/comalice/layoutfocus/internal/production"
	"github.com/comalice/layoutfocus/internal/script"
)

func newDotCmd(app *App) *cobra.Command {
	var (
		scriptPath string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Print the focus machine as Graphviz DOT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, l, b := app.newStores()
			defer b.Detach()

			if scriptPath != "" {
				s, err := script.Load(scriptPath)
				if err != nil {
					return err
				}
				if _, err := s.Replay(cmd.Context(), store, l); err != nil {
					return err
				}
			}

			var v production.Visualizer
			if asJSON {
				data, err := v.ExportJSON(store.State())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), v.ExportDOT(core.LayoutFocus(store.State())))
			return nil
		},
	}

	cmd.Flags().StringVar(&scriptPath, "script", "", "Replay this script first")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the state tree as JSON instead")
	return cmd
}
