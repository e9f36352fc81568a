package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comalice/layoutfocus/internal/primitives"
)

func newAreasCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "areas",
		Short: "List the valid focus areas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range primitives.Areas() {
				marker := ""
				if a == primitives.DefaultArea {
					marker = " (default)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", a, marker)
			}
			return nil
		},
	}
}
