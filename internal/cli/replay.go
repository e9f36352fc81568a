package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comalice/layoutfocus/internal/core"
	"github.com/comalice/layoutfocus/internal/production"
	"github.com/comalice/layoutfocus/internal/script"
)

func newReplayCmd(app *App) *cobra.Command {
	var (
		record bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "replay <script>",
		Short: "Replay an action script against both stores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.Load(args[0])
			if err != nil {
				return err
			}

			var (
				opts     []core.Option
				recorder *production.Recorder
			)
			if record {
				if format == "" {
					format = app.cfg.Record.Format
				}
				f, err := production.ParseFormat(format)
				if err != nil {
					return err
				}
				recorder, err = production.NewRecorder(app.cfg.Record.Dir, f)
				if err != nil {
					return err
				}
				opts = append(opts, core.WithPublisher(recorder))
			}

			store, l, b := app.newStores(opts...)
			defer b.Detach()
			defer store.Close()

			final, err := s.Replay(cmd.Context(), store, l)
			if err != nil {
				return err
			}
			printFocus(cmd, "canonical", final)
			printFocus(cmd, "legacy", l.Snapshot())

			if recorder != nil {
				fn, err := recorder.Save(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "transcript %s\n", fn)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&record, "record", false, "Write a transcript of every transition")
	cmd.Flags().StringVar(&format, "format", "", "Transcript format (yaml|json); defaults to record.format")
	return cmd
}
