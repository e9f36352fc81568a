// Package cli implements the focusctl command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comalice/layoutfocus/internal/bridge"
	"github.com/comalice/layoutfocus/internal/config"
	"github.com/comalice/layoutfocus/internal/core"
	"github.com/comalice/layoutfocus/internal/legacy"
	"github.com/comalice/layoutfocus/internal/logging"
	"github.com/comalice/layoutfocus/internal/primitives"
)

// App carries flag values and the state built from them before a command runs.
type App struct {
	ConfigPath string
	Env        string
	LogLevel   string

	cfg    config.Config
	mode   primitives.Mode
	logger *slog.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "focusctl",
		Short:        "Inspect and drive the layout focus stores",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Interactive playground
  focusctl tui

  # Replay an action script and keep a transcript
  focusctl replay focus.yaml --record

  # Render the machine after a script as Graphviz
  focusctl dot --script focus.yaml | dot -Tsvg > focus.svg
`),
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.load(cmd)
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("LAYOUTFOCUS_CONFIG", ""), "Path to config.toml")
	cmd.PersistentFlags().StringVar(&app.Env, "env", "", "Override env (development|production)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Override log level (debug|info|warn|error)")

	cmd.AddCommand(newTUICmd(app))
	cmd.AddCommand(newReplayCmd(app))
	cmd.AddCommand(newDotCmd(app))
	cmd.AddCommand(newAreasCmd(app))

	return cmd
}

func (app *App) load(cmd *cobra.Command) error {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return err
	}
	if app.Env != "" {
		cfg.Env = app.Env
	}
	if app.LogLevel != "" {
		cfg.Log.Level = app.LogLevel
	}

	mode, err := cfg.Mode()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	app.cfg = cfg
	app.mode = mode
	app.logger = logger
	return nil
}

// newStores builds a legacy store and a bridged canonical store configured
// from app. Extra options are applied after logging.
func (app *App) newStores(opts ...core.Option) (*core.Store, *legacy.FocusStore, *bridge.Bridge) {
	l := legacy.New(legacy.WithMode(app.mode), legacy.WithLogger(app.logger))
	opts = append([]core.Option{
		core.WithLogger(app.logger),
		core.WithMiddleware(core.LoggingMiddleware(app.logger)),
	}, opts...)
	store, b := bridge.NewStore(l, opts...)
	return store, l, b
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func printFocus(cmd *cobra.Command, label string, f primitives.FocusState) {
	fmt.Fprintf(cmd.OutOrStdout(), "%-9s current=%s previous=%s next=%s\n", label, f.Current, f.Previous, f.Next)
}
