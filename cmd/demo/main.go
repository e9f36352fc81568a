package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/comalice/layoutfocus/internal/bridge"
	"github.com/comalice/layoutfocus/internal/core"
	"github.com/comalice/layoutfocus/internal/extensibility"
	"github.com/comalice/layoutfocus/internal/legacy"
	"github.com/comalice/layoutfocus/internal/primitives"
	"github.com/comalice/layoutfocus/internal/production"
)

// tour walks focus around the layout the way a user opening a site preview
// from the sites picker would.
var tour = []primitives.Action{
	primitives.SetLayoutFocus(primitives.Sidebar),
	primitives.SetNextLayoutFocus(primitives.Preview),
	primitives.SetLayoutFocus(primitives.Sites),
	primitives.ActivateNextLayoutFocus(),
	primitives.ActivateNextLayoutFocus(),
	primitives.SetLayoutFocus(primitives.Sidebar),
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	publishChan := make(chan core.Transition, 100)
	publisher := production.NewChannelPublisher(publishChan)

	l := legacy.New(legacy.WithLogger(logger))
	store, b := bridge.NewStore(l,
		core.WithLogger(logger),
		core.WithMiddleware(core.LoggingMiddleware(logger)),
		core.WithPublisher(publisher),
	)
	defer b.Detach()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src := extensibility.NewTickerSource(time.Second, extensibility.Sequence(tour...))
	defer src.Stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		cycle := 0
		for t := range publishChan {
			cycle++
			fmt.Printf("\n--- Transition %d ---\n", cycle)
			fmt.Printf("Published: %s\n", t)
			fmt.Printf("legacy: current=%s previous=%s\n", l.Current(), l.Previous())
		}
	}()

	if err := store.Run(ctx, src); err != nil {
		fmt.Println("\nShutting down gracefully...")
	} else {
		fmt.Println("\nDemo complete.")
	}
	if err := store.Close(); err != nil {
		logger.Warn("close store", slog.Any("err", err))
	}
	<-done

	var v production.Visualizer
	fmt.Println("DOT:\n" + v.ExportDOT(core.LayoutFocus(store.State())))
}
