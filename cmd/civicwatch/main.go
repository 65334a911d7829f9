package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"CivicWatch/internal/app"
	"CivicWatch/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := app.Command(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Run(ctx, os.Args); err != nil {
		logging.New("error", "text").Error("application stopped", logging.ErrAttr(err))
		stop()
		os.Exit(1)
	}
}
