package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	var opts struct{}
	parser := flags.NewParser(&opts, flags.Default)
	parser.Name = "sni"
	mustAddCommand(parser, logger, "start", "Start the indexer",
		"Runs the ingestion pipeline, the network monitor and the API servers.", &startCommand{ctx: ctx})
	mustAddCommand(parser, logger, "health", "Check the network",
		"Queries the RPC node once and prints slot, epoch, version and block lag.", &healthCommand{ctx: ctx})
	mustAddCommand(parser, logger, "version", "Print the version", "", &versionCommand{})

	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("sni failed", zap.Error(err))
	}
}

func mustAddCommand(parser *flags.Parser, logger *zap.Logger, name, short, long string, cmd flags.Commander) {
	if _, err := parser.AddCommand(name, short, long, cmd); err != nil {
		logger.Fatal("failed to register command", zap.String("command", name), zap.Error(err))
	}
}
