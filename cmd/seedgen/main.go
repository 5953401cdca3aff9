package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hirelance/matchd/internal/seedgen"
	"github.com/hirelance/matchd/pkg/logger"
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := seedgen.ParseFlags()
	if err := seedgen.Run(ctx, cfg); err != nil {
		logger.Get().Error(ctx, "corpus generation failed", logger.Error(err))
		os.Exit(1)
	}
}
