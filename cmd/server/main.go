package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/ksdme/shades/internal/config"
	"github.com/ksdme/shades/internal/metrics"
	"github.com/ksdme/shades/internal/server"
)

func main() {
	slog.SetLogLoggerLevel(config.Core.LogLevel())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if config.Server.MetricsBindAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, config.Server.MetricsBindAddr); err != nil {
				slog.Error("metrics server failed", "err", err)
			}
		}()
	}

	s, err := server.New(config.Server.SSHBindAddr, config.Server.SSHHostKeyPath)
	if err != nil {
		log.Panicf("could not set up the server: %v", err)
	}

	go func() {
		slog.Info("starting ssh server", "addr", config.Server.SSHBindAddr, "table", config.Core.Table)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatalf("ssh server failed: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("stopping ssh server")

	shutdown, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.Shutdown(shutdown); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		slog.Error("could not stop the ssh server", "err", err)
	}
}
