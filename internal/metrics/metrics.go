package metrics

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ModeInteractive = "interactive"
	ModeCommand     = "command"
)

var (
	// Sessions served over ssh, by whether they got the tui or a command.
	Sessions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shades_sessions_total",
		Help: "Total sessions served by mode",
	}, []string{"mode"})

	// Commands run, by subcommand and outcome.
	Commands = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shades_commands_total",
		Help: "Total commands run by name and outcome",
	}, []string{"command", "outcome"})
)

func RecordCommand(name string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	Commands.WithLabelValues(name, outcome).Inc()
}

// Serves the metrics on addr until the context is done.
func Serve(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrap(err, "could not listen for metrics")
	}

	slog.Info("serving metrics", "addr", listener.Addr().String())
	return serve(ctx, listener)
}

func serve(ctx context.Context, listener net.Listener) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Released when serving stops on its own.
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-done:
			return
		case <-ctx.Done():
		}

		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdown); err != nil {
			slog.Error("could not stop metrics server", "err", err)
		}
	}()

	if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "could not serve metrics")
	}
	return nil
}
