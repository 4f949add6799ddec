package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"adaptive-life/internal/core"
	"adaptive-life/internal/engine"
)

func newRunCmd(opts *options) *cobra.Command {
	var (
		batch       int
		metricsAddr string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run generations and report progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runSim(ctx, cmd, opts, batch, metricsAddr)
		},
	}
	bindSimFlags(cmd, opts)
	cmd.Flags().IntVar(&batch, "batch", 100, "generations per progress report")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running")
	return cmd
}

func runSim(ctx context.Context, cmd *cobra.Command, opts *options, batch int, metricsAddr string) error {
	logger, err := opts.logger(cmd)
	if err != nil {
		return err
	}
	cfg, err := opts.engineConfig()
	if err != nil {
		return err
	}
	if batch <= 0 {
		batch = opts.iterations
	}

	if metricsAddr != "" {
		srv, err := serveMetrics(metricsAddr, logger)
		if err != nil {
			return err
		}
		logger.Info("serving metrics", "addr", srv.Addr)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	e := engine.New(cfg, engine.WithLogger(logger))
	if err := opts.seedEngine(e); err != nil {
		return err
	}
	logger.Info("engine ready",
		"population", e.Board().Population(),
		"backend", e.Kind().String(),
		"cols", cfg.Cols,
		"rows", cfg.Rows,
	)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%10s %12s %8s %10s %12s\n", "iteration", "population", "backend", "density", "batch")
	var total time.Duration
	for done := 0; done < opts.iterations; {
		if err := ctx.Err(); err != nil {
			logger.Warn("interrupted", "iteration", e.Iteration())
			break
		}
		n := min(batch, opts.iterations-done)
		total += e.Iterations(ctx, n)
		done += n
		fmt.Fprintf(out, "%10d %12d %8s %10.4f %12s\n",
			e.Iteration(), e.Board().Population(), e.Kind(), e.Density(), e.LastBatchTime().Round(time.Microsecond))
	}

	logger.Info("run finished",
		"iterations", e.Iteration(),
		"population", e.Board().Population(),
		"elapsed", total.String(),
	)
	printParameters(out, e.Parameters())
	return nil
}

func printParameters(w io.Writer, snap core.ParameterSnapshot) {
	for _, g := range snap.Groups {
		fmt.Fprintf(w, "\n[%s]\n", g.Name)
		for _, p := range g.Params {
			fmt.Fprintf(w, "  %-18s %s\n", p.Label, p.Value)
		}
	}
}

func serveMetrics(addr string, logger *slog.Logger) (*http.Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen metrics: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: ln.Addr().String(), Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "err", err)
		}
	}()
	return srv, nil
}
