package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"adaptive-life/internal/board"
	"adaptive-life/internal/engine"
)

func newCompareCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run the same seed on pinned hashed and dense engines and check they agree",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := opts.logger(cmd)
			if err != nil {
				return err
			}
			cfg, err := opts.engineConfig()
			if err != nil {
				return err
			}
			res, err := compareBackends(cmd.Context(), cfg, opts.seedEngine, opts.iterations, logger)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res.Diverged() {
				fmt.Fprintf(out, "backends diverged at iteration %d\n", res.DivergedAt)
				return fmt.Errorf("hashed and dense boards differ after %d iterations", res.DivergedAt)
			}
			fmt.Fprintf(out, "backends agree over %d iterations, final population %d\n", res.Iterations, res.Population)
			return nil
		},
	}
	bindSimFlags(cmd, opts)
	return cmd
}

// comparison is the outcome of running both backends side by side.
type comparison struct {
	Iterations int
	Population int
	// DivergedAt is the first iteration whose boards differ, or -1.
	DivergedAt int
}

func (c comparison) Diverged() bool { return c.DivergedAt >= 0 }

// compareBackends runs one non-adaptive engine per backend from the same seed
// and reports the first generation at which their live cells differ.
// Iteration 0 is the seeded board.
func compareBackends(ctx context.Context, cfg engine.Config, seed func(*engine.Engine) error, iterations int, logger *slog.Logger) (comparison, error) {
	kinds := [...]board.Kind{board.KindHashed, board.KindDense}
	var traces [len(kinds)][]uint64
	var final [len(kinds)]int

	g, ctx := errgroup.WithContext(ctx)
	for i, k := range kinds {
		pinned := cfg
		pinned.Backend = k.String()
		pinned.Adaptive = false
		g.Go(func() error {
			e := engine.New(pinned, engine.WithLogger(logger.With("backend", k.String())))
			if err := seed(e); err != nil {
				return err
			}
			trace := make([]uint64, 0, iterations+1)
			trace = append(trace, fingerprint(e.Board()))
			for range iterations {
				if err := ctx.Err(); err != nil {
					return err
				}
				e.Step()
				trace = append(trace, fingerprint(e.Board()))
			}
			traces[i] = trace
			final[i] = e.Board().Population()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return comparison{}, err
	}

	res := comparison{Iterations: iterations, Population: final[0], DivergedAt: -1}
	for it := range traces[0] {
		if traces[0][it] != traces[1][it] {
			res.DivergedAt = it
			logger.Warn("backend divergence", "iteration", it)
			break
		}
	}
	return res, nil
}

// fingerprint hashes the sorted live cells together with their birth
// generations.
func fingerprint(b *board.Board) uint64 {
	h := fnv.New64a()
	var buf [24]byte
	for _, c := range b.Alive() {
		binary.LittleEndian.PutUint64(buf[0:], uint64(int64(c.Coord.Col)))
		binary.LittleEndian.PutUint64(buf[8:], uint64(int64(c.Coord.Row)))
		binary.LittleEndian.PutUint64(buf[16:], c.Gen)
		h.Write(buf[:])
	}
	return h.Sum64()
}
