package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/Ernest1338/randlib/counter"
	"github.com/Ernest1338/randlib/counter/period"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

const benchBatch = 1 << 12

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure generator throughput",
	Long: `Run workers that draw 64-bit values for a fixed duration and report the
draw rate. Each worker owns its own generator. For example:
  randlib bench --workers=4 --duration=3s`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		workers := viper.GetInt("bench.workers")
		duration := viper.GetDuration("bench.duration")
		if workers <= 0 {
			return fmt.Errorf("invalid workers %d", workers)
		}
		if duration <= 0 {
			return fmt.Errorf("invalid duration %v", duration)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), duration)
		defer cancel()
		return runBench(ctx, cmd.OutOrStdout(), workers)
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)

	flags := benchCmd.Flags()
	flags.IntP("workers", "w", 1, "number of worker goroutines")
	flags.DurationP("duration", "d", 3*time.Second, "how long to run")
	bindFlag(benchCmd, "workers")
	bindFlag(benchCmd, "duration")
}

func runBench(ctx context.Context, out io.Writer, workers int) error {
	var mu sync.Mutex
	report := func(format string, a ...any) error {
		mu.Lock()
		defer mu.Unlock()
		_, err := fmt.Fprintf(out, format, a...)
		return err
	}
	draws := period.NewPeriodCounter(time.Second)

	done := make(chan struct{})
	defer close(done)
	go reportRate(done, draws)

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	for id := 0; id < workers; id++ {
		g.Go(func() error {
			n, err := benchWorker(ctx, draws)
			if err != nil {
				return err
			}
			return report("worker %d: %d draws\n", id, n)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	elapsed := time.Since(start)
	total := draws.Value()
	return report("total: %d draws in %v (%.0f draws/s)\n",
		total, elapsed.Round(time.Millisecond), float64(total)/elapsed.Seconds())
}

func benchWorker(ctx context.Context, draws counter.Counter) (n int64, err error) {
	r, err := newGenerator()
	if err != nil {
		return 0, err
	}
	for {
		select {
		case <-ctx.Done():
			return n, nil
		default:
		}
		for i := 0; i < benchBatch; i++ {
			r.Uint64()
		}
		n += benchBatch
		draws.Add(benchBatch)
	}
}

func reportRate(done <-chan struct{}, draws counter.Counter) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			log.Printf("%d draws/s", draws.RatePerSec())
		}
	}
}
