package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sensorgrid/beaconsearch/internal/config"
	"github.com/sensorgrid/beaconsearch/internal/parse"
	"github.com/sensorgrid/beaconsearch/internal/rowscan"
	"github.com/sensorgrid/beaconsearch/solver"
)

func options(cfg *config.Config) solver.Options {
	policy := rowscan.ExcludeBeacons
	if cfg.KeepBeacons {
		policy = rowscan.KeepBeacons
	}
	return solver.Options{Row: cfg.Row, Bound: cfg.Bound, Workers: cfg.Workers, Beacons: policy}
}

// report prints both answers.
func report(w io.Writer, res solver.Resulter) error {
	freq, err := res.Frequency()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "part1: %d\npart2: %d\n", res.RowCoverage(), freq)
	return err
}

func solve(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	readings, err := parse.Parse(in)
	if err != nil {
		return err
	}
	res := solver.New(readings, options(cfg)).Run(ctx)
	return report(out, res)
}

func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), nil
	}
	return os.Open(path)
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath  string
		row, bound  int64
		workers     int
		keepBeacons bool
		logLevel    string
	)

	cmd := &cobra.Command{
		Use:   "beaconsearch [input]",
		Short: "Search sensor reports for the position of the distress beacon",
		Long: `beaconsearch reads sensor reports, one per line:

  Sensor at x=2, y=18: closest beacon is at x=-2, y=15

and prints the number of cells of --row where no undiscovered beacon can be
(part1) and the tuning frequency x*4000000+y of the single point of the square
(0,0)-(bound,bound) no sensor covers (part2).`,
		Example: `  # Solve the puzzle input
  beaconsearch input.txt

  # Solve the example
  beaconsearch --row 10 --bound 20 testdata/example.txt`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("row") {
				cfg.Row = row
			}
			if flags.Changed("bound") {
				cfg.Bound = bound
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if flags.Changed("keep-beacons") {
				cfg.KeepBeacons = keepBeacons
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			} else if env := os.Getenv("LOG_LEVEL"); env != "" {
				cfg.LogLevel = env
			}
			if len(args) > 0 {
				cfg.Input = args[0]
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			setupLogging(cfg.LogLevel)
			ctx := log.Logger.WithContext(cmd.Context())

			in, err := openInput(cfg.Input, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer in.Close()

			log.Debug().Str("input", cfg.Input).Int64("row", cfg.Row).Int64("bound", cfg.Bound).Msg("solving")
			return solve(ctx, cfg, in, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file path")
	flags.Int64Var(&row, "row", config.DefaultRow, "row scanned for covered cells")
	flags.Int64Var(&bound, "bound", config.DefaultBound, "side of the search square (0,0)-(bound,bound)")
	flags.IntVarP(&workers, "workers", "w", 0, "number of search goroutines, 0 searches sequentially")
	flags.BoolVar(&keepBeacons, "keep-beacons", false, "count row cells holding known beacons")
	flags.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	setupLogging(os.Getenv("LOG_LEVEL"))
	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("beaconsearch failed")
		os.Exit(1)
	}
}
