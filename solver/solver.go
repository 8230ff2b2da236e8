// Package solver answers both sensor coverage queries for a list of readings.
package solver

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sensorgrid/beaconsearch/internal/parse"
	"github.com/sensorgrid/beaconsearch/internal/rowscan"
	"github.com/sensorgrid/beaconsearch/internal/search"
	"github.com/sensorgrid/beaconsearch/internal/sensor"
)

// Options are the caller supplied parameters of both queries.
type Options struct {
	Row     int64          // row scanned for covered cells
	Bound   int64          // search square (0,0)-(Bound,Bound)
	Workers int            // 0: sequential search
	Beacons rowscan.Policy // known beacon handling of the row scan
}

type Runner interface {
	Run(ctx context.Context) Resulter
}

var (
	_ Runner = (*sequential)(nil)
	_ Runner = (*parallel)(nil)
)

type base struct {
	set  *sensor.Set
	opts Options
}

type sequential struct{ base }

type parallel struct{ base }

// New returns a Runner for readings. A positive opts.Workers selects the
// concurrent quadrant search.
func New(readings []parse.Reading, opts Options) Runner {
	b := base{set: sensor.NewSet(readings), opts: opts}
	if opts.Workers > 0 {
		return &parallel{b}
	}
	return &sequential{b}
}

func (s *sequential) Run(ctx context.Context) Resulter {
	return s.run(ctx, func(ctx context.Context) (search.Result, error) {
		return search.Find(ctx, s.set, s.opts.Bound)
	})
}

func (s *parallel) Run(ctx context.Context) Resulter {
	return s.run(ctx, func(ctx context.Context) (search.Result, error) {
		return search.FindParallel(ctx, s.set, s.opts.Bound, s.opts.Workers)
	})
}

func (b *base) run(ctx context.Context, find func(ctx context.Context) (search.Result, error)) Resulter {
	logger := zerolog.Ctx(ctx)

	start := time.Now()
	r := &result{rowCoverage: rowscan.Count(b.set, b.opts.Row, b.opts.Beacons)}
	logger.Info().
		Int("sensors", b.set.Len()).
		Int64("row", b.opts.Row).
		Stringer("policy", b.opts.Beacons).
		Int64("covered", r.rowCoverage).
		Dur("took", time.Since(start)).
		Msg("row scanned")

	start = time.Now()
	r.search, r.err = find(ctx)
	logger.Info().
		Int64("bound", b.opts.Bound).
		Int("workers", b.opts.Workers).
		Int("visited", r.search.Stats.Visited).
		Int("pruned", r.search.Stats.Pruned).
		Int("depth", r.search.Stats.Depth).
		Dur("took", time.Since(start)).
		AnErr("error", r.err).
		Msg("search finished")
	return r
}
