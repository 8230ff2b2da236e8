// Package search locates the single point of a bounding square that no
// sensor covers by splitting the square into quadrants and discarding every
// quadrant a single sensor covers completely.
package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sensorgrid/beaconsearch/internal/geom"
	"github.com/sensorgrid/beaconsearch/internal/sensor"
)

// ctxCheckInterval is the number of regions visited between context checks.
const ctxCheckInterval = 1 << 10

var (
	// ErrNoUncoveredPoint is returned when every point of the bounding
	// square is covered. Searching the same input again fails the same way.
	ErrNoUncoveredPoint = errors.New("precondition violated: no uncovered point in bound")
	ErrNegativeBound    = errors.New("negative bound")
)

// Stats describes the work done by a search.
type Stats struct {
	Visited int // regions taken from the worklist
	Pruned  int // regions covered by a single sensor
	Splits  int // regions split into quadrants
	Depth   int // deepest split level reached
}

// Result is the outcome of a successful search.
type Result struct {
	Point geom.Point
	Stats Stats
}

// Frequency returns the tuning frequency of the uncovered point.
func (r Result) Frequency() int64 { return geom.TuningFrequency(r.Point) }

type item struct {
	region geom.Region
	depth  int
}

func checkBound(bound int64) error {
	if bound < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeBound, bound)
	}
	return nil
}

// Find returns the point of (0,0)-(bound,bound) not covered by any sensor
// of set. Regions are kept on an explicit LIFO worklist.
func Find(ctx context.Context, set *sensor.Set, bound int64) (Result, error) {
	if err := checkBound(bound); err != nil {
		return Result{}, err
	}
	logger := zerolog.Ctx(ctx)

	var stats Stats
	work := []item{{region: geom.Square(bound)}}
	for len(work) > 0 {
		if stats.Visited%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Result{Stats: stats}, err
			}
		}

		it := work[len(work)-1]
		work = work[:len(work)-1]
		stats.Visited++
		stats.Depth = max(stats.Depth, it.depth)

		if set.Classify(it.region) == sensor.FullyCovered {
			stats.Pruned++
			continue
		}

		if it.region.IsPoint() {
			p := geom.Point{X: it.region.X1, Y: it.region.Y1}
			logger.Debug().
				Stringer("point", p).
				Int("visited", stats.Visited).
				Int("pruned", stats.Pruned).
				Int("depth", stats.Depth).
				Msg("uncovered point found")
			return Result{Point: p, Stats: stats}, nil
		}

		stats.Splits++
		for _, q := range it.region.Quadrants() {
			if !q.Empty() {
				work = append(work, item{region: q, depth: it.depth + 1})
			}
		}
	}

	logger.Error().Int64("bound", bound).Int("visited", stats.Visited).Msg("worklist exhausted")
	return Result{Stats: stats}, ErrNoUncoveredPoint
}
