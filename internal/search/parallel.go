package search

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/sensorgrid/beaconsearch/internal/frontier"
	"github.com/sensorgrid/beaconsearch/internal/geom"
	"github.com/sensorgrid/beaconsearch/internal/sensor"
)

const partsPerWorker = 16

type parallel struct {
	set       *sensor.Set
	frontier  *frontier.Frontier
	numWorker int

	found atomic.Bool
	point geom.Point // written once by the worker winning found

	visited, pruned, splits atomic.Int64
}

// worker classifies the regions of every numWorker-th partition of the
// current level and pushes the quadrants of the surviving ones.
func (s *parallel) worker(ctx context.Context, idx int) error {
	numPart := s.frontier.NumPart()
	var visited, pruned, splits int64
	defer func() {
		s.visited.Add(visited)
		s.pruned.Add(pruned)
		s.splits.Add(splits)
	}()

	for j := idx; j < numPart; j += s.numWorker {
		for _, r := range s.frontier.Source(j) {
			if s.found.Load() {
				return nil
			}
			if visited%ctxCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			visited++

			if s.set.Classify(r) == sensor.FullyCovered {
				pruned++
				continue
			}
			if r.IsPoint() {
				if s.found.CompareAndSwap(false, true) {
					s.point = geom.Point{X: r.X1, Y: r.Y1}
				}
				return nil
			}
			splits++
			for _, q := range r.Quadrants() {
				if !q.Empty() {
					s.frontier.Push(q)
				}
			}
		}
	}
	return nil
}

func (s *parallel) stats(depth int) Stats {
	return Stats{
		Visited: int(s.visited.Load()),
		Pruned:  int(s.pruned.Load()),
		Splits:  int(s.splits.Load()),
		Depth:   depth,
	}
}

// FindParallel is like Find but evaluates the regions of one split level
// concurrently on numWorker goroutines. numWorker < 1 uses one worker per
// CPU. Whichever uncovered point is found first is returned.
func FindParallel(ctx context.Context, set *sensor.Set, bound int64, numWorker int) (Result, error) {
	if err := checkBound(bound); err != nil {
		return Result{}, err
	}
	if numWorker < 1 {
		numWorker = runtime.NumCPU()
	}
	logger := zerolog.Ctx(ctx)

	s := &parallel{
		set:       set,
		frontier:  frontier.New(geom.Square(bound), numWorker*partsPerWorker),
		numWorker: numWorker,
	}

	for level := 0; ; level++ {
		logger.Debug().Int("level", level).Int("regions", s.frontier.Len()).Msg("search level")

		g, gctx := errgroup.WithContext(ctx)
		for i := 0; i < numWorker; i++ {
			g.Go(func() error { return s.worker(gctx, i) })
		}
		if err := g.Wait(); err != nil {
			return Result{Stats: s.stats(level)}, err
		}

		if s.found.Load() {
			logger.Debug().Stringer("point", s.point).Int("level", level).Msg("uncovered point found")
			return Result{Point: s.point, Stats: s.stats(level)}, nil
		}

		if s.frontier.Swap() == 0 {
			logger.Error().Int64("bound", bound).Int("level", level).Msg("frontier exhausted")
			return Result{Stats: s.stats(level)}, ErrNoUncoveredPoint
		}
	}
}
