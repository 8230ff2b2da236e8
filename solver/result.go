package solver

import (
	"github.com/sensorgrid/beaconsearch/internal/geom"
	"github.com/sensorgrid/beaconsearch/internal/search"
)

type Resulter interface {
	RowCoverage() int64
	Point() (geom.Point, error)
	Frequency() (int64, error)
	NumRegions() int
}

var _ Resulter = (*result)(nil)

type result struct {
	rowCoverage int64
	search      search.Result
	err         error
}

// RowCoverage returns the number of covered cells of the scanned row.
func (r *result) RowCoverage() int64 { return r.rowCoverage }

// Point returns the uncovered point of the search square.
func (r *result) Point() (geom.Point, error) {
	if r.err != nil {
		return geom.Point{}, r.err
	}
	return r.search.Point, nil
}

// Frequency returns the tuning frequency of the uncovered point.
func (r *result) Frequency() (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return r.search.Frequency(), nil
}

// NumRegions returns the number of regions the search visited.
func (r *result) NumRegions() int { return r.search.Stats.Visited }
