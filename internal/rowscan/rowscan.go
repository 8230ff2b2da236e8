// Package rowscan counts the cells of a single row covered by a sensor set.
package rowscan

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/sensorgrid/beaconsearch/internal/geom"
	"github.com/sensorgrid/beaconsearch/internal/sensor"
)

// Policy selects how known beacons on the scanned row are treated.
type Policy int

const (
	// KeepBeacons counts every covered cell.
	KeepBeacons Policy = iota
	// ExcludeBeacons does not count covered cells holding a known beacon.
	ExcludeBeacons
)

func (p Policy) String() string {
	switch p {
	case KeepBeacons:
		return "keep-beacons"
	case ExcludeBeacons:
		return "exclude-beacons"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Interval is a closed range [Lo, Hi] of x coordinates.
type Interval struct {
	Lo, Hi int64
}

// Len returns the number of cells in i.
func (i Interval) Len() int64 { return i.Hi - i.Lo + 1 }

// Contains reports whether x lies in i.
func (i Interval) Contains(x int64) bool { return x >= i.Lo && x <= i.Hi }

// Intervals returns the horizontal intersection of each sensor diamond
// with row y. Sensors not reaching y contribute nothing.
func Intervals(set *sensor.Set, y int64) []Interval {
	var intervals []Interval
	for _, s := range set.Sensors() {
		span, ok := s.RowSpan(y)
		if !ok {
			continue
		}
		intervals = append(intervals, Interval{Lo: s.Location.X - span, Hi: s.Location.X + span})
	}
	return intervals
}

// Merge returns the union of intervals as sorted, disjoint, non-adjacent
// intervals. The input is not modified.
func Merge(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := slices.Clone(intervals)
	slices.SortFunc(sorted, func(a, b Interval) int {
		if c := cmp.Compare(a.Lo, b.Lo); c != 0 {
			return c
		}
		return cmp.Compare(a.Hi, b.Hi)
	})

	merged := []Interval{sorted[0]}
	for _, i := range sorted[1:] {
		last := &merged[len(merged)-1]
		if i.Lo <= last.Hi+1 { // overlapping or touching
			last.Hi = max(last.Hi, i.Hi)
			continue
		}
		merged = append(merged, i)
	}
	return merged
}

// Count returns the number of distinct covered cells on row y. With
// ExcludeBeacons the known beacons on y are not counted.
func Count(set *sensor.Set, y int64, policy Policy) int64 {
	merged := Merge(Intervals(set, y))

	var n int64
	for _, i := range merged {
		n += i.Len()
	}

	if policy == ExcludeBeacons {
		for _, b := range set.BeaconsOnRow(y) {
			if covered(merged, b) {
				n--
			}
		}
	}
	return n
}

func covered(merged []Interval, p geom.Point) bool {
	idx, found := slices.BinarySearchFunc(merged, p.X, func(i Interval, x int64) int {
		switch {
		case i.Hi < x:
			return -1
		case i.Lo > x:
			return 1
		}
		return 0
	})
	return found && merged[idx].Contains(p.X)
}
