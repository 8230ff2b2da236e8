// Package geom provides integer plane points, Manhattan distances and axis-aligned regions.
package geom

import (
	"errors"
	"fmt"
	"hash/maphash"

	"golang.org/x/exp/constraints"
)

// FrequencyMultiplier is the x factor of the tuning frequency encoding.
const FrequencyMultiplier int64 = 4_000_000

// ErrInvertedRegion is returned by NewRegion for bounds with x1 > x2 or y1 > y2.
var ErrInvertedRegion = errors.New("inverted region bounds")

// Abs returns the absolute value of x.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Point is an integer point of the plane.
type Point struct {
	X, Y int64
}

func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b Point) int64 { return Abs(a.X-b.X) + Abs(a.Y-b.Y) }

// TuningFrequency encodes p as p.X*4_000_000 + p.Y.
func TuningFrequency(p Point) int64 { return p.X*FrequencyMultiplier + p.Y }

// Region is a closed axis-aligned rectangle of integer points.
type Region struct {
	X1, Y1, X2, Y2 int64
}

// NewRegion returns the region spanned by (x1,y1) and (x2,y2).
func NewRegion(x1, y1, x2, y2 int64) (Region, error) {
	if x1 > x2 || y1 > y2 {
		return Region{}, fmt.Errorf("%w: (%d,%d)-(%d,%d)", ErrInvertedRegion, x1, y1, x2, y2)
	}
	return Region{X1: x1, Y1: y1, X2: x2, Y2: y2}, nil
}

// Square returns the region (0,0)-(n,n).
func Square(n int64) Region { return Region{X2: n, Y2: n} }

func (r Region) String() string { return fmt.Sprintf("(%d,%d)-(%d,%d)", r.X1, r.Y1, r.X2, r.Y2) }

// Empty reports whether r contains no point.
func (r Region) Empty() bool { return r.X1 > r.X2 || r.Y1 > r.Y2 }

// IsPoint reports whether r degenerates to a single point.
func (r Region) IsPoint() bool { return r.X1 == r.X2 && r.Y1 == r.Y2 }

// Width returns the number of columns of r.
func (r Region) Width() int64 {
	if r.Empty() {
		return 0
	}
	return r.X2 - r.X1 + 1
}

// Height returns the number of rows of r.
func (r Region) Height() int64 {
	if r.Empty() {
		return 0
	}
	return r.Y2 - r.Y1 + 1
}

// Area returns the number of points in r.
func (r Region) Area() int64 { return r.Width() * r.Height() }

// Contains reports whether p lies inside r.
func (r Region) Contains(p Point) bool {
	return p.X >= r.X1 && p.X <= r.X2 && p.Y >= r.Y1 && p.Y <= r.Y2
}

// Overlaps reports whether r and o share at least one point.
func (r Region) Overlaps(o Region) bool {
	return !r.Empty() && !o.Empty() &&
		r.X1 <= o.X2 && o.X1 <= r.X2 && r.Y1 <= o.Y2 && o.Y1 <= r.Y2
}

// Corners returns the four corners of r.
func (r Region) Corners() [4]Point {
	return [4]Point{{r.X1, r.Y1}, {r.X1, r.Y2}, {r.X2, r.Y1}, {r.X2, r.Y2}}
}

// mid returns floor((lo+hi)/2) for lo <= hi without overflowing.
func mid(lo, hi int64) int64 { return lo + (hi-lo)/2 }

// Quadrants splits r at its floored midpoint into
// (x1,y1,mx,my), (x1,my+1,mx,y2), (mx+1,y1,x2,my) and (mx+1,my+1,x2,y2).
// The non-empty quadrants tile r exactly. Quadrants beyond the right or
// bottom edge are empty when r is one column wide or one row high.
func (r Region) Quadrants() [4]Region {
	mx, my := mid(r.X1, r.X2), mid(r.Y1, r.Y2)
	return [4]Region{
		{r.X1, r.Y1, mx, my},
		{r.X1, my + 1, mx, r.Y2},
		{mx + 1, r.Y1, r.X2, my},
		{mx + 1, my + 1, r.X2, r.Y2},
	}
}

// Hash returns a hash value of r.
func (r Region) Hash(seed maphash.Seed) uint64 { return maphash.Comparable(seed, r) }
