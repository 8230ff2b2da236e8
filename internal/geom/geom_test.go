package geom

import (
	"errors"
	"hash/maphash"
	"testing"
)

func TestManhattan(t *testing.T) {
	tests := []struct {
		a, b Point
		want int64
	}{
		{Point{0, 0}, Point{0, 0}, 0},
		{Point{8, 7}, Point{2, 10}, 9},
		{Point{-3, 4}, Point{3, -4}, 14},
		{Point{-2_000_000, 0}, Point{2_000_000, 3}, 4_000_003},
	}

	for _, test := range tests {
		if got := Manhattan(test.a, test.b); got != test.want {
			t.Errorf("Manhattan(%v, %v) = %d; want %d", test.a, test.b, got, test.want)
		}
		if got := Manhattan(test.b, test.a); got != test.want {
			t.Errorf("Manhattan(%v, %v) = %d; want %d", test.b, test.a, got, test.want)
		}
	}
}

func TestTuningFrequency(t *testing.T) {
	tests := []struct {
		p    Point
		want int64
	}{
		{Point{14, 11}, 56_000_011},
		{Point{4_000_000, 4_000_000}, 16_000_004_000_000},
	}

	for _, test := range tests {
		if got := TuningFrequency(test.p); got != test.want {
			t.Errorf("TuningFrequency(%v) = %d; want %d", test.p, got, test.want)
		}
	}
}

func TestNewRegion(t *testing.T) {
	if _, err := NewRegion(3, 0, 2, 5); !errors.Is(err, ErrInvertedRegion) {
		t.Fatalf("got error %v; want %v", err, ErrInvertedRegion)
	}
	r, err := NewRegion(1, 1, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !r.IsPoint() {
		t.Fatalf("%v should be a point", r)
	}
}

// checkTiling verifies that the non-empty quadrants of r cover r exactly once.
func checkTiling(t *testing.T, r Region) {
	t.Helper()

	var area int64
	quads := r.Quadrants()
	for i, q := range quads {
		if q.Empty() {
			continue
		}
		area += q.Area()
		if !r.Overlaps(q) || q.X1 < r.X1 || q.X2 > r.X2 || q.Y1 < r.Y1 || q.Y2 > r.Y2 {
			t.Errorf("%v: quadrant %v leaves parent", r, q)
		}
		for _, o := range quads[i+1:] {
			if q.Overlaps(o) {
				t.Errorf("%v: quadrants %v and %v overlap", r, q, o)
			}
		}
	}
	if area != r.Area() {
		t.Errorf("%v: quadrant area %d; want %d", r, area, r.Area())
	}
}

func TestQuadrantsTiling(t *testing.T) {
	regions := []Region{
		Square(20),
		Square(4_000_000),
		{0, 0, 1, 1},
		{5, 5, 5, 9},
		{5, 5, 9, 5},
		{-3, -3, -2, -2},
		{-7, -1, 4, 0},
		{-4_000_000, -5, 3, 11},
	}

	for _, r := range regions {
		checkTiling(t, r)
	}

	// exhaustively walk a small square down to single points
	work := []Region{{-3, -2, 6, 7}}
	var points int64
	for len(work) > 0 {
		r := work[len(work)-1]
		work = work[:len(work)-1]
		checkTiling(t, r)
		if r.IsPoint() {
			points++
			continue
		}
		for _, q := range r.Quadrants() {
			if !q.Empty() {
				work = append(work, q)
			}
		}
	}
	if points != 100 {
		t.Fatalf("reached %d points; want 100", points)
	}
}

func TestQuadrantsShrink(t *testing.T) {
	// negative coordinates must still split at the floored midpoint
	r := Region{-3, -3, -2, -2}
	want := [4]Region{{-3, -3, -3, -3}, {-3, -2, -3, -2}, {-2, -3, -2, -3}, {-2, -2, -2, -2}}
	if got := r.Quadrants(); got != want {
		t.Fatalf("Quadrants(%v) = %v; want %v", r, got, want)
	}
}

func TestCorners(t *testing.T) {
	r := Region{1, 2, 3, 4}
	want := [4]Point{{1, 2}, {1, 4}, {3, 2}, {3, 4}}
	if got := r.Corners(); got != want {
		t.Fatalf("Corners(%v) = %v; want %v", r, got, want)
	}
	p := Region{7, 7, 7, 7}
	for _, c := range p.Corners() {
		if c != (Point{7, 7}) {
			t.Fatalf("corner %v of point region %v", c, p)
		}
	}
}

func TestHash(t *testing.T) {
	seed := maphash.MakeSeed()
	a, b := Region{0, 0, 10, 10}, Region{0, 0, 10, 10}
	if a.Hash(seed) != b.Hash(seed) {
		t.Fatal("equal regions hash differently")
	}
}
