package rowscan

import (
	"math/rand/v2"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sensorgrid/beaconsearch/internal/geom"
	"github.com/sensorgrid/beaconsearch/internal/parse"
	"github.com/sensorgrid/beaconsearch/internal/sensor"
)

func exampleReadings(t *testing.T) []parse.Reading {
	t.Helper()

	f, err := os.Open("../../testdata/example.txt")
	require.NoError(t, err)
	defer f.Close()

	readings, err := parse.Parse(f)
	require.NoError(t, err)
	return readings
}

func TestCountExample(t *testing.T) {
	set := sensor.NewSet(exampleReadings(t))

	assert.Equal(t, int64(26), Count(set, 10, ExcludeBeacons))
	assert.Equal(t, int64(27), Count(set, 10, KeepBeacons))

	if diff := cmp.Diff([]Interval{{Lo: -2, Hi: 24}}, Merge(Intervals(set, 10))); diff != "" {
		t.Errorf("merged intervals mismatch (-want +got):\n%s", diff)
	}
}

// TestCountBruteForce compares Count with a cell by cell scan.
func TestCountBruteForce(t *testing.T) {
	set := sensor.NewSet(exampleReadings(t))

	for y := int64(-12); y <= 35; y++ {
		var want int64
		for x := int64(-40); x <= 60; x++ {
			if set.PointCovered(geom.Point{X: x, Y: y}) {
				want++
			}
		}
		if got := Count(set, y, KeepBeacons); got != want {
			t.Errorf("row %d: Count = %d; want %d", y, got, want)
		}
	}
}

func TestCountOrderIndependent(t *testing.T) {
	readings := exampleReadings(t)
	want := Count(sensor.NewSet(readings), 10, ExcludeBeacons)

	rnd := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 20; i++ {
		rnd.Shuffle(len(readings), func(i, j int) { readings[i], readings[j] = readings[j], readings[i] })
		if got := Count(sensor.NewSet(readings), 10, ExcludeBeacons); got != want {
			t.Fatalf("shuffle %d: Count = %d; want %d", i, got, want)
		}
	}
}

func TestCountDegenerate(t *testing.T) {
	set := sensor.NewSet([]parse.Reading{
		{Sensor: geom.Point{X: 3, Y: 4}, Beacon: geom.Point{X: 3, Y: 4}},
	})

	assert.Equal(t, int64(1), Count(set, 4, KeepBeacons))
	assert.Equal(t, int64(0), Count(set, 4, ExcludeBeacons))
	for _, y := range []int64{-1, 0, 3, 5, 2_000_000} {
		assert.Equal(t, int64(0), Count(set, y, KeepBeacons), "row %d", y)
	}
}

func TestCountEmpty(t *testing.T) {
	set := sensor.NewSet(nil)
	assert.Equal(t, int64(0), Count(set, 10, KeepBeacons))
	assert.Equal(t, int64(0), Count(set, 10, ExcludeBeacons))
}

func TestCountBeaconsOnRow(t *testing.T) {
	set := sensor.NewSet([]parse.Reading{
		{Sensor: geom.Point{X: 0, Y: 0}, Beacon: geom.Point{X: 1, Y: 0}},
		{Sensor: geom.Point{X: 10, Y: 5}, Beacon: geom.Point{X: 10, Y: 0}},
	})
	// [-1,1] and [10,10], each holding a beacon
	assert.Equal(t, int64(4), Count(set, 0, KeepBeacons))
	assert.Equal(t, int64(2), Count(set, 0, ExcludeBeacons))
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		in   []Interval
		want []Interval
	}{
		{"empty", nil, nil},
		{"disjoint", []Interval{{5, 7}, {0, 2}}, []Interval{{0, 2}, {5, 7}}},
		{"touching", []Interval{{3, 5}, {0, 2}}, []Interval{{0, 5}}},
		{"overlapping", []Interval{{0, 4}, {2, 9}, {-3, 1}}, []Interval{{-3, 9}}},
		{"nested", []Interval{{0, 10}, {2, 3}, {4, 4}}, []Interval{{0, 10}}},
		{"duplicate", []Interval{{1, 1}, {1, 1}}, []Interval{{1, 1}}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			in := append([]Interval(nil), test.in...)
			got := Merge(test.in)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Merge mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, in, test.in, "input modified")
		})
	}
}
