// Package sensor provides sensors with Manhattan coverage diamonds and coverage queries over a set of them.
package sensor

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/sensorgrid/beaconsearch/internal/geom"
	"github.com/sensorgrid/beaconsearch/internal/parse"
)

// Coverage is the outcome of testing a region against a sensor set.
type Coverage int

const (
	// PossiblyUncovered means no single sensor covers the whole region.
	// The region may still be covered by a union of sensors.
	PossiblyUncovered Coverage = iota
	// FullyCovered means one sensor covers every point of the region.
	FullyCovered
)

func (c Coverage) String() string {
	switch c {
	case PossiblyUncovered:
		return "possibly uncovered"
	case FullyCovered:
		return "fully covered"
	default:
		return fmt.Sprintf("Coverage(%d)", int(c))
	}
}

// Sensor covers all points within Radius of Location.
type Sensor struct {
	Location geom.Point
	Radius   int64 // Manhattan distance to the closest beacon
}

// New returns the sensor at location whose closest beacon is at beacon.
func New(location, beacon geom.Point) Sensor {
	return Sensor{Location: location, Radius: geom.Manhattan(location, beacon)}
}

// PointCovered reports whether p lies inside the coverage diamond of s.
func (s Sensor) PointCovered(p geom.Point) bool {
	return geom.Manhattan(s.Location, p) <= s.Radius
}

// RegionFullyCovered reports whether every point of r lies inside the
// coverage diamond of s.
//
// Manhattan distance to s.Location is convex, and a convex function over a
// rectangle attains its maximum at one of the corners. Testing the four
// corners is therefore exact.
func (s Sensor) RegionFullyCovered(r geom.Region) bool {
	for _, c := range r.Corners() {
		if !s.PointCovered(c) {
			return false
		}
	}
	return true
}

// RowSpan returns the half width of the diamond on row y, false if the
// diamond does not reach y.
func (s Sensor) RowSpan(y int64) (int64, bool) {
	vdist := geom.Abs(s.Location.Y - y)
	if vdist > s.Radius {
		return 0, false
	}
	return s.Radius - vdist, true
}

func (s Sensor) String() string { return fmt.Sprintf("sensor %v r=%d", s.Location, s.Radius) }

// Set is an immutable ordered collection of sensors together with the
// known beacon locations they were measured against.
type Set struct {
	sensors []Sensor
	beacons []geom.Point // distinct, first seen order
}

// NewSet builds a set from parsed readings.
func NewSet(readings []parse.Reading) *Set {
	set := &Set{sensors: make([]Sensor, 0, len(readings))}
	for _, r := range readings {
		set.sensors = append(set.sensors, New(r.Sensor, r.Beacon))
		if !slices.Contains(set.beacons, r.Beacon) {
			set.beacons = append(set.beacons, r.Beacon)
		}
	}
	return set
}

// Len returns the number of sensors.
func (s *Set) Len() int { return len(s.sensors) }

// Sensors returns a copy of the sensors in input order.
func (s *Set) Sensors() []Sensor { return slices.Clone(s.sensors) }

// Beacons returns a copy of the distinct known beacon locations.
func (s *Set) Beacons() []geom.Point { return slices.Clone(s.beacons) }

// BeaconsOnRow returns the distinct known beacons located on row y.
func (s *Set) BeaconsOnRow(y int64) []geom.Point {
	var beacons []geom.Point
	for _, b := range s.beacons {
		if b.Y == y {
			beacons = append(beacons, b)
		}
	}
	return beacons
}

// PointCovered reports whether any sensor covers p.
func (s *Set) PointCovered(p geom.Point) bool {
	for _, sensor := range s.sensors {
		if sensor.PointCovered(p) {
			return true
		}
	}
	return false
}

// RegionFullyCovered reports whether a single sensor covers all of r.
// A region covered only by the union of several sensors is not reported.
func (s *Set) RegionFullyCovered(r geom.Region) bool {
	return s.Classify(r) == FullyCovered
}

// Classify returns FullyCovered if a single sensor covers all of r.
func (s *Set) Classify(r geom.Region) Coverage {
	for _, sensor := range s.sensors {
		if sensor.RegionFullyCovered(r) {
			return FullyCovered
		}
	}
	return PossiblyUncovered
}
