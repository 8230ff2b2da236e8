// Package parse reads sensor reports of the form
//
//	Sensor at x=<int>, y=<int>: closest beacon is at x=<int>, y=<int>
//
// into sensor/beacon readings.
package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sensorgrid/beaconsearch/internal/geom"
)

const (
	sensorPrefix = "Sensor at "
	beaconSep    = ": closest beacon is at "
	coordSep     = ", "
)

var (
	ErrMissingMarker = errors.New("missing marker")
	ErrBadCoordinate = errors.New("bad coordinate")
)

// Error describes a line that could not be parsed.
type Error struct {
	Line int // 1-based, 0 if unknown
	Text string
	Err  error
}

func (e *Error) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("parse %q: %v", e.Text, e.Err)
	}
	return fmt.Sprintf("line %d: parse %q: %v", e.Line, e.Text, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Reading is one sensor together with its closest beacon.
type Reading struct {
	Sensor geom.Point
	Beacon geom.Point
}

// ParseLine parses a single sensor report.
func ParseLine(s string) (Reading, error) {
	text := strings.TrimSpace(s)

	rest, ok := strings.CutPrefix(text, sensorPrefix)
	if !ok {
		return Reading{}, &Error{Text: text, Err: fmt.Errorf("%w %q", ErrMissingMarker, sensorPrefix)}
	}
	sensorStr, beaconStr, ok := strings.Cut(rest, beaconSep)
	if !ok {
		return Reading{}, &Error{Text: text, Err: fmt.Errorf("%w %q", ErrMissingMarker, strings.TrimSpace(beaconSep))}
	}

	sensor, err := parsePoint(sensorStr)
	if err != nil {
		return Reading{}, &Error{Text: text, Err: fmt.Errorf("sensor: %w", err)}
	}
	beacon, err := parsePoint(beaconStr)
	if err != nil {
		return Reading{}, &Error{Text: text, Err: fmt.Errorf("beacon: %w", err)}
	}
	return Reading{Sensor: sensor, Beacon: beacon}, nil
}

// parsePoint parses "x=<int>, y=<int>".
func parsePoint(s string) (geom.Point, error) {
	xs, ys, ok := strings.Cut(s, coordSep)
	if !ok {
		return geom.Point{}, fmt.Errorf("%w %q", ErrMissingMarker, coordSep)
	}
	x, err := parseCoord(xs, "x=")
	if err != nil {
		return geom.Point{}, err
	}
	y, err := parseCoord(ys, "y=")
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Point{X: x, Y: y}, nil
}

func parseCoord(s, marker string) (int64, error) {
	v, ok := strings.CutPrefix(s, marker)
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrMissingMarker, marker)
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrBadCoordinate, v, err)
	}
	return n, nil
}

// Parse reads one report per line from r. Blank lines are skipped.
// It stops at the first malformed line.
func Parse(r io.Reader) ([]Reading, error) {
	var readings []Reading

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		reading, err := ParseLine(line)
		if err != nil {
			var perr *Error
			if errors.As(err, &perr) {
				perr.Line = lineNo
			}
			return nil, err
		}
		readings = append(readings, reading)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return readings, nil
}
