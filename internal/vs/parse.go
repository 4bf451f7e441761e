// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vs reads first-arrival picks from the plotrefa/Geometrics .vs text
// format. Layer-interpretation records are not supported.
//
// A .vs file has a title line, a header line ("<tag> <num_shots>
// <phone_spacing>"), then three-field records "<location> <value> <marker>".
// Marker 0 starts a shot at location; marker 1 is a geophone pick with value
// as the traveltime in milliseconds. A two-field "0 0" line ends the picks.
package vs

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pdiddy/vs2sgt/pkg/types"
)

const (
	shotMarker = 0
	pickMarker = 1

	// headerLines is the number of lines before the first pick record.
	headerLines = 2

	maxLineSize = 1 << 20
)

// Parse reads a .vs stream and validates every record against geom. Parsing
// stops at the "0 0" sentinel or at end of input. Any malformed, out of
// sequence or out of range record aborts the parse; no partial result is
// returned. Progress messages are written to log.
func Parse(r io.Reader, geom types.Geometry, log io.Writer) (*types.Picks, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	header, err := parseHeader(sc)
	if err != nil {
		return nil, err
	}

	p := &types.Picks{Header: header}
	lineNum := headerLines
	for sc.Scan() {
		lineNum++
		fields := strings.Fields(sc.Text())

		if len(fields) != 3 {
			if !isTerminator(fields) {
				return nil, lineErr(lineNum, ErrFormat, "invalid line format: expected 3 fields, got %d", len(fields))
			}
			fmt.Fprintf(log, "Encountered end of observations at line %d\n", lineNum)
			p.TerminatorLine = lineNum
			break
		}

		marker, err := truncField(fields[2])
		if err != nil {
			return nil, lineErr(lineNum, ErrFormat, "marker %q: %v", fields[2], err)
		}

		switch marker {
		case shotMarker:
			if err := readShot(p, fields, geom, lineNum); err != nil {
				return nil, err
			}
		case pickMarker:
			if err := readPick(p, fields, geom, lineNum); err != nil {
				return nil, err
			}
		default:
			p.Skipped++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading line %d: %w", lineNum+1, err)
	}

	return p, nil
}

func parseHeader(sc *bufio.Scanner) (types.Header, error) {
	var lines [headerLines]string
	for i := range lines {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return types.Header{}, fmt.Errorf("reading header: %w", err)
			}
			return types.Header{}, lineErr(i+1, ErrFormat, "missing header line")
		}
		lines[i] = sc.Text()
	}

	fields := strings.Fields(lines[1])
	if len(fields) < 3 {
		return types.Header{}, lineErr(2, ErrFormat, "header needs 3 fields, got %d", len(fields))
	}
	numShots, err := strconv.Atoi(fields[1])
	if err != nil {
		return types.Header{}, lineErr(2, ErrFormat, "shot count %q is not an integer", fields[1])
	}
	spacing, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return types.Header{}, lineErr(2, ErrFormat, "geophone spacing %q is not a number", fields[2])
	}
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		return types.Header{}, lineErr(2, ErrFormat, "geophone spacing must be positive, got %s", fields[2])
	}

	return types.Header{
		Title:        strings.TrimSpace(lines[0]),
		NumShots:     numShots,
		PhoneSpacing: spacing,
	}, nil
}

// readShot checks a shot marker against the next expected shot position.
// The comparison is exact: a shot at first_shot + k*spacing must produce
// exactly k when divided back out.
func readShot(p *types.Picks, fields []string, geom types.Geometry, lineNum int) error {
	loc, err := finiteField(fields[0])
	if err != nil {
		return lineErr(lineNum, ErrFormat, "shot location %q: %v", fields[0], err)
	}
	index := (loc - geom.FirstShot) / geom.ShotSpacing
	if index != float64(p.Shots) {
		return lineErr(lineNum, ErrSequence,
			"shot number does not match expected: shot at %g is shot %g, expected shot %d at %g",
			loc, index, p.Shots, geom.ShotPosition(p.Shots))
	}
	p.Shots++
	return nil
}

// readPick appends a geophone pick to the most recently started shot. A pick
// before any shot marker has no zero-based shot index to take, so it is
// rejected as ErrSequence rather than filed under shot 0.
func readPick(p *types.Picks, fields []string, geom types.Geometry, lineNum int) error {
	loc, err := finiteField(fields[0])
	if err != nil {
		return lineErr(lineNum, ErrFormat, "geophone location %q: %v", fields[0], err)
	}
	ms, err := finiteField(fields[1])
	if err != nil {
		return lineErr(lineNum, ErrFormat, "traveltime %q: %v", fields[1], err)
	}
	if !(loc >= geom.FirstGeophone && loc <= geom.LastGeophone) {
		return lineErr(lineNum, ErrRange, "geophone location out of range: %g not in [%g, %g]",
			loc, geom.FirstGeophone, geom.LastGeophone)
	}
	if p.Shots == 0 {
		return lineErr(lineNum, ErrSequence, "geophone pick at %g precedes the first shot marker", loc)
	}

	p.Observations = append(p.Observations, types.Observation{
		Shot:     p.Shots - 1,
		Geophone: int(math.Trunc((loc - geom.FirstGeophone) / p.Header.PhoneSpacing)),
		Time:     ms / 1000,
	})
	return nil
}

// isTerminator reports whether a line that does not have three fields is the
// end-of-observations sentinel: its first two fields both truncate to zero.
func isTerminator(fields []string) bool {
	if len(fields) < 2 {
		return false
	}
	for _, f := range fields[:2] {
		n, err := truncField(f)
		if err != nil || n != 0 {
			return false
		}
	}
	return true
}

// truncField parses a numeric field and truncates it toward zero.
func truncField(s string) (int, error) {
	v, err := finiteField(s)
	if err != nil {
		return 0, err
	}
	return int(math.Trunc(v)), nil
}

// finiteField parses a numeric field, rejecting NaN and infinities.
func finiteField(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number")
	}
	return v, nil
}
