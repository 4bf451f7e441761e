// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns a .vs pick file into an .sgt file: it validates the
// survey geometry, parses the picks, lays out the stations and writes the
// result. A failed conversion writes nothing.
package convert

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/vs2sgt/internal/sgt"
	"github.com/pdiddy/vs2sgt/internal/vs"
	"github.com/pdiddy/vs2sgt/pkg/types"
)

// Result holds what a conversion read and wrote.
type Result struct {
	Picks  *types.Picks
	Layout types.StationLayout
}

// Observations returns the number of shot/geophone/traveltime triples written.
func (r *Result) Observations() int {
	return len(r.Picks.Observations)
}

// Run returns the catalog record for this result.
func (r *Result) Run(vsPath, sgtPath string, geom types.Geometry) types.ConversionRun {
	return types.ConversionRun{
		VSPath:        vsPath,
		SGTPath:       sgtPath,
		Geometry:      geom,
		DeclaredShots: r.Picks.Header.NumShots,
		Shots:         r.Picks.Shots,
		PhoneSpacing:  r.Picks.Header.PhoneSpacing,
		Observations:  r.Observations(),
		Stations:      r.Layout.Declared,
	}
}

// Read validates geom, parses the picks from r and computes the station
// layout. Progress messages go to log.
func Read(r io.Reader, geom types.Geometry, log io.Writer) (*Result, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	picks, err := vs.Parse(r, geom, log)
	if err != nil {
		return nil, err
	}
	return &Result{
		Picks:  picks,
		Layout: sgt.Layout(geom, picks.Header.PhoneSpacing),
	}, nil
}

// Convert reads a .vs stream from r and writes the .sgt document to w. The
// document is rendered in full before anything is written to w.
func Convert(r io.Reader, w io.Writer, geom types.Geometry, log io.Writer) (*Result, error) {
	res, err := Read(r, geom, log)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := sgt.Write(&buf, res.Layout, res.Picks.Observations); err != nil {
		return nil, err
	}
	if _, err := buf.WriteTo(w); err != nil {
		return nil, fmt.Errorf("writing sgt: %w", err)
	}
	return res, nil
}

// ConvertFile converts the .vs file at vsPath into sgtPath. The output file
// is only created once the whole input has parsed cleanly.
func ConvertFile(vsPath, sgtPath string, geom types.Geometry, log io.Writer) (*Result, error) {
	f, err := os.Open(vsPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", vsPath, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	res, err := Convert(f, &buf, geom, log)
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", vsPath, err)
	}

	fmt.Fprintln(log, "Writing to file")
	if err := os.WriteFile(sgtPath, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", sgtPath, err)
	}
	fmt.Fprintf(log, "Wrote %d observations to %s\n", res.Observations(), sgtPath)
	return res, nil
}
