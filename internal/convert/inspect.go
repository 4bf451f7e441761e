// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/vs2sgt/pkg/types"
)

// InspectFile parses the .vs file at vsPath against geom and summarizes it
// without writing any output.
func InspectFile(vsPath string, geom types.Geometry, log io.Writer) (types.Summary, error) {
	f, err := os.Open(vsPath)
	if err != nil {
		return types.Summary{}, fmt.Errorf("opening %s: %w", vsPath, err)
	}
	defer f.Close()

	res, err := Read(f, geom, log)
	if err != nil {
		return types.Summary{}, fmt.Errorf("inspecting %s: %w", vsPath, err)
	}
	return Summarize(res), nil
}

// Summarize reports counts and traveltime bounds for a parsed result.
func Summarize(res *Result) types.Summary {
	p := res.Picks
	s := types.Summary{
		Title:            p.Header.Title,
		DeclaredShots:    p.Header.NumShots,
		Shots:            p.Shots,
		PhoneSpacing:     p.Header.PhoneSpacing,
		Observations:     len(p.Observations),
		Skipped:          p.Skipped,
		TerminatorLine:   p.TerminatorLine,
		PicksPerShot:     make([]int, p.Shots),
		DeclaredStations: res.Layout.Declared,
		StationRows:      len(res.Layout.Stations),
		LeadShots:        res.Layout.LeadShots,
		Geophones:        res.Layout.Geophones,
		TrailShots:       res.Layout.TrailShots,
	}
	for i, o := range p.Observations {
		s.PicksPerShot[o.Shot]++
		if i == 0 || o.Time < s.MinTime {
			s.MinTime = o.Time
		}
		if i == 0 || o.Time > s.MaxTime {
			s.MaxTime = o.Time
		}
	}
	return s
}
