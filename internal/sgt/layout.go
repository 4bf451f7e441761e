// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sgt lays out survey stations and writes the pyGIMLi .sgt
// geometry+traveltime format.
package sgt

import (
	"math"

	"github.com/pdiddy/vs2sgt/pkg/types"
)

// Layout computes the station section for geom, with geophones phoneSpacing
// apart. Stations run from the lead shots before the spread, through every
// geophone, to the trailing shots after it.
//
// The row loop runs over 0..Declared inclusive and emits nothing on the row
// just after the last geophone, so the emitted row count can differ from
// Declared when LeadShots or TrailShots come out negative. Downstream readers
// index stations by row, so this is kept as is.
func Layout(geom types.Geometry, phoneSpacing float64) types.StationLayout {
	geophones := int(math.Trunc((geom.LastGeophone-geom.FirstGeophone)/phoneSpacing)) + 1
	lead := int(math.Ceil((geom.FirstGeophone - geom.FirstShot) / geom.ShotSpacing))
	trail := int(math.Ceil((geom.LastShot - geom.LastGeophone) / geom.ShotSpacing))
	declared := geophones + lead + trail

	l := types.StationLayout{
		Declared:   declared,
		LeadShots:  lead,
		Geophones:  geophones,
		TrailShots: trail,
	}
	if declared >= 0 {
		l.Stations = make([]types.Station, 0, declared+1)
	}

	remaining := trail - 1
	for row := 0; row <= declared; row++ {
		var x float64
		switch {
		case row < lead:
			x = float64(row)*geom.ShotSpacing + geom.FirstShot
		case row < lead+geophones:
			x = float64(row-lead)*phoneSpacing + geom.FirstGeophone
		case row > lead+geophones:
			x = geom.LastShot - float64(remaining)*geom.ShotSpacing
			remaining--
		default:
			continue
		}
		l.Stations = append(l.Stations, types.Station{X: x})
	}
	return l
}
