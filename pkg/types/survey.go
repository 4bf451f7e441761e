// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data shared between the parser, the writer, the
// catalog and the CLI.
package types

// Geometry describes the survey line for one conversion. Positions are
// distances along a straight 1-D line, in the same unit as the .vs file.
type Geometry struct {
	// FirstShot is the position of shot index 0.
	FirstShot float64 `json:"first_shot" yaml:"first_shot"`

	// LastShot is the position of the final shot.
	LastShot float64 `json:"last_shot" yaml:"last_shot" validate:"gtefield=FirstShot"`

	// FirstGeophone is the position of the first receiver on the spread.
	FirstGeophone float64 `json:"first_geophone" yaml:"first_geophone"`

	// LastGeophone is the position of the last receiver on the spread.
	LastGeophone float64 `json:"last_geophone" yaml:"last_geophone" validate:"gtefield=FirstGeophone"`

	// ShotSpacing is the distance between consecutive shots.
	ShotSpacing float64 `json:"shot_spacing" yaml:"shot_spacing" validate:"gt=0"`
}

// ShotPosition returns the expected location of the shot with the given index.
func (g Geometry) ShotPosition(index int) float64 {
	return g.FirstShot + float64(index)*g.ShotSpacing
}

// Header is the two-line preamble of a .vs file.
type Header struct {
	// Title is the raw first line. It carries no data the converter uses.
	Title string `json:"title" yaml:"title"`

	// NumShots is the shot count declared on line 2. It is informational and
	// never checked against the shot markers actually present.
	NumShots int `json:"num_shots" yaml:"num_shots"`

	// PhoneSpacing is the geophone spacing declared on line 2. It is the only
	// spacing used to index geophones.
	PhoneSpacing float64 `json:"phone_spacing" yaml:"phone_spacing"`
}

// Observation is one shot/geophone/traveltime triple of the .sgt file.
type Observation struct {
	Shot     int     `json:"s" yaml:"s"`
	Geophone int     `json:"g" yaml:"g"`
	Time     float64 `json:"t" yaml:"t"` // seconds
}

// Station is one shot or geophone position. Y is always zero for a line survey.
type Station struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Picks is everything read from a .vs file in one pass.
type Picks struct {
	Header Header

	// Shots is the number of shot markers consumed.
	Shots int

	// Observations holds the geophone picks in input order.
	Observations []Observation

	// Skipped counts three-field lines whose marker was neither 0 nor 1.
	Skipped int

	// TerminatorLine is the 1-based line number of the "0 0" end sentinel,
	// or 0 when the input ran out first.
	TerminatorLine int
}

// StationLayout is the station section of an .sgt file.
type StationLayout struct {
	// Declared is the count written on the "# shot/geophone points" line.
	Declared int `json:"declared" yaml:"declared"`

	LeadShots  int `json:"lead_shots" yaml:"lead_shots"`
	Geophones  int `json:"geophones" yaml:"geophones"`
	TrailShots int `json:"trail_shots" yaml:"trail_shots"`

	// Stations is in output order; a station's index is its position here.
	Stations []Station `json:"stations" yaml:"stations"`
}
