// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionRun records one successful conversion in the catalog.
type ConversionRun struct {
	// ID is assigned by the catalog on insert.
	ID int64 `json:"id" yaml:"id"`

	// VSPath and SGTPath are the input and output files as given on the command line.
	VSPath  string `json:"vs_path" yaml:"vs_path"`
	SGTPath string `json:"sgt_path" yaml:"sgt_path"`

	Geometry Geometry `json:"geometry" yaml:"geometry"`

	// DeclaredShots is the header's shot count; Shots is the number of
	// shot markers actually read.
	DeclaredShots int     `json:"declared_shots" yaml:"declared_shots"`
	Shots         int     `json:"shots" yaml:"shots"`
	PhoneSpacing  float64 `json:"phone_spacing" yaml:"phone_spacing"`
	Observations  int     `json:"observations" yaml:"observations"`
	Stations      int     `json:"stations" yaml:"stations"`

	ConvertedAt time.Time `json:"converted_at" yaml:"converted_at"`
}

// Summary describes a parsed .vs file without converting it.
type Summary struct {
	Title         string  `json:"title" yaml:"title"`
	DeclaredShots int     `json:"declared_shots" yaml:"declared_shots"`
	Shots         int     `json:"shots" yaml:"shots"`
	PhoneSpacing  float64 `json:"phone_spacing" yaml:"phone_spacing"`
	Observations  int     `json:"observations" yaml:"observations"`
	Skipped       int     `json:"skipped" yaml:"skipped"`

	// TerminatorLine is 0 when the file has no "0 0" sentinel.
	TerminatorLine int `json:"terminator_line" yaml:"terminator_line"`

	// PicksPerShot is indexed by shot index.
	PicksPerShot []int `json:"picks_per_shot" yaml:"picks_per_shot"`

	MinTime float64 `json:"min_time" yaml:"min_time"`
	MaxTime float64 `json:"max_time" yaml:"max_time"`

	DeclaredStations int `json:"declared_stations" yaml:"declared_stations"`
	StationRows      int `json:"station_rows" yaml:"station_rows"`
	LeadShots        int `json:"lead_shots" yaml:"lead_shots"`
	Geophones        int `json:"geophones" yaml:"geophones"`
	TrailShots       int `json:"trail_shots" yaml:"trail_shots"`
}
