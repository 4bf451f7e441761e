// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sgt

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pdiddy/vs2sgt/pkg/types"
)

// Write renders the station section followed by the observation section.
//
//	<N> # shot/geophone points
//	x y
//	<x> <y>            (2 decimals)
//	<M> # measurements
//	# s g t
//	<s> <g> <t>        (t in seconds, 6 decimals)
func Write(w io.Writer, layout types.StationLayout, obs []types.Observation) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d # shot/geophone points\n", layout.Declared)
	bw.WriteString("x y\n")
	for _, s := range layout.Stations {
		fmt.Fprintf(bw, "%.2f %.2f\n", s.X, s.Y)
	}

	fmt.Fprintf(bw, "%d # measurements\n", len(obs))
	bw.WriteString("# s g t\n")
	for _, o := range obs {
		fmt.Fprintf(bw, "%d %d %.6f\n", o.Shot, o.Geophone, o.Time)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing sgt: %w", err)
	}
	return nil
}
