// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strconv"

	"github.com/pdiddy/vs2sgt/pkg/types"
)

var geometryArgNames = [5]string{"first_shot", "last_shot", "first_geophone", "last_geophone", "shot_spacing"}

// parseGeometry reads the five survey positions, in command-line order.
func parseGeometry(args []string) (types.Geometry, error) {
	if len(args) != len(geometryArgNames) {
		return types.Geometry{}, fmt.Errorf("expected %d geometry arguments, got %d", len(geometryArgNames), len(args))
	}
	var v [5]float64
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return types.Geometry{}, fmt.Errorf("%s: %q is not a number", geometryArgNames[i], a)
		}
		v[i] = f
	}
	return types.Geometry{
		FirstShot:     v[0],
		LastShot:      v[1],
		FirstGeophone: v[2],
		LastGeophone:  v[3],
		ShotSpacing:   v[4],
	}, nil
}
