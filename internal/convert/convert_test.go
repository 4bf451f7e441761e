// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/vs2sgt/internal/vs"
	"github.com/pdiddy/vs2sgt/pkg/types"
)

var (
	lineA = types.Geometry{FirstShot: 0, LastShot: 5, FirstGeophone: 10, LastGeophone: 15, ShotSpacing: 5}
	lineB = types.Geometry{FirstShot: 0, LastShot: 30, FirstGeophone: 10, LastGeophone: 20, ShotSpacing: 30}
)

func readGolden(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestConvertFile_Golden(t *testing.T) {
	tests := []struct {
		name     string
		geom     types.Geometry
		wantObs  int
		wantRows int
	}{
		{name: "line_a", geom: lineA, wantObs: 3, wantRows: 3},
		{name: "line_b", geom: lineB, wantObs: 6, wantRows: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sgtPath := filepath.Join(t.TempDir(), tt.name+".sgt")
			var log bytes.Buffer

			res, err := ConvertFile(filepath.Join("testdata", tt.name+".vs"), sgtPath, tt.geom, &log)
			if err != nil {
				t.Fatalf("ConvertFile: %v", err)
			}

			got, err := os.ReadFile(sgtPath)
			if err != nil {
				t.Fatalf("reading output: %v", err)
			}
			if want := readGolden(t, tt.name+".sgt"); string(got) != want {
				t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", got, want)
			}

			if res.Observations() != tt.wantObs {
				t.Errorf("Observations() = %d, want %d", res.Observations(), tt.wantObs)
			}
			if len(res.Layout.Stations) != tt.wantRows {
				t.Errorf("station rows = %d, want %d", len(res.Layout.Stations), tt.wantRows)
			}

			for _, line := range []string{
				"Encountered end of observations at line",
				"Writing to file",
				fmt.Sprintf("Wrote %d observations to %s", tt.wantObs, sgtPath),
			} {
				if !strings.Contains(log.String(), line) {
					t.Errorf("log %q does not contain %q", log.String(), line)
				}
			}
		})
	}
}

func TestConvertFile_FailureWritesNothing(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		geom     types.Geometry
		wantKind error
	}{
		{
			name:     "sequence",
			input:    "t\nH 2 5\n0 0 0\n10 1 1\n10 0 0\n0 0\n",
			geom:     lineA,
			wantKind: vs.ErrSequence,
		},
		{
			name:     "range",
			input:    "t\nH 2 5\n0 0 0\n20 1 1\n0 0\n",
			geom:     lineA,
			wantKind: vs.ErrRange,
		},
		{
			name:     "format",
			input:    "t\nH 2 5\n0 0 0\n10 1\n",
			geom:     lineA,
			wantKind: vs.ErrFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			vsPath := filepath.Join(dir, "in.vs")
			sgtPath := filepath.Join(dir, "out.sgt")
			if err := os.WriteFile(vsPath, []byte(tt.input), 0o644); err != nil {
				t.Fatal(err)
			}

			_, err := ConvertFile(vsPath, sgtPath, tt.geom, io.Discard)
			if !errors.Is(err, tt.wantKind) {
				t.Fatalf("err = %v, want %v", err, tt.wantKind)
			}
			if !strings.Contains(err.Error(), vsPath) {
				t.Errorf("error %q does not name the input file", err)
			}
			if _, statErr := os.Stat(sgtPath); !os.IsNotExist(statErr) {
				t.Errorf("output file exists after failed conversion (stat err: %v)", statErr)
			}
		})
	}
}

func TestConvertFile_MissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := ConvertFile(filepath.Join(dir, "nope.vs"), filepath.Join(dir, "out.sgt"), lineA, io.Discard)
	if err == nil {
		t.Fatal("expected error for missing input")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}

func TestConvert_InvalidGeometry(t *testing.T) {
	geom := lineA
	geom.ShotSpacing = 0

	var out bytes.Buffer
	_, err := Convert(strings.NewReader(readGolden(t, "line_a.vs")), &out, geom, io.Discard)
	if err == nil {
		t.Fatal("expected error for zero shot spacing")
	}
	if out.Len() != 0 {
		t.Errorf("wrote %d bytes despite invalid geometry", out.Len())
	}
}

func TestConvert_Stream(t *testing.T) {
	var out bytes.Buffer
	res, err := Convert(strings.NewReader(readGolden(t, "line_a.vs")), &out, lineA, io.Discard)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if want := readGolden(t, "line_a.sgt"); out.String() != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", out.String(), want)
	}

	run := res.Run("a.vs", "a.sgt", lineA)
	if run.Shots != 2 || run.DeclaredShots != 3 || run.Observations != 3 || run.Stations != 2 {
		t.Errorf("run counts = %+v", run)
	}
	if run.PhoneSpacing != 5 || run.Geometry != lineA {
		t.Errorf("run geometry = %+v, phone spacing %v", run.Geometry, run.PhoneSpacing)
	}
}

func TestInspectFile(t *testing.T) {
	s, err := InspectFile(filepath.Join("testdata", "line_b.vs"), lineB, io.Discard)
	if err != nil {
		t.Fatalf("InspectFile: %v", err)
	}

	if s.Title != "Line B refraction picks" {
		t.Errorf("Title = %q", s.Title)
	}
	if s.Shots != 2 || s.DeclaredShots != 2 {
		t.Errorf("shots = %d (declared %d), want 2 (2)", s.Shots, s.DeclaredShots)
	}
	if s.Observations != 6 || s.Skipped != 1 {
		t.Errorf("observations/skipped = %d/%d, want 6/1", s.Observations, s.Skipped)
	}
	if s.TerminatorLine != 12 {
		t.Errorf("TerminatorLine = %d, want 12", s.TerminatorLine)
	}
	if len(s.PicksPerShot) != 2 || s.PicksPerShot[0] != 3 || s.PicksPerShot[1] != 3 {
		t.Errorf("PicksPerShot = %v, want [3 3]", s.PicksPerShot)
	}
	if math.Abs(s.MinTime-0.0042) > 1e-12 || math.Abs(s.MaxTime-0.0099) > 1e-12 {
		t.Errorf("time range = %v..%v, want 0.0042..0.0099", s.MinTime, s.MaxTime)
	}
	if s.DeclaredStations != 5 || s.StationRows != 5 {
		t.Errorf("stations = %d declared, %d rows, want 5, 5", s.DeclaredStations, s.StationRows)
	}
	if s.LeadShots != 1 || s.Geophones != 3 || s.TrailShots != 1 {
		t.Errorf("layout = %d/%d/%d, want 1/3/1", s.LeadShots, s.Geophones, s.TrailShots)
	}
}

func TestSummarize_NoPicks(t *testing.T) {
	res, err := Read(strings.NewReader("t\nH 1 5\n0 0 0\n0 0\n"), lineA, io.Discard)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	s := Summarize(res)
	if s.Observations != 0 || s.MinTime != 0 || s.MaxTime != 0 {
		t.Errorf("summary = %+v", s)
	}
	if len(s.PicksPerShot) != 1 || s.PicksPerShot[0] != 0 {
		t.Errorf("PicksPerShot = %v, want [0]", s.PicksPerShot)
	}
}
