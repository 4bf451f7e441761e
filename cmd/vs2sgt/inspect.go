// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/vs2sgt/internal/convert"
	"github.com/pdiddy/vs2sgt/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [--format text|yaml|json] <vs_file> <first_shot> <last_shot> <first_geophone> <last_geophone> <shot_spacing>",
	Short: "Check a .vs file against the survey geometry without writing output",
	Long: `Inspect parses and validates a .vs file exactly as a conversion would,
then prints a summary: header values, shot and pick counts, picks per shot,
the traveltime range and the station layout. Nothing is written to disk.`,
	Args: cobra.MinimumNArgs(6),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	geom, err := parseGeometry(args[1:6])
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	cmd.SilenceUsage = true

	summary, err := convert.InspectFile(args[0], geom, logWriter(cmd, cliConfig()))
	if err != nil {
		return err
	}
	return formatSummary(cmd.OutOrStdout(), summary, types.OutputFormat(format))
}

func formatSummary(w io.Writer, s types.Summary, format types.OutputFormat) error {
	switch format {
	case types.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case types.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	case types.FormatText, "":
	default:
		return fmt.Errorf("unsupported format %q: use text, yaml or json", format)
	}

	fmt.Fprintf(w, "Title:            %s\n", s.Title)
	fmt.Fprintf(w, "Shots:            %d (header declares %d)\n", s.Shots, s.DeclaredShots)
	fmt.Fprintf(w, "Geophone spacing: %g\n", s.PhoneSpacing)
	fmt.Fprintf(w, "Observations:     %d\n", s.Observations)
	if s.Skipped > 0 {
		fmt.Fprintf(w, "Skipped lines:    %d (unknown marker)\n", s.Skipped)
	}
	if s.TerminatorLine > 0 {
		fmt.Fprintf(w, "End of picks:     line %d\n", s.TerminatorLine)
	} else {
		fmt.Fprintln(w, "End of picks:     end of file (no 0 0 line)")
	}
	if s.Observations > 0 {
		fmt.Fprintf(w, "Traveltime:       %.6f to %.6f s\n", s.MinTime, s.MaxTime)
	}
	fmt.Fprintf(w, "Stations:         %d declared, %d rows (%d lead shots, %d geophones, %d trail shots)\n",
		s.DeclaredStations, s.StationRows, s.LeadShots, s.Geophones, s.TrailShots)

	if len(s.PicksPerShot) > 0 {
		fmt.Fprintf(w, "\n%-6s  %s\n", "Shot", "Picks")
		for i, n := range s.PicksPerShot {
			fmt.Fprintf(w, "%-6d  %d\n", i, n)
		}
	}
	return nil
}

func init() {
	inspectCmd.Flags().String("format", "text", "output format: text, yaml or json")
	inspectCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(inspectCmd)
}
