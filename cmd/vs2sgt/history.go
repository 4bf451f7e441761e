// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/vs2sgt/internal/catalog"
	"github.com/pdiddy/vs2sgt/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List conversions recorded in the catalog",
	Long: `History lists the most recent conversions recorded with --catalog,
newest first. Use "history export" to dump every run as YAML or JSON.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}
	return formatHistory(cmd.OutOrStdout(), runs, jsonOutput)
}

func formatHistory(w io.Writer, runs []types.ConversionRun, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(w, "No conversions recorded.")
		return nil
	}

	fmt.Fprintf(w, "%-5s  %-20s  %-30s  %-6s  %-6s  %s\n",
		"ID", "Converted", "Output", "Shots", "Obs", "Stations")
	fmt.Fprintln(w, strings.Repeat("-", 90))
	for _, r := range runs {
		out := r.SGTPath
		if len(out) > 30 {
			out = "..." + out[len(out)-27:]
		}
		fmt.Fprintf(w, "%-5d  %-20s  %-30s  %-6d  %-6d  %d\n",
			r.ID, r.ConvertedAt.UTC().Format("2006-01-02 15:04:05"), out,
			r.Shots, r.Observations, r.Stations)
	}
	fmt.Fprintf(w, "\n%d runs\n", len(runs))
	return nil
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every recorded conversion as YAML or JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		store, err := openCatalog()
		if err != nil {
			return err
		}
		defer store.Close()

		switch types.OutputFormat(format) {
		case types.FormatYAML, "":
			return store.ExportYAML(cmd.Context(), cmd.OutOrStdout())
		case types.FormatJSON:
			return store.ExportJSON(cmd.Context(), cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported format %q: use yaml or json", format)
		}
	},
}

func openCatalog() (*catalog.Store, error) {
	cfg := cliConfig()
	if !cfg.Catalog.Enabled() {
		return nil, fmt.Errorf("no catalog configured: pass --catalog, set VS2SGT_CATALOG_PATH or catalog.path in vs2sgt.yaml")
	}
	return catalog.NewStore(cfg.Catalog)
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")
	historyCmd.Flags().Bool("json", false, "output runs as JSON")

	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	historyCmd.AddCommand(historyExportCmd)
	rootCmd.AddCommand(historyCmd)
}
