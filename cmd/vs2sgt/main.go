// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the vs2sgt CLI, which converts
// plotrefa/Geometrics .vs first-arrival picks into pyGIMLi .sgt files.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/vs2sgt/internal/catalog"
	"github.com/pdiddy/vs2sgt/internal/convert"
	"github.com/pdiddy/vs2sgt/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd converts one .vs file. Subcommands inspect files and list the catalog.
var rootCmd = &cobra.Command{
	Use:   "vs2sgt <vs_file> <sgt_file> <first_shot> <last_shot> <first_geophone> <last_geophone> <shot_spacing>",
	Short: "Convert plotrefa .vs pick files to pyGIMLi .sgt files",
	Long: `vs2sgt parses a .vs file with first-arrival picks exported from Geometrics
plotrefa and writes the .sgt geometry and traveltime format read by pyGIMLi.
Layer information in .vs files is not supported.

Arguments:
  vs_file         path to the .vs file
  sgt_file        path to the .sgt file to write
  first_shot      first shot location
  last_shot       last shot location
  first_geophone  first geophone location
  last_geophone   last geophone location
  shot_spacing    distance between shots

Shots must appear in order at first_shot + n*shot_spacing, and every pick must
lie between first_geophone and last_geophone. Flags go before vs_file, so
negative locations can be passed as plain arguments.

The conversion is also refused when:
  - shot_spacing is not positive
  - last_shot is less than first_shot, or last_geophone less than first_geophone
  - the geophone spacing in the .vs header is not positive
  - a geophone pick comes before the first shot marker
  - a location or traveltime is NaN or infinite`,
	Args: cobra.MinimumNArgs(7),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	geom, err := parseGeometry(args[2:7])
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	cfg := cliConfig()
	vsPath, sgtPath := args[0], args[1]

	res, err := convert.ConvertFile(vsPath, sgtPath, geom, logWriter(cmd, cfg))
	if err != nil {
		return err
	}

	if !cfg.Catalog.Enabled() {
		return nil
	}
	store, err := catalog.NewStore(cfg.Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Record(cmd.Context(), res.Run(vsPath, sgtPath, geom))
	if err != nil {
		return err
	}
	fmt.Fprintf(logWriter(cmd, cfg), "Recorded run %d in %s\n", id, cfg.Catalog.Path)
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./vs2sgt.yaml or ~/.config/vs2sgt/vs2sgt.yaml)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress progress messages")
	rootCmd.PersistentFlags().String("catalog", "", "SQLite file recording each conversion (empty disables)")

	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("catalog.path", rootCmd.PersistentFlags().Lookup("catalog"))

	// Stop flag parsing at vs_file so "-10" is read as a location.
	rootCmd.Flags().SetInterspersed(false)
}

func initConfig() {
	// A missing .env is fine.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("vs2sgt")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "vs2sgt"))
		}
	}

	viper.SetEnvPrefix("VS2SGT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// cliConfig collects the settings resolved by viper from flags, environment
// and config file.
func cliConfig() types.CLIConfig {
	return types.CLIConfig{
		Quiet: viper.GetBool("quiet"),
		Catalog: types.CatalogConfig{
			Path: viper.GetString("catalog.path"),
		},
	}
}

// logWriter returns where progress messages go.
func logWriter(cmd *cobra.Command, cfg types.CLIConfig) io.Writer {
	if cfg.Quiet {
		return io.Discard
	}
	return cmd.ErrOrStderr()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
