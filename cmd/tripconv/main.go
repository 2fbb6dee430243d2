// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the tripconv CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/tripconv/internal/logging"
	"github.com/pdiddy/tripconv/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the tripconv CLI.
var rootCmd = &cobra.Command{
	Use:   "tripconv",
	Short: "Convert ride-hailing PDF receipts into expense tables and reports",
	Long: `tripconv reads electronic trip logs exported as PDF by Chinese ride-hailing
platforms (Didi, Gaode, Shouqi, Meituan, Huaxiaozhu), recovers the trip table,
and writes it as CSV, XLSX, or a DOCX reimbursement form.

Each operation is a subcommand: inspect detects the platform, convert extracts
the raw trip table, report renders the reimbursement form, and ledger
accumulates trips from several receipts in a local database.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		logging.Init(level)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./tripconv.yaml or ~/.config/tripconv/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().String("backend", string(types.BackendGeometry), "table extraction backend: geometry or tabula")
	rootCmd.PersistentFlags().String("tabula-image", "", "container image for the tabula backend")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tripconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "tripconv"))
		}
	}

	viper.SetEnvPrefix("TRIPCONV")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// extractionConfig builds the backend configuration from flags, falling
// back to config file values for anything not set on the command line.
func extractionConfig(cmd *cobra.Command) types.ExtractionConfig {
	backend, _ := cmd.Flags().GetString("backend")
	if !cmd.Flags().Changed("backend") && viper.IsSet("extraction.backend") {
		backend = viper.GetString("extraction.backend")
	}
	image, _ := cmd.Flags().GetString("tabula-image")
	if image == "" {
		image = viper.GetString("extraction.tabula_image")
	}
	return types.ExtractionConfig{
		Backend:     types.ExtractionBackend(backend),
		TabulaImage: image,
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
