// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/tripconv/internal/platform"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [receipt.pdf]",
	Short: "Detect the ride-hailing platform behind a PDF receipt",
	Long: `Inspect reads the receipt's text layer, identifies the issuing platform
from its title markers, and reports the declared trip count and page count
without extracting the table.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	meta, err := platform.Detect(args[0])
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	}

	fmt.Printf("platform:   %s\n", meta.Platform)
	fmt.Printf("trip count: %d\n", meta.TripCount)
	fmt.Printf("pages:      %d\n", meta.Pages)
	return nil
}

func init() {
	inspectCmd.Flags().Bool("json", false, "output metadata as JSON")

	rootCmd.AddCommand(inspectCmd)
}
