// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/tripconv/internal/export"
	"github.com/pdiddy/tripconv/internal/tableext"
	"github.com/pdiddy/tripconv/internal/trips"
)

var convertCmd = &cobra.Command{
	Use:   "convert [receipt.pdf]",
	Short: "Extract the trip table and write it as CSV or XLSX",
	Long: `Convert detects the platform, crops the receipt to its trip table,
repairs platform-specific layout damage, and writes the table as CSV
(UTF-8 with BOM) or as an XLSX workbook.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	engine, err := tableext.NewEngine(extractionConfig(cmd))
	if err != nil {
		return err
	}

	meta, table, err := trips.ExtractTable(engine, args[0])
	if err != nil {
		return err
	}

	outputType, _ := cmd.Flags().GetString("type")
	output, _ := cmd.Flags().GetString("output")

	path, err := export.Write(table, outputType, output)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d trips -> %s\n", meta.Platform, len(table.Rows), path)
	return nil
}

func init() {
	convertCmd.Flags().String("type", export.TypeCSV, "output format: csv or excel")
	convertCmd.Flags().String("output", "", "output path (default: output.csv / output.xlsx)")

	rootCmd.AddCommand(convertCmd)
}
