// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/tripconv/internal/report"
	"github.com/pdiddy/tripconv/internal/tableext"
	"github.com/pdiddy/tripconv/internal/trips"
	"github.com/pdiddy/tripconv/pkg/types"
)

var reportCmd = &cobra.Command{
	Use:   "report [receipt.pdf]",
	Short: "Render a DOCX reimbursement form from a PDF receipt",
	Long: `Report extracts the trip table, normalizes each trip (date, passenger,
origin, destination, fare), tags trips with a purpose from a YAML rules
file, and renders the reimbursement form with a total row as DOCX.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	engine, err := tableext.NewEngine(extractionConfig(cmd))
	if err != nil {
		return err
	}

	meta, table, err := trips.ExtractTable(engine, args[0])
	if err != nil {
		return err
	}

	normalized, err := normalizedTrips(cmd, meta.Platform, table)
	if err != nil {
		return err
	}
	if len(normalized) == 0 {
		return fmt.Errorf("no trips left after purpose tagging, nothing to report")
	}

	passenger, _ := cmd.Flags().GetString("passenger")
	date, _ := cmd.Flags().GetString("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	output, _ := cmd.Flags().GetString("output")

	if err := report.Write(normalized, report.Options{Preparer: passenger, Date: date}, output); err != nil {
		return err
	}

	fmt.Printf("%s: %d trips -> %s\n", meta.Platform, len(normalized), output)
	return nil
}

// normalizedTrips turns a repaired table into purpose-tagged trips using
// the shared report/ledger flags.
func normalizedTrips(cmd *cobra.Command, platformTag string, table types.Table) ([]types.Trip, error) {
	passenger, _ := cmd.Flags().GetString("passenger")
	year, _ := cmd.Flags().GetString("year")

	normalized := trips.Normalize(platformTag, table, trips.NormalizeOptions{
		Passenger: passenger,
		Year:      year,
	})

	rulesFile, _ := cmd.Flags().GetString("rules")
	rules, err := trips.LoadRules(rulesFile)
	if err != nil {
		return nil, err
	}
	keepUnmatched, _ := cmd.Flags().GetBool("keep-unmatched")
	return rules.Apply(normalized, keepUnmatched), nil
}

func init() {
	reportCmd.Flags().String("passenger", "", "passenger name printed in every trip row")
	reportCmd.Flags().String("year", "", "year prefixed to receipt dates (receipts omit it)")
	reportCmd.Flags().String("date", "", "form preparation date (default: today)")
	reportCmd.Flags().String("rules", "", "YAML purpose rules file")
	reportCmd.Flags().Bool("keep-unmatched", false, "keep trips no purpose rule matches")
	reportCmd.Flags().String("output", report.DefaultFileName, "output DOCX path")

	rootCmd.AddCommand(reportCmd)
}
