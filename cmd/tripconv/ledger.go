// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/tripconv/internal/export"
	"github.com/pdiddy/tripconv/internal/ledger"
	"github.com/pdiddy/tripconv/internal/tableext"
	"github.com/pdiddy/tripconv/internal/trips"
	"github.com/pdiddy/tripconv/pkg/types"
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Accumulate trips from several receipts in a local database",
	Long: `Ledger stores normalized trips in a local SQLite database so a month's
receipts can be collected one by one. Use subcommands to import receipts,
list or total the stored trips, or export them as CSV.`,
}

// --- import subcommand ---

var ledgerImportCmd = &cobra.Command{
	Use:   "import [receipt.pdf]",
	Short: "Extract a receipt and add its trips to the ledger",
	Long: `Import runs the same extraction pipeline as report and inserts the
resulting trips. Re-importing a receipt is safe: trips already present
are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runLedgerImport,
}

func runLedgerImport(cmd *cobra.Command, args []string) error {
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

	store, err := openLedger(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	source := filepath.Base(args[0])
	summary, err := store.Import(context.Background(), source, meta.Platform, normalized)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d trips imported, %d already present\n", source, summary.Inserted, summary.Skipped)
	return nil
}

// --- list subcommand ---

var ledgerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the stored trips",
	RunE:  runLedgerList,
}

func runLedgerList(cmd *cobra.Command, args []string) error {
	store, err := openLedger(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(context.Background(), filterFromFlags(cmd))
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("Ledger is empty.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-10s  %-10s  %-12s  %-20s  %-20s  %8s\n",
		"Seq", "Date", "Platform", "Passenger", "Origin", "Destination", "Amount")
	for _, r := range records {
		fmt.Fprintf(os.Stdout, "%-4s  %-10s  %-10s  %-12s  %-20s  %-20s  %8s\n",
			r.Seq, r.Date, r.Platform, r.Passenger, r.Origin, r.Destination, r.Amount.StringFixed(2))
	}
	fmt.Fprintf(os.Stdout, "\n%d trips\n", len(records))
	return nil
}

// --- total subcommand ---

var ledgerTotalCmd = &cobra.Command{
	Use:   "total",
	Short: "Sum the fares of the stored trips",
	RunE:  runLedgerTotal,
}

func runLedgerTotal(cmd *cobra.Command, args []string) error {
	store, err := openLedger(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	total, err := store.Total(context.Background(), filterFromFlags(cmd))
	if err != nil {
		return err
	}

	fmt.Println(total.StringFixed(2))
	return nil
}

// --- export subcommand ---

var ledgerExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the stored trips as CSV",
	RunE:  runLedgerExport,
}

func runLedgerExport(cmd *cobra.Command, args []string) error {
	store, err := openLedger(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(context.Background(), filterFromFlags(cmd))
	if err != nil {
		return err
	}

	flat := make([]types.Trip, len(records))
	for i, r := range records {
		flat[i] = r.Trip
	}

	output, _ := cmd.Flags().GetString("output")
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	defer f.Close()

	if err := export.WriteTripsCSV(flat, f); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	fmt.Printf("Exported %d trips to %s\n", len(flat), output)
	return nil
}

// --- shared helpers ---

func openLedger(cmd *cobra.Command) (*ledger.Store, error) {
	dir, _ := cmd.Flags().GetString("ledger-dir")
	return ledger.NewStore(types.LedgerConfig{Dir: dir})
}

func filterFromFlags(cmd *cobra.Command) ledger.Filter {
	platformTag, _ := cmd.Flags().GetString("platform")
	passenger, _ := cmd.Flags().GetString("passenger")
	return ledger.Filter{
		Platform:  platformTag,
		Passenger: passenger,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	ledgerCmd.PersistentFlags().String("ledger-dir", "ledger", "directory holding the ledger database")
	ledgerCmd.PersistentFlags().String("platform", "", "filter by platform tag")
	ledgerCmd.PersistentFlags().String("passenger", "", "filter by passenger name")

	// Import flags.
	ledgerImportCmd.Flags().String("year", "", "year prefixed to receipt dates (receipts omit it)")
	ledgerImportCmd.Flags().String("rules", "", "YAML purpose rules file")
	ledgerImportCmd.Flags().Bool("keep-unmatched", true, "keep trips no purpose rule matches")

	// List flags.
	ledgerListCmd.Flags().Bool("json", false, "output trips as JSON")

	// Export flags.
	ledgerExportCmd.Flags().String("output", "trips.csv", "output CSV path")

	// Wire subcommands.
	ledgerCmd.AddCommand(ledgerImportCmd)
	ledgerCmd.AddCommand(ledgerListCmd)
	ledgerCmd.AddCommand(ledgerTotalCmd)
	ledgerCmd.AddCommand(ledgerExportCmd)

	rootCmd.AddCommand(ledgerCmd)
}
