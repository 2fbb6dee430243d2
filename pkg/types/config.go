// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractionBackend identifies the table extraction engine.
type ExtractionBackend string

const (
	// BackendGeometry reconstructs tables in-process from positioned text.
	BackendGeometry ExtractionBackend = "geometry"

	// BackendTabula pipes the PDF through a tabula container image.
	BackendTabula ExtractionBackend = "tabula"
)

// ExtractionConfig holds settings for the table extraction stage.
type ExtractionConfig struct {
	// Backend selects the extraction engine: geometry or tabula.
	Backend ExtractionBackend `json:"backend" yaml:"backend"`

	// TabulaImage is the container image used by the tabula backend.
	TabulaImage string `json:"tabula_image" yaml:"tabula_image"`
}

// ExportConfig holds settings for tabular output.
type ExportConfig struct {
	// Type is the output format: csv or excel.
	Type string `json:"type" yaml:"type"`

	// Output overrides the default output path (output.csv / output.xlsx).
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// ReportConfig holds settings for reimbursement report generation.
type ReportConfig struct {
	// Passenger is the rider name placed in every report row.
	Passenger string `json:"passenger" yaml:"passenger"`

	// Year prefixes trip dates, which platforms print without a year.
	Year string `json:"year" yaml:"year"`

	// Date is the report fill-in date (e.g. "2025.01.08").
	Date string `json:"date" yaml:"date"`

	// RulesFile is the YAML file mapping origin/destination pairs to
	// a trip purpose.
	RulesFile string `json:"rules_file,omitempty" yaml:"rules_file,omitempty"`

	// KeepUnmatched includes trips that match no purpose rule. When
	// false such trips are dropped from the report.
	KeepUnmatched bool `json:"keep_unmatched" yaml:"keep_unmatched"`
}

// LedgerConfig holds settings for the local trip ledger.
type LedgerConfig struct {
	// Dir is the directory holding the ledger database (default "ledger").
	Dir string `json:"dir" yaml:"dir"`
}
