// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tableext extracts trip tables from PDF receipts. Extraction is
// performed by pluggable engines: an in-process geometry engine that
// reconstructs tables from positioned text, and an external engine that
// pipes the PDF through a tabula container image.
package tableext

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/pdiddy/tripconv/internal/container"
	"github.com/pdiddy/tripconv/pkg/types"
)

// Options narrows what an engine extracts from a PDF.
type Options struct {
	// Region crops extraction to a rectangle in top-referenced PDF
	// points. nil scans the whole page.
	Region *types.Region

	// Stream selects whitespace-based column detection. When false,
	// engines prefer ruled lines and fall back to whitespace.
	Stream bool

	// FirstPageOnly restricts extraction to page 1.
	FirstPageOnly bool
}

// Engine extracts zero or more tables from the PDF at pdfPath.
type Engine interface {
	ExtractTables(pdfPath string, opts Options) ([]types.Table, error)
}

// NewEngine builds the engine selected by cfg. The geometry engine is the
// default; the tabula backend requires a working docker or podman runtime
// with the tabula image present.
func NewEngine(cfg types.ExtractionConfig) (Engine, error) {
	switch cfg.Backend {
	case types.BackendGeometry, "":
		return NewGeometryEngine(), nil
	case types.BackendTabula:
		rt, err := container.DetectRuntime()
		if err != nil {
			return nil, err
		}
		image := cfg.TabulaImage
		if image == "" {
			image = DefaultTabulaImage
		}
		return NewTabulaEngine(rt, image)
	default:
		return nil, fmt.Errorf("unknown extraction backend %q", cfg.Backend)
	}
}

// First runs the engine and returns the first extracted table. Zero tables
// is an error; more than one is logged as a warning and the first wins.
func First(e Engine, pdfPath string, opts Options) (types.Table, error) {
	tables, err := e.ExtractTables(pdfPath, opts)
	if err != nil {
		return types.Table{}, err
	}
	if len(tables) == 0 {
		log.Error().Str("pdf", pdfPath).Msg("no table found")
		return types.Table{}, fmt.Errorf("no table found in %s", pdfPath)
	}
	if len(tables) > 1 {
		log.Warn().Str("pdf", pdfPath).Int("tables", len(tables)).
			Msg("more than 1 table recognized, using the first")
	}
	return tables[0], nil
}
