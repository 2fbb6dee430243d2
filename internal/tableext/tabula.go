// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tableext

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/tripconv/internal/container"
	"github.com/pdiddy/tripconv/pkg/types"
)

// DefaultTabulaImage is the container image wrapping tabula-java. The image
// reads a PDF on stdin and writes CSV on stdout.
const DefaultTabulaImage = "tabula:latest"

// TabulaEngine extracts tables by piping the PDF through a tabula container
// image. It depends on a container.Runtime (docker or podman) injected at
// construction time.
type TabulaEngine struct {
	runtime container.Runtime
	image   string
}

// NewTabulaEngine creates an engine that runs the given tabula image. It
// verifies that the image exists locally before returning.
func NewTabulaEngine(rt container.Runtime, image string) (*TabulaEngine, error) {
	if err := rt.ImageExists(image); err != nil {
		return nil, fmt.Errorf("tabula image not available in %s: %w", rt.Name(), err)
	}
	return &TabulaEngine{runtime: rt, image: image}, nil
}

// ExtractTables pipes the PDF through the container and parses the CSV it
// emits. tabula concatenates everything it finds into one CSV stream, so
// the result is at most one table.
func (e *TabulaEngine) ExtractTables(pdfPath string, opts Options) ([]types.Table, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", pdfPath, err)
	}
	defer f.Close()

	var out bytes.Buffer
	if err := e.runtime.Run(e.image, tabulaArgs(opts), f, &out); err != nil {
		return nil, fmt.Errorf("extracting %s with tabula: %w", pdfPath, err)
	}

	table, err := parseCSVTable(&out)
	if err != nil {
		return nil, fmt.Errorf("parsing tabula output for %s: %w", pdfPath, err)
	}
	if table.Empty() {
		return nil, nil
	}
	return []types.Table{table}, nil
}

// tabulaArgs translates engine options into tabula CLI flags.
func tabulaArgs(opts Options) []string {
	pages := "all"
	if opts.FirstPageOnly {
		pages = "1"
	}
	args := []string{"--pages", pages, "--format", "CSV"}
	if opts.Region != nil {
		args = append(args, "--area", fmt.Sprintf("%g,%g,%g,%g",
			opts.Region.Top, opts.Region.Left, opts.Region.Bottom, opts.Region.Right))
	}
	if opts.Stream {
		args = append(args, "--stream")
	} else {
		args = append(args, "--guess")
	}
	return append(args, "-")
}

// parseCSVTable reads CSV records into a Table; the first record is the
// header. Ragged rows are allowed, tabula pads nothing.
func parseCSVTable(r io.Reader) (types.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var table types.Table
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return types.Table{}, err
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		if table.Header == nil {
			table.Header = record
			continue
		}
		table.Rows = append(table.Rows, record)
	}
	return table, nil
}
