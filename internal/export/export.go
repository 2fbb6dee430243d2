// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes extracted tables to CSV and XLSX, and normalized
// trips to struct-tagged CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/tripconv/pkg/types"
)

const (
	// TypeCSV and TypeExcel are the supported output formats.
	TypeCSV   = "csv"
	TypeExcel = "excel"

	sheetName = "Sheet1"
)

// utf8BOM lets Excel open the CSV directly with CJK text intact.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Write dispatches on the output type and writes the table next to the
// caller's working directory. An empty path picks the default name
// (output.csv / output.xlsx). Unsupported types are logged and produce no
// file.
func Write(t types.Table, outputType, path string) (string, error) {
	switch outputType {
	case TypeCSV:
		if path == "" {
			path = "output.csv"
		}
		return path, WriteCSVFile(t, path)
	case TypeExcel:
		if path == "" {
			path = "output.xlsx"
		}
		return path, WriteXLSX(t, path)
	default:
		log.Error().Str("type", outputType).Msg("unsupported output type, only csv and excel are supported")
		return "", fmt.Errorf("unsupported output type %q", outputType)
	}
}

// WriteCSVFile writes the table as UTF-8 CSV with a BOM prefix.
func WriteCSVFile(t types.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteCSV(t, f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriteCSV streams the table as BOM-prefixed CSV to w.
func WriteCSV(t types.Table, w io.Writer) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the table to an XLSX workbook with a single sheet.
func WriteXLSX(t types.Table, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSheetRow(f, 1, t.Header); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if err := writeSheetRow(f, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func writeSheetRow(f *excelize.File, rowNum int, cells []string) error {
	anchor, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return f.SetSheetRow(sheetName, anchor, &row)
}

// tripRecord is the gocsv shape of a normalized trip.
type tripRecord struct {
	Seq         string `csv:"seq"`
	Date        string `csv:"date"`
	Passenger   string `csv:"passenger"`
	Origin      string `csv:"origin"`
	Destination string `csv:"destination"`
	Purpose     string `csv:"purpose"`
	Amount      string `csv:"amount"`
}

// WriteTripsCSV writes normalized trips as BOM-prefixed CSV.
func WriteTripsCSV(trips []types.Trip, w io.Writer) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	records := make([]tripRecord, len(trips))
	for i, t := range trips {
		records[i] = tripRecord{
			Seq:         t.Seq,
			Date:        t.Date,
			Passenger:   t.Passenger,
			Origin:      t.Origin,
			Destination: t.Destination,
			Purpose:     t.Purpose,
			Amount:      t.Amount.StringFixed(2),
		}
	}
	return gocsv.Marshal(&records, w)
}
