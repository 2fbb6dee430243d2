// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders normalized trips as a DOCX reimbursement form.
package report

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/common/license"
	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/wml"

	"github.com/pdiddy/tripconv/pkg/types"
)

// DefaultFileName is the default output path; the original form is saved
// under its own title.
const DefaultFileName = title + ".docx"

const (
	title       = "市内交通费报销明细表"
	totalLabel  = "金额合计："
	trailerNote = "特殊事项说明："

	titleFont = "微软雅黑"
	bodyFont  = "宋体"

	titleSize = 20 * measurement.Point
	bodySize  = 12 * measurement.Point
	noteSize  = 11 * measurement.Point
)

// columns is the report table header, one label per trip field.
var columns = []string{"序号", "乘车日期", "乘车人", "出发地", "目的地", "外出事由", "金额"}

// Options carries the metadata printed above the trip table.
type Options struct {
	Preparer string // 填表人
	Date     string // 填表日期
}

func init() {
	// The unioffice metered license key, when present, unlocks saving
	// without a watermark. See https://cloud.unidoc.io.
	key := os.Getenv("UNIDOC_LICENSE_API_KEY")
	if key == "" {
		return
	}
	if err := license.SetMeteredKey(key); err != nil {
		log.Warn().Err(err).Msg("failed to set unioffice license key")
	}
}

// Write renders the reimbursement form for trips and saves it to path.
func Write(trips []types.Trip, opts Options, path string) error {
	doc := build(trips, opts)
	defer doc.Close()

	if err := doc.SaveToFile(path); err != nil {
		return fmt.Errorf("saving report %s: %w", path, err)
	}
	log.Info().Str("path", path).Int("trips", len(trips)).Msg("wrote reimbursement report")
	return nil
}

func build(trips []types.Trip, opts Options) *document.Document {
	doc := document.New()

	addTitle(doc)
	addPreparerLine(doc, opts)
	addTripTable(doc, trips)
	addTrailer(doc)

	return doc
}

func addTitle(doc *document.Document) {
	para := doc.AddParagraph()
	para.Properties().SetAlignment(wml.ST_JcCenter)
	run := para.AddRun()
	run.Properties().SetFontFamily(titleFont)
	run.Properties().SetSize(titleSize)
	run.Properties().SetBold(true)
	run.AddText(title)
}

func addPreparerLine(doc *document.Document, opts Options) {
	para := doc.AddParagraph()
	run := para.AddRun()
	run.Properties().SetFontFamily(bodyFont)
	run.Properties().SetSize(bodySize)
	run.AddText(fmt.Sprintf("填表人：%s    填表日期：%s", opts.Preparer, opts.Date))
}

func addTripTable(doc *document.Document, trips []types.Trip) {
	table := doc.AddTable()
	table.Properties().SetWidthPercent(100)
	table.Properties().Borders().SetAll(wml.ST_BorderSingle, color.Auto, measurement.Zero)

	header := table.AddRow()
	for _, label := range columns {
		addCellText(header.AddCell(), label, true)
	}

	for _, row := range tripRows(trips) {
		tr := table.AddRow()
		for _, cell := range row {
			addCellText(tr.AddCell(), cell, false)
		}
	}

	// Total row: the label spans the first four columns, the amount the
	// remaining three.
	label, amount := totalRow(trips)
	tr := table.AddRow()
	labelCell := tr.AddCell()
	labelCell.Properties().SetColumnSpan(4)
	addCellText(labelCell, label, true)
	amountCell := tr.AddCell()
	amountCell.Properties().SetColumnSpan(3)
	addCellText(amountCell, amount, true)
}

func addTrailer(doc *document.Document) {
	para := doc.AddParagraph()
	run := para.AddRun()
	run.Properties().SetFontFamily(bodyFont)
	run.Properties().SetSize(noteSize)
	run.Properties().SetBold(true)
	run.AddText(trailerNote)
}

func addCellText(cell document.Cell, text string, bold bool) {
	para := cell.AddParagraph()
	para.Properties().SetAlignment(wml.ST_JcCenter)
	run := para.AddRun()
	run.Properties().SetFontFamily(bodyFont)
	run.Properties().SetSize(bodySize)
	if bold {
		run.Properties().SetBold(true)
	}
	run.AddText(text)
}

// tripRows flattens trips into the seven report columns.
func tripRows(trips []types.Trip) [][]string {
	rows := make([][]string, len(trips))
	for i, t := range trips {
		rows[i] = []string{
			t.Seq, t.Date, t.Passenger,
			t.Origin, t.Destination, t.Purpose,
			t.Amount.StringFixed(2),
		}
	}
	return rows
}

// totalRow returns the merged label and amount cells closing the table.
func totalRow(trips []types.Trip) (string, string) {
	return totalLabel, types.TotalAmount(trips).StringFixed(2)
}
