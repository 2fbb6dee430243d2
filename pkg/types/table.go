// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data structures shared between pipeline stages:
// extracted tables, normalized trips, crop regions, and stage configuration.
package types

// Table is a rectangular block of cell text extracted from a PDF. The first
// row recognized inside the crop region becomes the header; everything below
// it is data. Cells are kept as raw strings until platform post-processing
// runs, so a Table may still contain split or merged rows.
type Table struct {
	Header []string   `json:"header" yaml:"header"`
	Rows   [][]string `json:"rows" yaml:"rows"`
}

// Columns returns the number of header columns.
func (t Table) Columns() int {
	return len(t.Header)
}

// Empty reports whether the table has neither header nor data rows.
func (t Table) Empty() bool {
	return len(t.Header) == 0 && len(t.Rows) == 0
}

// Cell returns the cell at (row, col), or "" when the row is ragged and the
// column does not exist.
func (t Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Region is a rectangular crop area in PDF points with a top-referenced
// vertical axis (top < bottom), matching the coordinate convention of the
// platform layout constants.
type Region struct {
	Top    float64 `json:"top" yaml:"top"`
	Left   float64 `json:"left" yaml:"left"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Right  float64 `json:"right" yaml:"right"`
}

// Contains reports whether the point (x, y) lies inside the region.
// y is top-referenced like the region itself.
func (r Region) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}
