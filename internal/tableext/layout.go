// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tableext

import (
	"sort"
	"strings"

	"github.com/pdiddy/tripconv/pkg/types"
)

// fragment is one positioned piece of text, already converted to
// top-referenced coordinates.
type fragment struct {
	x    float64 // left edge
	w    float64 // advance width
	y    float64 // top-referenced baseline
	size float64 // font size, used to judge intra-cell spacing
	text string
}

// layoutConfig tunes the geometric reconstruction.
type layoutConfig struct {
	// rowTolerance is the max baseline distance for fragments sharing a row.
	rowTolerance float64

	// columnGap is the min horizontal whitespace that separates columns.
	columnGap float64
}

func defaultLayout() layoutConfig {
	return layoutConfig{
		rowTolerance: 2.0,
		columnGap:    6.0,
	}
}

// row is a group of fragments sharing a baseline.
type row struct {
	y     float64
	frags []fragment
}

// groupRows clusters fragments into rows by baseline proximity and sorts
// each row left to right.
func groupRows(frags []fragment, tolerance float64) []row {
	if len(frags) == 0 {
		return nil
	}

	sorted := make([]fragment, len(frags))
	copy(sorted, frags)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].y < sorted[j].y })

	rows := []row{{y: sorted[0].y, frags: []fragment{sorted[0]}}}
	for _, f := range sorted[1:] {
		last := &rows[len(rows)-1]
		if f.y-last.y < tolerance {
			last.frags = append(last.frags, f)
			continue
		}
		rows = append(rows, row{y: f.y, frags: []fragment{f}})
	}

	for i := range rows {
		r := rows[i].frags
		sort.Slice(r, func(a, b int) bool { return r[a].x < r[b].x })
	}
	return rows
}

// span is a horizontal interval covered by one table column.
type span struct {
	start, end float64
}

// columnSpans projects every fragment onto the X axis and merges the
// resulting intervals; whitespace wider than columnGap splits columns.
// This is the stream-mode analogue of whitespace-based column detection.
func columnSpans(rows []row, columnGap float64) []span {
	var intervals []span
	for _, r := range rows {
		for _, f := range r.frags {
			intervals = append(intervals, span{start: f.x, end: f.x + f.w})
		}
	}
	if len(intervals) == 0 {
		return nil
	}

	sort.Slice(intervals, func(i, j int) bool { return intervals[i].start < intervals[j].start })

	merged := []span{intervals[0]}
	for _, iv := range intervals[1:] {
		last := &merged[len(merged)-1]
		if iv.start <= last.end+columnGap {
			if iv.end > last.end {
				last.end = iv.end
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// spansFromEdges turns a set of vertical ruled-line X positions into column
// spans. Lattice-mode tables draw their grid, so the drawn edges are more
// reliable than whitespace when present. Fewer than three edges cannot
// bound a column and yield nil.
func spansFromEdges(edges []float64) []span {
	if len(edges) < 3 {
		return nil
	}
	sorted := make([]float64, len(edges))
	copy(sorted, edges)
	sort.Float64s(sorted)

	// Collapse edges closer than a point; double-stroked borders show up
	// as near-duplicate positions.
	uniq := sorted[:1]
	for _, e := range sorted[1:] {
		if e-uniq[len(uniq)-1] > 1.0 {
			uniq = append(uniq, e)
		}
	}
	if len(uniq) < 3 {
		return nil
	}

	spans := make([]span, 0, len(uniq)-1)
	for i := 0; i+1 < len(uniq); i++ {
		spans = append(spans, span{start: uniq[i], end: uniq[i+1]})
	}
	return spans
}

// columnIndex locates the span holding x, or -1.
func columnIndex(spans []span, x float64) int {
	for i, s := range spans {
		if x >= s.start && x <= s.end {
			return i
		}
	}
	return -1
}

// assemble builds a Table from rows and column spans. The first row becomes
// the header. Fragments inside one cell are joined in X order; a horizontal
// gap wider than a third of the font size reads as an intentional space.
func assemble(rows []row, spans []span) types.Table {
	if len(rows) == 0 || len(spans) == 0 {
		return types.Table{}
	}

	cells := make([][]string, len(rows))
	for i, r := range rows {
		line := make([]string, len(spans))
		lastEnd := make([]float64, len(spans))
		for j := range lastEnd {
			lastEnd[j] = -1
		}

		for _, f := range r.frags {
			center := f.x + f.w/2
			col := columnIndex(spans, center)
			if col < 0 {
				continue
			}
			if line[col] != "" && lastEnd[col] >= 0 && f.x-lastEnd[col] > spaceGap(f.size) {
				line[col] += " "
			}
			line[col] += f.text
			line[col] = strings.TrimLeft(line[col], " ")
			lastEnd[col] = f.x + f.w
		}
		cells[i] = line
	}

	return types.Table{Header: cells[0], Rows: cells[1:]}
}

func spaceGap(fontSize float64) float64 {
	if fontSize <= 0 {
		return 2.0
	}
	return fontSize / 3
}
