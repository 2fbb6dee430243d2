// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tableext

import (
	"reflect"
	"testing"
)

// mkFrag builds a fragment with a 10pt font unless overridden.
func mkFrag(x, w, y float64, s string) fragment {
	return fragment{x: x, w: w, y: y, size: 10, text: s}
}

func TestGroupRows(t *testing.T) {
	frags := []fragment{
		mkFrag(100, 20, 50.5, "b"),
		mkFrag(40, 20, 50, "a"),
		mkFrag(40, 20, 80, "c"),
		mkFrag(100, 20, 81.2, "d"),
		mkFrag(40, 20, 120, "e"),
	}

	rows := groupRows(frags, 2.0)
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}

	// Row fragments must come back left to right.
	if rows[0].frags[0].text != "a" || rows[0].frags[1].text != "b" {
		t.Errorf("row 0 = %v, want a then b", rows[0].frags)
	}
	if rows[1].frags[0].text != "c" || rows[1].frags[1].text != "d" {
		t.Errorf("row 1 = %v, want c then d", rows[1].frags)
	}
	if rows[2].frags[0].text != "e" {
		t.Errorf("row 2 = %v, want e", rows[2].frags)
	}
}

func TestGroupRowsDriftingBaselineDoesNotChain(t *testing.T) {
	// Each fragment is within tolerance of its neighbor but the chain
	// drifts past the tolerance. Rows anchor on their first baseline, so
	// the drift must split into two rows instead of chaining into one.
	frags := []fragment{
		mkFrag(40, 20, 50, "a"),
		mkFrag(70, 20, 51.5, "b"),
		mkFrag(100, 20, 53, "c"),
		mkFrag(130, 20, 54.5, "d"),
	}

	rows := groupRows(frags, 2.0)
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2: %v", len(rows), rows)
	}
	if len(rows[0].frags) != 2 || rows[0].frags[1].text != "b" {
		t.Errorf("row 0 = %v, want a then b", rows[0].frags)
	}
	if len(rows[1].frags) != 2 || rows[1].frags[0].text != "c" {
		t.Errorf("row 1 = %v, want c then d", rows[1].frags)
	}
}

func TestGroupRowsEmpty(t *testing.T) {
	if rows := groupRows(nil, 2.0); rows != nil {
		t.Errorf("groupRows(nil) = %v, want nil", rows)
	}
}

func TestColumnSpans(t *testing.T) {
	// Two rows, three columns with clear whitespace between them.
	rows := groupRows([]fragment{
		mkFrag(40, 30, 50, "h1"),
		mkFrag(120, 30, 50, "h2"),
		mkFrag(200, 30, 50, "h3"),
		mkFrag(42, 25, 80, "v1"),
		mkFrag(118, 35, 80, "v2"),
		mkFrag(205, 20, 80, "v3"),
	}, 2.0)

	spans := columnSpans(rows, 6.0)
	if len(spans) != 3 {
		t.Fatalf("len(spans) = %d, want 3: %v", len(spans), spans)
	}
	if spans[0].start != 40 || spans[0].end != 70 {
		t.Errorf("span 0 = %+v, want [40,70]", spans[0])
	}
	if spans[2].start != 200 || spans[2].end != 230 {
		t.Errorf("span 2 = %+v, want [200,230]", spans[2])
	}
}

func TestColumnSpansMergesNarrowGaps(t *testing.T) {
	// A 4pt gap inside one logical column must not split it.
	rows := groupRows([]fragment{
		mkFrag(40, 10, 50, "08-01"),
		mkFrag(54, 10, 50, "10:30"),
		mkFrag(200, 10, 50, "12.50"),
	}, 2.0)

	spans := columnSpans(rows, 6.0)
	if len(spans) != 2 {
		t.Fatalf("len(spans) = %d, want 2: %v", len(spans), spans)
	}
}

func TestSpansFromEdges(t *testing.T) {
	tests := []struct {
		name  string
		edges []float64
		want  int
	}{
		{"grid with four edges", []float64{40, 150, 300, 560}, 3},
		{"duplicate strokes collapse", []float64{40, 40.5, 150, 300}, 2},
		{"too few edges", []float64{40, 560}, 0},
		{"no edges", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := spansFromEdges(tt.edges)
			if len(spans) != tt.want {
				t.Errorf("len(spans) = %d, want %d: %v", len(spans), tt.want, spans)
			}
		})
	}
}

func TestAssemble(t *testing.T) {
	rows := groupRows([]fragment{
		mkFrag(40, 30, 50, "序号"),
		mkFrag(120, 30, 50, "金额"),
		mkFrag(40, 10, 80, "1"),
		mkFrag(120, 30, 80, "12.50"),
		mkFrag(40, 10, 110, "2"),
		mkFrag(120, 30, 110, "33.00"),
	}, 2.0)
	spans := columnSpans(rows, 6.0)

	table := assemble(rows, spans)

	wantHeader := []string{"序号", "金额"}
	if !reflect.DeepEqual(table.Header, wantHeader) {
		t.Errorf("header = %v, want %v", table.Header, wantHeader)
	}
	wantRows := [][]string{{"1", "12.50"}, {"2", "33.00"}}
	if !reflect.DeepEqual(table.Rows, wantRows) {
		t.Errorf("rows = %v, want %v", table.Rows, wantRows)
	}
}

func TestAssembleJoinsCellFragments(t *testing.T) {
	// "08-01" and "10:30" sit in the same column with a visible gap:
	// they join with a space. Adjacent CJK glyphs join without one.
	rows := groupRows([]fragment{
		mkFrag(40, 30, 50, "时间"),
		mkFrag(200, 30, 50, "地点"),
		mkFrag(40, 25, 80, "08-01"),
		mkFrag(72, 25, 80, "10:30"),
		mkFrag(200, 10, 80, "国"),
		mkFrag(210, 10, 80, "贸"),
	}, 2.0)
	spans := columnSpans(rows, 6.0)

	table := assemble(rows, spans)
	if got := table.Cell(0, 0); got != "08-01 10:30" {
		t.Errorf("time cell = %q, want %q", got, "08-01 10:30")
	}
	if got := table.Cell(0, 1); got != "国贸" {
		t.Errorf("place cell = %q, want %q", got, "国贸")
	}
}

func TestAssembleRaggedRow(t *testing.T) {
	// A data row missing its second column yields an empty cell, not a shift.
	rows := groupRows([]fragment{
		mkFrag(40, 30, 50, "a"),
		mkFrag(120, 30, 50, "b"),
		mkFrag(40, 30, 80, "only"),
	}, 2.0)
	spans := columnSpans(rows, 6.0)

	table := assemble(rows, spans)
	if got := table.Cell(0, 0); got != "only" {
		t.Errorf("cell(0,0) = %q, want %q", got, "only")
	}
	if got := table.Cell(0, 1); got != "" {
		t.Errorf("cell(0,1) = %q, want empty", got)
	}
}
