// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package trips turns raw extracted tables into clean trip records:
// platform-specific row repair, normalization into types.Trip, and purpose
// tagging from a rules file.
package trips

import (
	"strings"

	"github.com/pdiddy/tripconv/internal/platform"
	"github.com/pdiddy/tripconv/pkg/types"
)

// Repair applies the platform's post-processing to an extracted table.
// Didi and Huaxiaozhu ship broken header cells; Shouqi and Meituan split
// every logical row across two physical rows. Gaode and unknown tables
// pass through untouched.
func Repair(tag string, t types.Table) types.Table {
	switch tag {
	case platform.Didi, platform.Huaxiaozhu:
		return cleanHeader(t)
	case platform.Shouqi:
		return mergeShouqi(t)
	case platform.Meituan:
		return mergeMeituan(t)
	default:
		return t
	}
}

// cleanHeader replaces stray line breaks in header cells with spaces. The
// platform wraps long column titles, which otherwise breaks the CSV output.
func cleanHeader(t types.Table) types.Table {
	header := make([]string, len(t.Header))
	for i, h := range t.Header {
		h = strings.ReplaceAll(h, "\r\n", " ")
		h = strings.ReplaceAll(h, "\r", " ")
		h = strings.ReplaceAll(h, "\n", " ")
		header[i] = h
	}
	return types.Table{Header: header, Rows: t.Rows}
}

// mergeShouqi repairs the hardest layout. The extractor sees the header
// split across the header line and data row 0, and every logical data row
// split across two physical rows. Both halves concatenate cell-wise.
func mergeShouqi(t types.Table) types.Table {
	header := make([]string, len(t.Header))
	for i, h := range t.Header {
		header[i] = strings.TrimSpace(h) + cellOrEmpty(t, 0, i)
	}

	var rows [][]string
	for a := 1; a+1 < len(t.Rows); a += 2 {
		b := a + 1
		merged := make([]string, len(header))
		for i := range header {
			merged[i] = strings.TrimSpace(t.Cell(a, i)) + cellOrEmpty(t, b, i)
		}
		rows = append(rows, merged)
	}

	return types.Table{Header: header, Rows: rows}
}

// mergeMeituan merges physical row pairs (0,1), (2,3), ... into logical
// rows. The first half is prefixed when present: "date" + " " + "time".
func mergeMeituan(t types.Table) types.Table {
	var rows [][]string
	for a := 0; a+1 < len(t.Rows); a += 2 {
		b := a + 1
		merged := make([]string, len(t.Header))
		for i := range merged {
			x := strings.TrimSpace(t.Cell(a, i))
			y := strings.TrimSpace(t.Cell(b, i))
			if x == "" || x == "nan" {
				merged[i] = y
			} else {
				merged[i] = x + " " + y
			}
		}
		rows = append(rows, merged)
	}
	return types.Table{Header: t.Header, Rows: rows}
}

// cellOrEmpty returns the trimmed cell, treating the extractor's "nan"
// placeholder as empty.
func cellOrEmpty(t types.Table, row, col int) string {
	v := strings.TrimSpace(t.Cell(row, col))
	if v == "nan" {
		return ""
	}
	return v
}
