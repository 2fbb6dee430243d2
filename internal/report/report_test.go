// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/tripconv/pkg/types"
)

func reportTrips() []types.Trip {
	return []types.Trip{
		{
			Seq: "1", Date: "2024-08-01", Passenger: "张三",
			Origin: "国贸写字楼A座", Destination: "中关村软件园",
			Purpose: "参加项目例会", Amount: decimal.RequireFromString("45.5"),
		},
		{
			Seq: "2", Date: "2024-08-02", Passenger: "张三",
			Origin: "中关村软件园", Destination: "国贸写字楼A座",
			Purpose: "参加项目例会-返回", Amount: decimal.RequireFromString("44"),
		},
	}
}

func TestTripRows(t *testing.T) {
	rows := tripRows(reportTrips())

	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Len(t, row, len(columns))
	}
	assert.Equal(t,
		[]string{"1", "2024-08-01", "张三", "国贸写字楼A座", "中关村软件园", "参加项目例会", "45.50"},
		rows[0])
	assert.Equal(t, "44.00", rows[1][6])
}

func TestTripRowsEmpty(t *testing.T) {
	assert.Empty(t, tripRows(nil))
}

func TestTotalRow(t *testing.T) {
	label, amount := totalRow(reportTrips())
	assert.Equal(t, "金额合计：", label)
	assert.Equal(t, "89.50", amount)

	_, zero := totalRow(nil)
	assert.Equal(t, "0.00", zero)
}

func TestBuildLayout(t *testing.T) {
	doc := build(reportTrips(), Options{Preparer: "张三", Date: "2024-09-01"})
	defer doc.Close()

	require.Len(t, doc.Tables(), 1)
	table := doc.Tables()[0]
	// Header + two trips + total row.
	assert.Len(t, table.Rows(), 4)
	assert.Len(t, table.Rows()[0].Cells(), len(columns))
	assert.Len(t, table.Rows()[3].Cells(), 2)
}
