// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ledger

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/tripconv/internal/platform"
	"github.com/pdiddy/tripconv/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.LedgerConfig{Dir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleTrips() []types.Trip {
	return []types.Trip{
		{
			Seq: "1", Date: "2024-08-01", Passenger: "张三",
			Origin: "国贸写字楼A座", Destination: "中关村软件园",
			Purpose: "参加项目例会", Amount: decimal.RequireFromString("45.50"),
		},
		{
			Seq: "2", Date: "2024-08-02", Passenger: "张三",
			Origin: "中关村软件园", Destination: "国贸写字楼A座",
			Purpose: "参加项目例会-返回", Amount: decimal.RequireFromString("44.00"),
		},
	}
}

func TestImportAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	summary, err := s.Import(ctx, "didi_2024-08.pdf", platform.Didi, sampleTrips())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Inserted)
	assert.Equal(t, 0, summary.Skipped)

	records, err := s.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "1", records[0].Seq)
	assert.Equal(t, platform.Didi, records[0].Platform)
	assert.Equal(t, "didi_2024-08.pdf", records[0].Source)
	assert.True(t, records[0].Amount.Equal(decimal.RequireFromString("45.50")))
}

func TestImportIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Import(ctx, "didi_2024-08.pdf", platform.Didi, sampleTrips())
	require.NoError(t, err)

	summary, err := s.Import(ctx, "didi_2024-08.pdf", platform.Didi, sampleTrips())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Inserted)
	assert.Equal(t, 2, summary.Skipped)

	records, err := s.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestImportSameSeqDifferentSource(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Import(ctx, "didi_2024-08.pdf", platform.Didi, sampleTrips())
	require.NoError(t, err)

	summary, err := s.Import(ctx, "gaode_2024-08.pdf", platform.Gaode, sampleTrips())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Inserted)
}

func TestListFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Import(ctx, "didi.pdf", platform.Didi, sampleTrips())
	require.NoError(t, err)

	other := []types.Trip{{
		Seq: "1", Date: "2024-08-03", Passenger: "李四",
		Origin: "望京", Destination: "首都机场T3",
		Amount: decimal.RequireFromString("98.00"),
	}}
	_, err = s.Import(ctx, "gaode.pdf", platform.Gaode, other)
	require.NoError(t, err)

	byPlatform, err := s.List(ctx, Filter{Platform: platform.Gaode})
	require.NoError(t, err)
	require.Len(t, byPlatform, 1)
	assert.Equal(t, "望京", byPlatform[0].Origin)

	byPassenger, err := s.List(ctx, Filter{Passenger: "张三"})
	require.NoError(t, err)
	assert.Len(t, byPassenger, 2)
}

func TestTotal(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Import(ctx, "didi.pdf", platform.Didi, sampleTrips())
	require.NoError(t, err)

	total, err := s.Total(ctx, Filter{})
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("89.50")), "total = %s", total)

	empty, err := s.Total(ctx, Filter{Platform: platform.Shouqi})
	require.NoError(t, err)
	assert.True(t, empty.IsZero())
}
