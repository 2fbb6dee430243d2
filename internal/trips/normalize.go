// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trips

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/pdiddy/tripconv/internal/platform"
	"github.com/pdiddy/tripconv/pkg/types"
)

// columnProfile maps raw table column indices to trip fields.
type columnProfile struct {
	seq    int
	time   int
	origin int
	dest   int
	amount int
}

// didiColumns is the Didi trip-log layout: 序号, 车型, 上车时间, 城市,
// 起点, 终点, 里程, 金额. Huaxiaozhu exports the same layout; the other
// platforms are close enough that it doubles as the fallback.
var didiColumns = columnProfile{seq: 0, time: 2, origin: 4, dest: 5, amount: 7}

var columnProfiles = map[string]columnProfile{
	platform.Didi:       didiColumns,
	platform.Huaxiaozhu: didiColumns,
}

// NormalizeOptions carries the per-run values the table itself lacks.
type NormalizeOptions struct {
	// Passenger is stamped into every trip.
	Passenger string

	// Year prefixes the date, which trip logs print without one.
	Year string
}

// Normalize converts a repaired table into trip records. Rows whose fare
// cell does not parse as a number (footers, notes) are skipped with a
// warning.
func Normalize(tag string, t types.Table, opts NormalizeOptions) []types.Trip {
	cols, ok := columnProfiles[tag]
	if !ok {
		cols = didiColumns
	}

	var out []types.Trip
	for i := range t.Rows {
		amountCell := strings.TrimSpace(t.Cell(i, cols.amount))
		amount, err := decimal.NewFromString(amountCell)
		if err != nil {
			log.Warn().Str("platform", tag).Int("row", i).Str("amount", amountCell).
				Msg("skipping row with unparseable fare")
			continue
		}

		out = append(out, types.Trip{
			Seq:         strings.TrimSpace(t.Cell(i, cols.seq)),
			Date:        tripDate(t.Cell(i, cols.time), opts.Year),
			Passenger:   opts.Passenger,
			Origin:      lastSegment(t.Cell(i, cols.origin)),
			Destination: lastSegment(t.Cell(i, cols.dest)),
			Amount:      amount,
		})
	}
	return out
}

// tripDate keeps the date part of a "08-01 10:30 周四" style cell and
// prefixes the year.
func tripDate(timeCell, year string) string {
	datePart := strings.TrimSpace(timeCell)
	if idx := strings.IndexByte(datePart, ' '); idx >= 0 {
		datePart = datePart[:idx]
	}
	if year == "" {
		return datePart
	}
	return year + "-" + datePart
}

// lastSegment reduces a "城市|区|地点-详细" place cell to its final
// segment with the dashes removed.
func lastSegment(cell string) string {
	s := strings.TrimSpace(cell)
	if idx := strings.LastIndexByte(s, '|'); idx >= 0 {
		s = s[idx+1:]
	}
	return strings.ReplaceAll(s, "-", "")
}
