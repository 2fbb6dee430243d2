// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"github.com/shopspring/decimal"
)

// Trip is one normalized ride taken from a platform trip log. It carries
// exactly the fields the reimbursement report needs.
type Trip struct {
	Seq         string `json:"seq" yaml:"seq"`
	Date        string `json:"date" yaml:"date"`
	Passenger   string `json:"passenger" yaml:"passenger"`
	Origin      string `json:"origin" yaml:"origin"`
	Destination string `json:"destination" yaml:"destination"`
	Purpose     string `json:"purpose" yaml:"purpose"`

	// Amount is the fare in CNY. Decimal arithmetic keeps fen-level
	// precision when totals are computed.
	Amount decimal.Decimal `json:"amount" yaml:"amount"`
}

// TotalAmount sums the fares of a set of trips.
func TotalAmount(trips []Trip) decimal.Decimal {
	total := decimal.Zero
	for _, t := range trips {
		total = total.Add(t.Amount)
	}
	return total
}
