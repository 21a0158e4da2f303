// Package reconcile cross-checks extracted transaction sums against the
// aggregate figures printed on the statement. A parsing bug surfaces here
// as a typed mismatch instead of silently producing wrong output.
package reconcile

import (
	"math"

	"github.com/insightdelivered/hsbc-statement-converter/internal/models"
)

// Tolerance is the absolute difference allowed between a declared figure
// and the sum computed from extracted records.
const Tolerance = 0.001

// Totals holds the sums computed from the normalized record list.
type Totals struct {
	Credits float64 // sum of amounts >= 0
	Charges float64 // sum of amounts < 0
}

// Sum computes credit and charge totals over a transaction list.
func Sum(txns []models.Transaction) Totals {
	var t Totals
	for _, txn := range txns {
		if txn.Amount >= 0 {
			t.Credits += txn.Amount
		} else {
			t.Charges += txn.Amount
		}
	}
	return t
}

// Check validates the extracted transaction list against the statement
// summary. Checks run in a fixed order and the first failure halts; each
// failure carries both the declared and the computed figure.
func Check(summary models.Summary, txns []models.Transaction) error {
	totals := Sum(txns)

	switch summary.Form {
	case models.SummarySimple:
		total := totals.Credits + totals.Charges
		if !within(total, summary.DebitAmount) {
			return &DebitMismatchError{Declared: summary.DebitAmount, Computed: total}
		}
	case models.SummaryDetailed:
		if !within(totals.Credits, summary.Payments) {
			return &PaymentsMismatchError{Declared: summary.Payments, Computed: totals.Credits}
		}
		if !within(totals.Charges, summary.NewCharges) {
			return &NewChargesMismatchError{Declared: summary.NewCharges, Computed: totals.Charges}
		}
		closing := summary.OpeningBalance + totals.Credits + totals.Charges
		if !within(closing, summary.ClosingBalance) {
			return &ClosingBalanceMismatchError{Declared: summary.ClosingBalance, Computed: closing}
		}
	}
	return nil
}

func within(a, b float64) bool {
	return math.Abs(a-b) <= Tolerance
}
