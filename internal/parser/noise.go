package parser

import (
	"strings"

	"github.com/insightdelivered/hsbc-statement-converter/internal/models"
)

// paymentMarkers identify the cardholder's own balance-clearing payment in
// the transaction details. These lines settle the previous balance and must
// not count against the new charges.
var paymentMarkers = []string{
	"PAYMENT RECEIVED - THANK YOU",
	"PAYMENT - THANK YOU",
	"DIRECT DEBIT PAYMENT",
	"TO HSBC BANK",
}

// isBalancePayment reports whether a transaction is the cardholder's
// balance-clearing payment: a recognized payment-reference substring in the
// details combined with the credit marker on the amount.
func isBalancePayment(txn models.Transaction) bool {
	if !txn.Credit {
		return false
	}
	details := strings.ToUpper(txn.Details)
	for _, marker := range paymentMarkers {
		if strings.Contains(details, marker) {
			return true
		}
	}
	return false
}

// removeBalancePayments filters balance-payment records out of the
// transaction list. In strict mode (lenient=false) finding none is an
// error; lenient mode passes the list through unchanged and leaves any
// discrepancy to the reconciliation checks.
func removeBalancePayments(txns []models.Transaction, lenient bool) ([]models.Transaction, error) {
	kept := txns[:0]
	removed := 0
	for _, txn := range txns {
		if isBalancePayment(txn) {
			removed++
			continue
		}
		kept = append(kept, txn)
	}

	if removed == 0 && !lenient {
		return nil, &NoiseRecordAbsentError{}
	}
	return kept, nil
}
