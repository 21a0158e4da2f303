package models

import "time"

// Transaction represents a single credit card statement line item.
// Sign convention: charges are negative, credits/payments are positive.
type Transaction struct {
	PostingDate     time.Time `json:"postingDate"`
	TransactionDate time.Time `json:"transactionDate"`
	Details         string    `json:"details"`
	Amount          float64   `json:"amount"`
	Credit          bool      `json:"credit"` // raw amount carried the CR marker
}

// SummaryForm identifies which summary grammar a statement layout uses.
type SummaryForm string

const (
	// SummarySimple statements print a single "amount to be debited" figure.
	SummarySimple SummaryForm = "simple"
	// SummaryDetailed statements print a four-column Account Summary block.
	SummaryDetailed SummaryForm = "detailed"
)

// Summary holds the aggregate figures printed once per statement.
// Amounts follow the same sign convention as Transaction.Amount.
type Summary struct {
	StatementDate time.Time   `json:"statementDate"`
	Form          SummaryForm `json:"form"`

	// Simple form only. Stored negative: it is money leaving the account.
	DebitAmount float64 `json:"debitAmount,omitempty"`

	// Detailed form only.
	OpeningBalance float64 `json:"openingBalance,omitempty"`
	Payments       float64 `json:"payments,omitempty"`
	NewCharges     float64 `json:"newCharges,omitempty"`
	ClosingBalance float64 `json:"closingBalance,omitempty"`
}

// Statement is the fully parsed result for one input document.
type Statement struct {
	Summary      Summary       `json:"summary"`
	Transactions []Transaction `json:"transactions"`
}
