package parser

import (
	"regexp"
	"strings"

	"github.com/insightdelivered/hsbc-statement-converter/internal/models"
)

// CreditCardParser parses HSBC credit card statements.
//
// Statement lines have this layout:
//
//	05MAR06MAR SOME MERCHANT NAME 1,234.56 CR
//
// where the first token is the posting date, the second the transaction
// date, and the trailing CR marker (if present) flags a credit.
type CreditCardParser struct {
	// LenientNoise skips the hard failure when no balance-payment record
	// is found, leaving the discrepancy to the reconciliation checks.
	LenientNoise bool
}

const monthAlternation = `JAN|FEB|MAR|APR|MAY|JUN|JUL|AUG|SEP|OCT|NOV|DEC`

// txnLinePattern captures posting date, transaction date, details and
// amount from one statement line. The amount is anchored to end-of-line,
// allowing up to two filler spaces and an optional CR marker after it.
var txnLinePattern = regexp.MustCompile(
	`(?m)^(\d{2}(?:` + monthAlternation + `))\s?` +
		`(\d{2}(?:` + monthAlternation + `))\s?` +
		`(.+?)\s` +
		`([\d,]+\.\d{2}) {0,2}(CR)? *$`,
)

// rawTransaction holds the capture groups of one matched line before
// normalization.
type rawTransaction struct {
	postingDate     string
	transactionDate string
	details         string
	amount          string
	credit          bool
}

// extractLines scans the statement text and returns every matching
// transaction line in text order. A text with no matching lines yields an
// empty slice, never an error; reconciliation catches the shortfall.
func extractLines(text string) []rawTransaction {
	matches := txnLinePattern.FindAllStringSubmatch(text, -1)
	raw := make([]rawTransaction, 0, len(matches))
	for _, m := range matches {
		raw = append(raw, rawTransaction{
			postingDate:     strings.TrimSpace(m[1]),
			transactionDate: strings.TrimSpace(m[2]),
			details:         strings.TrimSpace(m[3]),
			amount:          strings.TrimSpace(m[4]),
			credit:          m[5] != "",
		})
	}
	return raw
}

// Parse runs the full extraction pipeline over the statement page text:
// summary extraction, line extraction, normalization, balance-payment
// removal and posting-date ordering. Pages are concatenated in order.
func (p *CreditCardParser) Parse(pages []string) (*models.Statement, error) {
	text := strings.Join(pages, "\n")

	summary, err := extractSummary(text)
	if err != nil {
		return nil, err
	}

	raw := extractLines(text)
	txns := make([]models.Transaction, 0, len(raw))
	for _, r := range raw {
		txn, err := normalize(r, summary.StatementDate)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}

	txns, err = removeBalancePayments(txns, p.LenientNoise)
	if err != nil {
		return nil, err
	}

	sortByPostingDate(txns)

	return &models.Statement{Summary: summary, Transactions: txns}, nil
}
