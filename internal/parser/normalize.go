package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/insightdelivered/hsbc-statement-converter/internal/models"
)

// months is the closed lookup from statement month abbreviations to
// calendar months. Unrecognized tokens fail with MonthTokenError.
var months = map[string]time.Month{
	"JAN": time.January,
	"FEB": time.February,
	"MAR": time.March,
	"APR": time.April,
	"MAY": time.May,
	"JUN": time.June,
	"JUL": time.July,
	"AUG": time.August,
	"SEP": time.September,
	"OCT": time.October,
	"NOV": time.November,
	"DEC": time.December,
}

// normalize converts a raw line match into a Transaction: trimmed fields,
// absolute dates and a signed amount.
func normalize(raw rawTransaction, statementDate time.Time) (models.Transaction, error) {
	posting, err := resolveDate(raw.postingDate, statementDate)
	if err != nil {
		return models.Transaction{}, err
	}
	transaction, err := resolveDate(raw.transactionDate, statementDate)
	if err != nil {
		return models.Transaction{}, err
	}

	amount, err := parseAmount(raw.amount)
	if err != nil {
		return models.Transaction{}, err
	}
	// Charges carry no marker on the statement and are stored negative;
	// CR-marked amounts are credits/payments and stay positive.
	if !raw.credit {
		amount = -amount
	}

	return models.Transaction{
		PostingDate:     posting,
		TransactionDate: transaction,
		Details:         strings.TrimSpace(raw.details),
		Amount:          amount,
		Credit:          raw.credit,
	}, nil
}

// resolveDate converts a DDMON token into an absolute date using the
// statement's own month and year. January statements list December
// transactions from the previous billing cycle, so a DEC token on a
// January statement resolves to the prior year.
func resolveDate(token string, statementDate time.Time) (time.Time, error) {
	token = strings.TrimSpace(token)
	if len(token) != 5 {
		return time.Time{}, &MonthTokenError{Token: token}
	}

	day, err := strconv.Atoi(token[:2])
	if err != nil {
		return time.Time{}, &MonthTokenError{Token: token}
	}

	month, ok := months[token[2:]]
	if !ok {
		return time.Time{}, &MonthTokenError{Token: token[2:]}
	}

	year := statementDate.Year()
	if statementDate.Month() == time.January && month == time.December {
		year--
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// parseAmount converts a statement amount string like "1,234.56" to a
// float64. Thousands separators and stray spaces are removed.
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	return strconv.ParseFloat(s, 64)
}
