package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/insightdelivered/hsbc-statement-converter/internal/models"
)

// Statement date as printed on HSBC credit card statements, e.g. 02JAN2023.
var statementDatePattern = regexp.MustCompile(
	`(?i)Statement\s+Date\s*:?\s*(\d{2})(` + monthAlternation + `)(\d{4})`,
)

// Fallback: a bare DDMONYYYY token anywhere in the text.
var bareDatePattern = regexp.MustCompile(
	`\b(\d{2})(` + monthAlternation + `)(\d{4})\b`,
)

// Simple-form summary: a single labeled debit figure.
var debitAmountPattern = regexp.MustCompile(
	`(?i)amount\s+to\s+be\s+debited\D*?([\d,]+\.\d{2})`,
)

// Detailed-form summary: the four-column Account Summary block
// (opening balance, payments/credits, new charges/debits, closing balance),
// each value optionally suffixed with the CR marker.
var accountSummaryPattern = regexp.MustCompile(
	`(?is)Account\s+Summary.*?` +
		`([\d,]+\.\d{2})\s*(CR)?\s+` +
		`([\d,]+\.\d{2})\s*(CR)?\s+` +
		`([\d,]+\.\d{2})\s*(CR)?\s+` +
		`([\d,]+\.\d{2})\s*(CR)?`,
)

var accountSummaryLabel = regexp.MustCompile(`(?i)Account\s+Summary`)

// extractSummary pulls the statement-level aggregate figures from the raw
// text. The grammar is selected by which label the statement carries; a
// text with neither label fails with NotFoundError.
func extractSummary(text string) (models.Summary, error) {
	statementDate, err := extractStatementDate(text)
	if err != nil {
		return models.Summary{}, err
	}

	if accountSummaryLabel.MatchString(text) {
		return extractDetailedSummary(text, statementDate)
	}
	if debitAmountPattern.MatchString(text) {
		return extractSimpleSummary(text, statementDate)
	}
	return models.Summary{}, &NotFoundError{Label: "Account Summary / amount to be debited"}
}

// extractStatementDate finds the statement's own date, preferring the
// labeled form over a bare DDMONYYYY token.
func extractStatementDate(text string) (time.Time, error) {
	m := statementDatePattern.FindStringSubmatch(text)
	if m == nil {
		m = bareDatePattern.FindStringSubmatch(text)
	}
	if m == nil {
		return time.Time{}, &NotFoundError{Label: "Statement Date"}
	}

	day, _ := strconv.Atoi(m[1])
	month, ok := months[strings.ToUpper(m[2])]
	if !ok {
		return time.Time{}, &MonthTokenError{Token: m[2]}
	}
	year, _ := strconv.Atoi(m[3])

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// extractSimpleSummary handles statements that print only the amount to be
// debited. The figure is money leaving the account, so it is stored negated.
func extractSimpleSummary(text string, statementDate time.Time) (models.Summary, error) {
	m := debitAmountPattern.FindStringSubmatch(text)
	if m == nil {
		return models.Summary{}, &NotFoundError{Label: "amount to be debited"}
	}
	amount, err := parseAmount(m[1])
	if err != nil {
		return models.Summary{}, fmt.Errorf("debit amount %q: %w", m[1], err)
	}

	return models.Summary{
		StatementDate: statementDate,
		Form:          models.SummarySimple,
		DebitAmount:   -amount,
	}, nil
}

// extractDetailedSummary handles statements with the four-column Account
// Summary block. CR-suffixed values keep their parsed magnitude, unmarked
// values are negated; new charges are always stored negated since the
// column conventionally draws the balance down.
func extractDetailedSummary(text string, statementDate time.Time) (models.Summary, error) {
	m := accountSummaryPattern.FindStringSubmatch(text)
	if m == nil {
		return models.Summary{}, fmt.Errorf("account summary block did not match expected layout")
	}

	opening, err := summaryValue(m[1], m[2])
	if err != nil {
		return models.Summary{}, err
	}
	payments, err := summaryValue(m[3], m[4])
	if err != nil {
		return models.Summary{}, err
	}
	newCharges, err := parseAmount(m[5])
	if err != nil {
		return models.Summary{}, fmt.Errorf("new charges %q: %w", m[5], err)
	}
	closing, err := summaryValue(m[7], m[8])
	if err != nil {
		return models.Summary{}, err
	}

	return models.Summary{
		StatementDate:  statementDate,
		Form:           models.SummaryDetailed,
		OpeningBalance: opening,
		Payments:       payments,
		NewCharges:     -newCharges,
		ClosingBalance: closing,
	}, nil
}

func summaryValue(amount, marker string) (float64, error) {
	v, err := parseAmount(amount)
	if err != nil {
		return 0, fmt.Errorf("summary value %q: %w", amount, err)
	}
	if marker == "" {
		v = -v
	}
	return v, nil
}
