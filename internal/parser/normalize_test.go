package parser

import (
	"errors"
	"testing"
	"time"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		wantErr  bool
	}{
		{"25.99", 25.99, false},
		{"1,234.56", 1234.56, false},
		{"1,234,567.89", 1234567.89, false},
		{"0.00", 0.00, false},
		{" 25.99 ", 25.99, false},
		{"not-a-number", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseAmount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %f, want %f", got, tt.expected)
			}
		})
	}
}

func TestResolveDate(t *testing.T) {
	january := time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC)
	march := time.Date(2023, time.March, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		token     string
		statement time.Time
		expected  time.Time
	}{
		{"same month", "05JAN", january, time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC)},
		{"december on january statement", "28DEC", january, time.Date(2022, time.December, 28, 0, 0, 0, 0, time.UTC)},
		{"december on march statement", "28DEC", march, time.Date(2023, time.December, 28, 0, 0, 0, 0, time.UTC)},
		{"february on march statement", "14FEB", march, time.Date(2023, time.February, 14, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveDate(tt.token, tt.statement)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestResolveDateBadMonthToken(t *testing.T) {
	statement := time.Date(2023, time.March, 10, 0, 0, 0, 0, time.UTC)

	_, err := resolveDate("05XXX", statement)
	if err == nil {
		t.Fatal("expected error for unknown month token")
	}

	var monthErr *MonthTokenError
	if !errors.As(err, &monthErr) {
		t.Fatalf("expected MonthTokenError, got %T", err)
	}
	if monthErr.Token != "XXX" {
		t.Errorf("token: got %q, want %q", monthErr.Token, "XXX")
	}
}

func TestNormalizeSignConvention(t *testing.T) {
	statement := time.Date(2023, time.March, 10, 0, 0, 0, 0, time.UTC)

	charge := rawTransaction{
		postingDate:     "05MAR",
		transactionDate: "04MAR",
		details:         "  SUPERMARKET  ",
		amount:          "1,234.56",
	}
	txn, err := normalize(charge, statement)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if txn.Amount != -1234.56 {
		t.Errorf("charge amount: got %v, want %v", txn.Amount, -1234.56)
	}
	if txn.Details != "SUPERMARKET" {
		t.Errorf("details not trimmed: got %q", txn.Details)
	}

	credit := charge
	credit.credit = true
	txn, err = normalize(credit, statement)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if txn.Amount != 1234.56 {
		t.Errorf("credit amount: got %v, want %v", txn.Amount, 1234.56)
	}
}

// Posting and transaction dates may resolve to different years when only
// one of them falls in December on a January statement.
func TestNormalizeIndependentYearResolution(t *testing.T) {
	statement := time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC)

	raw := rawTransaction{
		postingDate:     "02JAN",
		transactionDate: "30DEC",
		details:         "LATE POSTED PURCHASE",
		amount:          "10.00",
	}
	txn, err := normalize(raw, statement)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if txn.PostingDate.Year() != 2023 {
		t.Errorf("posting year: got %d, want 2023", txn.PostingDate.Year())
	}
	if txn.TransactionDate.Year() != 2022 {
		t.Errorf("transaction year: got %d, want 2022", txn.TransactionDate.Year())
	}
}
