package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/insightdelivered/hsbc-statement-converter/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCSVWriter_Write(t *testing.T) {
	txns := []models.Transaction{
		{
			PostingDate:     date(2023, time.January, 5),
			TransactionDate: date(2023, time.January, 6),
			Details:         "SUPERMARKET PURCHASE",
			Amount:          -123.45,
		},
		{
			PostingDate:     date(2022, time.December, 28),
			TransactionDate: date(2022, time.December, 27),
			Details:         "ONLINE STORE REFUND",
			Amount:          26.55,
		},
	}

	var buf bytes.Buffer
	w := &CSVWriter{}
	if err := w.Write(&buf, txns); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "05/01/2023;06/01/2023;SUPERMARKET PURCHASE;-123.45\n" +
		"28/12/2022;27/12/2022;ONLINE STORE REFUND;26.55\n"
	if buf.String() != want {
		t.Errorf("output mismatch:\ngot  %q\nwant %q", buf.String(), want)
	}
}

func TestCSVWriter_DecimalComma(t *testing.T) {
	txns := []models.Transaction{
		{
			PostingDate:     date(2023, time.January, 5),
			TransactionDate: date(2023, time.January, 5),
			Details:         "COFFEE SHOP",
			Amount:          -3.50,
		},
	}

	var buf bytes.Buffer
	w := &CSVWriter{DecimalComma: true}
	if err := w.Write(&buf, txns); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "05/01/2023;05/01/2023;COFFEE SHOP;-3,50\n"
	if buf.String() != want {
		t.Errorf("output mismatch:\ngot  %q\nwant %q", buf.String(), want)
	}
}

func TestCSVWriter_WriteToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	txns := []models.Transaction{
		{
			PostingDate:     date(2023, time.February, 1),
			TransactionDate: date(2023, time.February, 1),
			Details:         "TEST",
			Amount:          -1.00,
		},
	}

	w := &CSVWriter{}
	if err := w.WriteToFile(path, txns); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(data) != "01/02/2023;01/02/2023;TEST;-1.00\n" {
		t.Errorf("unexpected file content: %q", string(data))
	}
}

func TestFormatAmountRoundTrip(t *testing.T) {
	// Two-decimal text must round-trip within the reconciliation tolerance.
	w := &CSVWriter{}
	for _, v := range []float64{-123.45, 26.55, 0.01, -0.01, 1234567.89} {
		s := w.formatAmount(v)
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("failed to parse %q: %v", s, err)
		}
		diff := parsed - v
		if diff < -0.001 || diff > 0.001 {
			t.Errorf("round trip of %v via %q drifted to %v", v, s, parsed)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"statement.pdf", "statement.csv"},
		{"dir/statement.PDF", "dir/statement.csv"},
		{"noext", "noext.csv"},
	}

	for _, tt := range tests {
		if got := OutputPath(tt.input); got != tt.expected {
			t.Errorf("OutputPath(%q): got %q, want %q", tt.input, got, tt.expected)
		}
	}
}
