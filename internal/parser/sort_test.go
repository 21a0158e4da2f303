package parser

import (
	"testing"
	"time"

	"github.com/insightdelivered/hsbc-statement-converter/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSortByPostingDate(t *testing.T) {
	txns := []models.Transaction{
		{PostingDate: day(2023, time.January, 15), Details: "C"},
		{PostingDate: day(2022, time.December, 28), Details: "A"},
		{PostingDate: day(2023, time.January, 5), Details: "B"},
	}

	sortByPostingDate(txns)

	want := []string{"A", "B", "C"}
	for i, w := range want {
		if txns[i].Details != w {
			t.Errorf("position %d: got %q, want %q", i, txns[i].Details, w)
		}
	}

	for i := 1; i < len(txns); i++ {
		if txns[i].PostingDate.Before(txns[i-1].PostingDate) {
			t.Errorf("not non-decreasing at position %d", i)
		}
	}
}

// Records posted on the same day must keep their extraction order.
func TestSortByPostingDateStable(t *testing.T) {
	txns := []models.Transaction{
		{PostingDate: day(2023, time.January, 5), Details: "first"},
		{PostingDate: day(2023, time.January, 5), Details: "second"},
		{PostingDate: day(2023, time.January, 2), Details: "earlier"},
		{PostingDate: day(2023, time.January, 5), Details: "third"},
	}

	sortByPostingDate(txns)

	want := []string{"earlier", "first", "second", "third"}
	for i, w := range want {
		if txns[i].Details != w {
			t.Errorf("position %d: got %q, want %q", i, txns[i].Details, w)
		}
	}
}
