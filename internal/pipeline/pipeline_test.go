package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/insightdelivered/hsbc-statement-converter/internal/reconcile"
)

func TestConvertPages(t *testing.T) {
	c := New(Options{LenientNoiseFilter: true}, nil)

	pages := []string{
		`Statement Date: 02JAN2023
The amount to be debited from your account is 120.45
05JAN06JAN SUPERMARKET PURCHASE 123.45
07JAN07JAN REFUND STORE 3.00 CR`,
	}

	stmt, err := c.ConvertPages(pages)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stmt.Transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(stmt.Transactions))
	}
}

func TestConvertPagesReconciliationFailure(t *testing.T) {
	c := New(Options{LenientNoiseFilter: true}, nil)

	pages := []string{
		`Statement Date: 02JAN2023
The amount to be debited from your account is 500.00
05JAN06JAN SUPERMARKET PURCHASE 123.45`,
	}

	_, err := c.ConvertPages(pages)
	var mismatch *reconcile.DebitMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected DebitMismatchError, got %T: %v", err, err)
	}
}

// A failure on one file must not prevent subsequent files from being
// attempted.
func TestRunBatchContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "export.csv")
	if err := os.WriteFile(good, []byte(`01/02/2023,PAYMENT,10.00`), 0o644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	missing := filepath.Join(dir, "does-not-exist.csv")

	c := New(Options{}, nil)
	results := c.RunBatch([]string{missing, good}, true)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Err == nil {
		t.Error("expected error for missing file")
	}
	if results[1].Err != nil {
		t.Errorf("expected second file to succeed, got %v", results[1].Err)
	}
	if results[1].Output == "" {
		t.Error("expected output path for transformed file")
	}
}
