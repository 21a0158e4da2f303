package writer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/insightdelivered/hsbc-statement-converter/internal/models"
)

// CSVWriter renders transactions as a semicolon-delimited file with no
// header row: postingDate;transactionDate;details;amount.
type CSVWriter struct {
	// DecimalComma renders amounts with a decimal comma instead of a
	// decimal point, for import targets that expect German number format.
	DecimalComma bool
}

// WriteToFile writes the transaction list to the given path. The output is
// rendered fully in memory first so a failed render never leaves a partial
// file behind.
func (w *CSVWriter) WriteToFile(path string, txns []models.Transaction) error {
	var buf bytes.Buffer
	if err := w.Write(&buf, txns); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %q: %w", path, err)
	}
	return nil
}

// Write renders the transaction list to the given writer. Dates are
// rendered DD/MM/YYYY, amounts as fixed two-decimal text.
func (w *CSVWriter) Write(out io.Writer, txns []models.Transaction) error {
	cw := csv.NewWriter(out)
	cw.Comma = ';'
	defer cw.Flush()

	for _, txn := range txns {
		row := []string{
			txn.PostingDate.Format("02/01/2006"),
			txn.TransactionDate.Format("02/01/2006"),
			txn.Details,
			w.formatAmount(txn.Amount),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func (w *CSVWriter) formatAmount(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	if w.DecimalComma {
		s = strings.Replace(s, ".", ",", 1)
	}
	return s
}

// OutputPath derives the output file path from the input path by replacing
// its extension with .csv.
func OutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".csv"
}
