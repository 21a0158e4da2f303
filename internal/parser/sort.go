package parser

import (
	"sort"

	"github.com/insightdelivered/hsbc-statement-converter/internal/models"
)

// sortByPostingDate orders transactions by posting date ascending. The sort
// is stable: records posted on the same day keep their extraction order.
func sortByPostingDate(txns []models.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].PostingDate.Before(txns[j].PostingDate)
	})
}
