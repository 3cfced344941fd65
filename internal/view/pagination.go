package view

import "github.com/horizonbank/horizon/internal/domain"

// RowsPerPage is the fixed page size for transaction tables.
const RowsPerPage = 10

// TotalPages returns ceil(count / RowsPerPage).
func TotalPages(count int) int {
	return (count + RowsPerPage - 1) / RowsPerPage
}

// ClampPage pins a requested 1-based page to the valid range so a stale or
// hand-edited page parameter never shows "Page 5 of 2" over an empty table.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate returns the visible slice for a 1-based page over the full
// transaction list: [(page-1)*size, page*size), clamped to the list. Pages
// out of range yield an empty slice; slices over consecutive pages are
// disjoint and exhaustive.
func Paginate(transactions []domain.Transaction, page int) []domain.Transaction {
	if page < 1 {
		page = 1
	}
	first := (page - 1) * RowsPerPage
	if first >= len(transactions) {
		return nil
	}
	last := first + RowsPerPage
	if last > len(transactions) {
		last = len(transactions)
	}
	return transactions[first:last]
}
