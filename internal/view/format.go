package view

import (
	"regexp"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Transaction status badges. Every transaction classifies into exactly one.
const (
	StatusProcessing = "Processing"
	StatusSuccess    = "Success"
)

// settlementWindow is how long a transaction is considered in flight before
// it is displayed as settled.
const settlementWindow = 48 * time.Hour

var (
	currencyPrinter  = message.NewPrinter(language.AmericanEnglish)
	specialCharsExpr = regexp.MustCompile(`[^\w\s]`)
)

// FormatAmount renders a dollar amount for display, e.g. "$1,250.35".
func FormatAmount(amount float64) string {
	return currencyPrinter.Sprintf("$%.2f", amount)
}

// FormatDateTime renders a transaction timestamp the way the tables show
// it, e.g. "Wed, Jan 1, 3:04 PM".
func FormatDateTime(t time.Time) string {
	return t.Format("Mon, Jan 2, 3:04 PM")
}

// FormatDate renders a calendar date, e.g. "Jan 1, 2026".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// TransactionStatus classifies a transaction by its age: entries newer than
// the settlement window are still processing, everything older has settled.
func TransactionStatus(date, now time.Time) string {
	if date.After(now.Add(-settlementWindow)) {
		return StatusProcessing
	}
	return StatusSuccess
}

// RemoveSpecialCharacters strips punctuation from ledger entry names for
// display, keeping letters, digits, and spaces.
func RemoveSpecialCharacters(s string) string {
	return specialCharsExpr.ReplaceAllString(s, "")
}
