package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmountGroupsThousands(t *testing.T) {
	assert.Equal(t, "$1,250.35", FormatAmount(1250.35))
	assert.Equal(t, "$0.00", FormatAmount(0))
	assert.Equal(t, "$-42.50", FormatAmount(-42.5))
}

func TestTransactionStatusClassifiesByAge(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, StatusProcessing, TransactionStatus(now, now))
	assert.Equal(t, StatusProcessing, TransactionStatus(now.Add(-47*time.Hour), now))
	assert.Equal(t, StatusSuccess, TransactionStatus(now.Add(-49*time.Hour), now))
	// Well in the future still reads as processing, never as a third state.
	assert.Equal(t, StatusProcessing, TransactionStatus(now.Add(24*time.Hour), now))
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2026, 1, 7, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, "Wed, Jan 7, 3:04 PM", FormatDateTime(ts))
	assert.Equal(t, "Jan 7, 2026", FormatDate(ts))
}

func TestRemoveSpecialCharacters(t *testing.T) {
	assert.Equal(t, "Uber 0630 SFPOOL", RemoveSpecialCharacters("Uber 06/30 SF**POOL"))
	assert.Equal(t, "plain text", RemoveSpecialCharacters("plain text"))
	assert.Equal(t, "", RemoveSpecialCharacters("!@#$%"))
}
