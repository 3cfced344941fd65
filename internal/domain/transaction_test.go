package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionUnmarshalAggregatedShape(t *testing.T) {
	raw := `{"id": "txn_abc", "name": "Uber", "amount": 5.40, "date": "2024-03-01", "type": "debit", "payment_channel": "online", "category": "Travel", "pending": false}`

	var txn Transaction
	require.NoError(t, json.Unmarshal([]byte(raw), &txn))

	assert.Equal(t, "txn_abc", txn.ID)
	assert.Equal(t, "Uber", txn.Name)
	assert.InDelta(t, 5.40, txn.Amount, 0.001)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), txn.Date)
	assert.True(t, txn.IsDebit())
}

func TestTransactionUnmarshalLedgerShape(t *testing.T) {
	raw := `{"id": 42, "name": "Transfer", "amount": 25, "date": "2024-03-01T15:04:05Z", "type": "credit"}`

	var txn Transaction
	require.NoError(t, json.Unmarshal([]byte(raw), &txn))

	assert.Equal(t, "42", txn.ID)
	assert.Equal(t, 15, txn.Date.Hour())
	assert.False(t, txn.IsDebit())
}

func TestTransactionUnmarshalRejectsUnknownDate(t *testing.T) {
	raw := `{"id": "txn_abc", "date": "March 1st"}`

	var txn Transaction
	assert.Error(t, json.Unmarshal([]byte(raw), &txn))
}

func TestAccountsResponseSelection(t *testing.T) {
	resp := &AccountsResponse{Accounts: []Account{
		{Name: "Checking", ShareableID: "aaa"},
		{Name: "Savings", ShareableID: "bbb"},
	}}

	assert.Equal(t, "Checking", resp.First().Name)
	assert.Equal(t, "Savings", resp.FindByShareableID("bbb").Name)
	assert.Nil(t, resp.FindByShareableID("zzz"))

	var empty *AccountsResponse
	assert.Nil(t, empty.First())
	assert.Nil(t, empty.FindByShareableID("aaa"))
}

func TestUserDisplayName(t *testing.T) {
	assert.Equal(t, "Ada", (&User{FirstName: "Ada", LastName: "Lovelace"}).DisplayName())
	assert.Equal(t, "Guest", (&User{}).DisplayName())
	assert.Equal(t, "Guest", (*User)(nil).DisplayName())
}
