package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Transaction types as reported by the ledger.
const (
	TransactionTypeDebit  = "debit"
	TransactionTypeCredit = "credit"
)

// Transaction is a single ledger entry. Entries are immutable once fetched;
// pages only ever slice the list for pagination.
type Transaction struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
	Type   string    `json:"type"`
	// PaymentChannel is "online", "in store", or "internal" for transfers
	// made through this application.
	PaymentChannel string `json:"payment_channel"`
	Category       string `json:"category"`
	Pending        bool   `json:"pending"`
}

// UnmarshalJSON tolerates the two shapes the backend emits: aggregated
// entries have string ids and date-only values ("2006-01-02"), while ledger
// entries created through this application have numeric ids and full
// RFC 3339 timestamps.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	type alias Transaction
	aux := struct {
		*alias
		ID   json.RawMessage `json:"id"`
		Date string          `json:"date"`
	}{alias: (*alias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.ID) > 0 {
		var s string
		if err := json.Unmarshal(aux.ID, &s); err == nil {
			t.ID = s
		} else {
			var n json.Number
			if err := json.Unmarshal(aux.ID, &n); err != nil {
				return fmt.Errorf("transaction: unrecognized id %s", aux.ID)
			}
			t.ID = n.String()
		}
	}
	if aux.Date == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, aux.Date); err == nil {
			t.Date = parsed
			return nil
		}
	}
	return fmt.Errorf("transaction %s: unrecognized date %q", t.ID, aux.Date)
}

// IsDebit reports whether the entry reduces the account balance.
func (t Transaction) IsDebit() bool { return t.Type == TransactionTypeDebit }

// TransferResult is the payment processor's response to a transfer request.
type TransferResult struct {
	TransferURL string `json:"transfer_url,omitempty"`
	Status      string `json:"status,omitempty"`
}
