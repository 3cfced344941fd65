package actions

import (
	"context"
	"net/http"

	"github.com/horizonbank/horizon/internal/domain"
)

// Fixed values stamped onto every transaction created through this
// application's transfer flow.
const (
	transferChannel  = "online"
	transferCategory = "TRANSFER"
)

// TransferParams identifies the two funding sources and the amount for a
// fund transfer. The amount travels as a string because the payment
// processor expects an exact decimal representation.
type TransferParams struct {
	SourceFundingSourceURL      string `json:"source_funding_source_url"`
	DestinationFundingSourceURL string `json:"destination_funding_source_url"`
	Amount                      string `json:"amount"`
}

// TransactionParams carries the ledger entry recorded after a successful
// transfer. Channel and category are filled in by CreateTransaction.
type TransactionParams struct {
	Name           string  `json:"name,omitempty"`
	Amount         float64 `json:"amount"`
	SenderID       int     `json:"sender_id"`
	ReceiverID     int     `json:"receiver_id"`
	Email          string  `json:"email,omitempty"`
	SenderBankID   int     `json:"sender_bank_id,omitempty"`
	ReceiverBankID int     `json:"receiver_bank_id,omitempty"`
	Channel        string  `json:"channel"`
	Category       string  `json:"category"`
}

// CreateTransfer moves funds between two funding sources through the
// backend's payment processor.
func (s *Service) CreateTransfer(ctx context.Context, params TransferParams) (*domain.TransferResult, error) {
	var resp domain.TransferResult
	if _, err := s.backend.Do(ctx, http.MethodPost, "transaction/createTransfer", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateTransaction records a ledger entry for a completed transfer. The
// channel and category are fixed regardless of what the caller supplies.
func (s *Service) CreateTransaction(ctx context.Context, params TransactionParams) (*domain.Transaction, error) {
	params.Channel = transferChannel
	params.Category = transferCategory

	var resp domain.Transaction
	if _, err := s.backend.Do(ctx, http.MethodPost, "transaction/createTransaction", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
