package actions

import (
	"context"
	"net/http"

	"github.com/horizonbank/horizon/internal/domain"
)

// CreateLinkToken asks the backend for a short-lived token that initializes
// the Plaid Link widget for the current user.
func (s *Service) CreateLinkToken(ctx context.Context) (string, error) {
	var resp struct {
		LinkToken string `json:"link_token"`
	}
	if _, err := s.backend.Do(ctx, http.MethodPost, "bank/plaid/create_link_token", struct{}{}, &resp); err != nil {
		return "", err
	}
	return resp.LinkToken, nil
}

// ExchangePublicToken trades the widget-issued public token for a permanent
// backend-side credential. The backend links every eligible account exactly
// once, so a retried exchange cannot duplicate accounts.
func (s *Service) ExchangePublicToken(ctx context.Context, publicToken string) error {
	payload := map[string]string{"public_token": publicToken}
	_, err := s.backend.Do(ctx, http.MethodPost, "bank/plaid/exchange_public_token", payload, nil)
	return err
}

// GetAccounts fetches all linked accounts plus the backend-computed
// aggregates (bank count, total balance).
func (s *Service) GetAccounts(ctx context.Context) (*domain.AccountsResponse, error) {
	var resp domain.AccountsResponse
	if _, err := s.backend.Do(ctx, http.MethodGet, "bank/getAccounts", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAccount fetches one account's detail and transaction history by its
// shareable id.
func (s *Service) GetAccount(ctx context.Context, shareableID string) (*domain.AccountDetail, error) {
	params := map[string]string{"shareableId": shareableID}
	var resp domain.AccountDetail
	if _, err := s.backend.Do(ctx, http.MethodGet, "bank/getAccount", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
