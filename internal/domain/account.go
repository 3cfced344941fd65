package domain

// Account is a linked bank account as aggregated by the backend. Accounts
// are fetched per page and never mutated client-side.
type Account struct {
	ID               string  `json:"id"`
	AvailableBalance float64 `json:"available_balance"`
	CurrentBalance   float64 `json:"current_balance"`
	InstitutionID    string  `json:"institution_id"`
	Name             string  `json:"name"`
	OfficialName     string  `json:"official_name"`
	// Mask is the last digits of the account number, for display only.
	Mask    string `json:"mask"`
	Type    string `json:"type"`
	Subtype string `json:"subtype"`
	BankID  int    `json:"bank_id"`
	// ShareableID is the stable external-facing reference for this account,
	// distinct from any internal database key. It is what travels in the
	// `id` query parameter and in transfer destinations.
	ShareableID string `json:"shareable_id"`
	// FundingSourceURL is the payment-processor funding source used as a
	// transfer endpoint. Empty for accounts that are not ACH-eligible.
	FundingSourceURL string `json:"funding_source_url,omitempty"`
}

// AccountsResponse is the ordered collection of a user's accounts plus the
// backend-computed aggregates. The aggregates are rendered as-is, never
// recomputed here.
type AccountsResponse struct {
	Accounts            []Account `json:"accounts"`
	TotalBanks          int       `json:"total_banks"`
	TotalCurrentBalance float64   `json:"total_current_balance"`
}

// First returns the first account in the list, or nil when none is linked.
func (r *AccountsResponse) First() *Account {
	if r == nil || len(r.Accounts) == 0 {
		return nil
	}
	return &r.Accounts[0]
}

// FindByShareableID looks an account up by its shareable id.
func (r *AccountsResponse) FindByShareableID(id string) *Account {
	if r == nil {
		return nil
	}
	for i := range r.Accounts {
		if r.Accounts[i].ShareableID == id {
			return &r.Accounts[i]
		}
	}
	return nil
}

// AccountDetail is one account plus its full transaction history, newest
// first, as returned by the backend's getAccount operation.
type AccountDetail struct {
	Data         Account       `json:"data"`
	Transactions []Transaction `json:"transactions"`
}
