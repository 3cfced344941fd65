package domain

// User represents the authenticated account holder as returned by the
// backend on a successful verify, sign-in, or sign-up call. It is held in
// per-request memory only and never persisted by this application.
type User struct {
	ID               int    `json:"id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	Address1         string `json:"address1,omitempty"`
	City             string `json:"city,omitempty"`
	State            string `json:"state,omitempty"`
	PostalCode       string `json:"postal_code,omitempty"`
	DateOfBirth      string `json:"date_of_birth,omitempty"`
	DwollaCustomerID string `json:"dwolla_customer_id,omitempty"`
	// DwollaCustomerURL is the payment-processor customer resource backing
	// this user's funding sources.
	DwollaCustomerURL string `json:"dwolla_customer_url,omitempty"`
}

// DisplayName returns the name shown in greetings and on bank cards.
func (u *User) DisplayName() string {
	if u == nil || u.FirstName == "" {
		return "Guest"
	}
	return u.FirstName
}
