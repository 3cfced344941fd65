package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// SignInRequest is the sign-in form payload.
type SignInRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// SignUpRequest is the registration form payload. No ssn field exists here
// on purpose; it is never collected or forwarded.
type SignUpRequest struct {
	FirstName   string `form:"first_name" validate:"required,min=2,max=50"`
	LastName    string `form:"last_name" validate:"required,min=2,max=50"`
	Email       string `form:"email" validate:"required,email"`
	Password    string `form:"password" validate:"required,min=8"`
	Address1    string `form:"address1" validate:"max=100"`
	City        string `form:"city" validate:"max=50"`
	State       string `form:"state" validate:"max=20"`
	PostalCode  string `form:"postal_code" validate:"max=10"`
	DateOfBirth string `form:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
}

// TransferRequest is the payment-transfer form payload. The amount stays a
// string end to end; the payment processor wants an exact decimal.
type TransferRequest struct {
	SourceID      string `form:"source_id" validate:"required"`
	DestinationID string `form:"destination_id" validate:"required"`
	Amount        string `form:"amount" validate:"required,numeric"`
	Email         string `form:"email" validate:"omitempty,email"`
	Note          string `form:"note" validate:"max=500"`
}

// ExchangeRequest carries the public token posted back by the Plaid widget.
type ExchangeRequest struct {
	PublicToken string `form:"public_token" validate:"required"`
}
