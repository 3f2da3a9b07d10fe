package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "github.com/tropicaldog17/cryptofolio/internal/errors"
)

func init() {
	// quantities and amounts travel as JSON numbers, both on the API and in the
	// persisted record
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction is one recorded cryptocurrency purchase. It is not modified
// after creation.
type Transaction struct {
	ID            string          `json:"id"`
	Coin          string          `json:"coin"`
	Symbol        string          `json:"symbol"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchaseDate  Date            `json:"purchaseDate"`
	InvestedValue decimal.Decimal `json:"investedValue"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// TransactionInput is the user-submitted part of a Transaction.
type TransactionInput struct {
	Coin          string          `json:"coin"`
	Symbol        string          `json:"symbol"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchaseDate  Date            `json:"purchaseDate"`
	InvestedValue decimal.Decimal `json:"investedValue"`
}

// Validate checks the input the way the submission form does. Returns an
// *errors.ErrValidation for the first invalid field.
func (in *TransactionInput) Validate() error {
	if strings.TrimSpace(in.Coin) == "" {
		return &apperrors.ErrValidation{Field: "coin", Message: "is required"}
	}
	if !in.Quantity.IsPositive() {
		return &apperrors.ErrValidation{Field: "quantity", Message: "must be greater than zero"}
	}
	if in.PurchaseDate.IsZero() {
		return &apperrors.ErrValidation{Field: "purchaseDate", Message: "is required"}
	}
	if !in.InvestedValue.IsPositive() {
		return &apperrors.ErrValidation{Field: "investedValue", Message: "must be greater than zero"}
	}
	return nil
}

// NewTransaction creates a Transaction from in with a fresh ID.
// It does not validate.
func NewTransaction(in TransactionInput, now time.Time) *Transaction {
	return &Transaction{
		ID:            uuid.NewString(),
		Coin:          in.Coin,
		Symbol:        in.Symbol,
		Quantity:      in.Quantity,
		PurchaseDate:  in.PurchaseDate,
		InvestedValue: in.InvestedValue,
		CreatedAt:     now.UTC(),
	}
}

// UnitPrice returns InvestedValue / Quantity, or zero when Quantity is zero.
func (t *Transaction) UnitPrice() decimal.Decimal {
	if t.Quantity.IsZero() {
		return decimal.Zero
	}
	return t.InvestedValue.Div(t.Quantity)
}
