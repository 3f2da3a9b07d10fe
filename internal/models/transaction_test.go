package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/tropicaldog17/cryptofolio/internal/errors"
)

func validInput() TransactionInput {
	return TransactionInput{
		Coin:          "Bitcoin",
		Symbol:        "BTC",
		Quantity:      decimal.NewFromFloat(0.5),
		PurchaseDate:  NewDate(2024, time.March, 10),
		InvestedValue: decimal.NewFromInt(150000),
	}
}

func TestTransactionInputValidate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*TransactionInput)
		expectedField string
	}{
		{name: "valid input", mutate: func(*TransactionInput) {}},
		{name: "blank coin", mutate: func(in *TransactionInput) { in.Coin = "   " }, expectedField: "coin"},
		{name: "zero quantity", mutate: func(in *TransactionInput) { in.Quantity = decimal.Zero }, expectedField: "quantity"},
		{name: "negative quantity", mutate: func(in *TransactionInput) { in.Quantity = decimal.NewFromInt(-1) }, expectedField: "quantity"},
		{name: "missing date", mutate: func(in *TransactionInput) { in.PurchaseDate = Date{} }, expectedField: "purchaseDate"},
		{name: "zero invested value", mutate: func(in *TransactionInput) { in.InvestedValue = decimal.Zero }, expectedField: "investedValue"},
		{name: "empty symbol is allowed", mutate: func(in *TransactionInput) { in.Symbol = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			err := in.Validate()
			if tt.expectedField == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			verr, ok := err.(*apperrors.ErrValidation)
			if !ok {
				t.Fatalf("expected *ErrValidation, got %T (%v)", err, err)
			}
			if verr.Field != tt.expectedField {
				t.Errorf("expected field %q, got %q", tt.expectedField, verr.Field)
			}
		})
	}
}

func TestNewTransaction(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	a := NewTransaction(validInput(), now)
	b := NewTransaction(validInput(), now)

	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("expected distinct non-empty IDs, got %q and %q", a.ID, b.ID)
	}
	if !a.CreatedAt.Equal(now) {
		t.Errorf("expected CreatedAt %v, got %v", now, a.CreatedAt)
	}
	if a.Coin != "Bitcoin" || a.Symbol != "BTC" {
		t.Errorf("unexpected coin fields: %q %q", a.Coin, a.Symbol)
	}
}

func TestTransactionJSONFieldNames(t *testing.T) {
	tx := NewTransaction(validInput(), time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))
	b, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, want := range []string{`"id":`, `"coin":"Bitcoin"`, `"symbol":"BTC"`, `"quantity":0.5`, `"purchaseDate":"2024-03-10"`, `"investedValue":150000`, `"createdAt":"2024-03-10T12:00:00Z"`} {
		if !strings.Contains(s, want) {
			t.Errorf("expected %s in %s", want, s)
		}
	}
}

func TestTransactionUnmarshalNumbers(t *testing.T) {
	raw := `{"id":"abc","coin":"Ethereum","symbol":"ETH","quantity":10,"purchaseDate":"2024-01-05","investedValue":150000.25,"createdAt":"2024-01-05T08:30:00.000Z"}`
	var tx Transaction
	if err := json.Unmarshal([]byte(raw), &tx); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !tx.Quantity.Equal(decimal.NewFromInt(10)) {
		t.Errorf("unexpected quantity %s", tx.Quantity)
	}
	if !tx.InvestedValue.Equal(decimal.RequireFromString("150000.25")) {
		t.Errorf("unexpected invested value %s", tx.InvestedValue)
	}
	if tx.PurchaseDate != NewDate(2024, time.January, 5) {
		t.Errorf("unexpected purchase date %s", tx.PurchaseDate)
	}
}

func TestTransactionUnitPrice(t *testing.T) {
	tx := &Transaction{Quantity: decimal.NewFromInt(4), InvestedValue: decimal.NewFromInt(100)}
	if got := tx.UnitPrice(); !got.Equal(decimal.NewFromInt(25)) {
		t.Errorf("expected 25, got %s", got)
	}
	tx.Quantity = decimal.Zero
	if got := tx.UnitPrice(); !got.IsZero() {
		t.Errorf("expected zero unit price for zero quantity, got %s", got)
	}
}
