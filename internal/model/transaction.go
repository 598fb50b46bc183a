package model

import "time"

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is a single ledger entry shown on the finance widgets.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// GetID returns the transaction identity.
func (t *Transaction) GetID() string { return t.ID }

// SetID sets the transaction identity.
func (t *Transaction) SetID(id string) { t.ID = id }

// Created returns the creation timestamp.
func (t *Transaction) Created() time.Time { return t.CreatedAt }

// Stamp sets the creation timestamp and defaults Date to it.
func (t *Transaction) Stamp(createdAt, _ time.Time) {
	t.CreatedAt = createdAt
	if t.Date.IsZero() {
		t.Date = createdAt
	}
}

// Signed returns the amount with expenses negated.
func (t *Transaction) Signed() float64 {
	if t.Type == TransactionExpense {
		return -t.Amount
	}
	return t.Amount
}
