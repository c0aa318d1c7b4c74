package domain

import (
	"time"

	"github.com/QuangTung97/finledger/model"
	"github.com/shopspring/decimal"
)

// AccountType ...
type AccountType string

const (
	// AccountTypeChecking ...
	AccountTypeChecking AccountType = "checking"

	// AccountTypeSavings ...
	AccountTypeSavings AccountType = "savings"

	// AccountTypeBusiness ...
	AccountTypeBusiness AccountType = "business"

	// AccountTypeCreditCard ...
	AccountTypeCreditCard AccountType = "credit_card"

	// AccountTypeCash ...
	AccountTypeCash AccountType = "cash"
)

// AccountCreated is the first event of an account
type AccountCreated struct {
	UserID         string          `json:"user_id"`
	Name           string          `json:"name"`
	AccountType    AccountType     `json:"account_type"`
	Currency       Currency        `json:"currency"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

// TransactionCreated moves money in or out of an account
type TransactionCreated struct {
	TransactionID   string          `json:"transaction_id"`
	UserID          string          `json:"user_id"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        Currency        `json:"currency"`
	TransactionType TransactionType `json:"transaction_type"`
	MerchantName    string          `json:"merchant_name,omitempty"`
	Description     string          `json:"description,omitempty"`
	Category        string          `json:"category,omitempty"`
	TransactionDate time.Time       `json:"transaction_date"`
}

// CategorizedBy tells who chose the category of a transaction
type CategorizedBy string

const (
	// CategorizedByUser ...
	CategorizedByUser CategorizedBy = "user"

	// CategorizedByModel is a classifier prediction, it comes with a confidence score
	CategorizedByModel CategorizedBy = "ml_model"

	// CategorizedByRule ...
	CategorizedByRule CategorizedBy = "rule"
)

// TransactionCategorized corrects the category of an earlier transaction.
// It repeats the amount, date and type of the transaction so read models can move the spending.
type TransactionCategorized struct {
	TransactionID    string          `json:"transaction_id"`
	UserID           string          `json:"user_id"`
	Category         string          `json:"category"`
	Subcategory      string          `json:"subcategory,omitempty"`
	PreviousCategory string          `json:"previous_category"`
	CategorizedBy    CategorizedBy   `json:"categorized_by"`
	Confidence       decimal.Decimal `json:"confidence"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         Currency        `json:"currency"`
	TransactionType  TransactionType `json:"transaction_type"`
	TransactionDate  time.Time       `json:"transaction_date"`
}

// AccountRenamed keeps the old name for audit
type AccountRenamed struct {
	OldName string `json:"old_name"`
	NewName string `json:"new_name"`
}

// OverdraftLimitSet allows the balance to go below zero down to -Limit
type OverdraftLimitSet struct {
	Limit decimal.Decimal `json:"limit"`
}

// AccountClosed is a logical deletion, the stream is kept
type AccountClosed struct {
	Reason       string          `json:"reason"`
	FinalBalance decimal.Decimal `json:"final_balance"`
}

// EventType ...
func (AccountCreated) EventType() EventType { return EventTypeAccountCreated }

// EventType ...
func (TransactionCreated) EventType() EventType { return EventTypeTransactionCreated }

// EventType ...
func (TransactionCategorized) EventType() EventType { return EventTypeTransactionCategorized }

// EventType ...
func (AccountRenamed) EventType() EventType { return EventTypeAccountRenamed }

// EventType ...
func (OverdraftLimitSet) EventType() EventType { return EventTypeOverdraftLimitSet }

// EventType ...
func (AccountClosed) EventType() EventType { return EventTypeAccountClosed }

// AggregateType ...
func (AccountCreated) AggregateType() model.AggregateType { return model.AggregateTypeAccount }

// AggregateType ...
func (TransactionCreated) AggregateType() model.AggregateType { return model.AggregateTypeAccount }

// AggregateType ...
func (TransactionCategorized) AggregateType() model.AggregateType { return model.AggregateTypeAccount }

// AggregateType ...
func (AccountRenamed) AggregateType() model.AggregateType { return model.AggregateTypeAccount }

// AggregateType ...
func (OverdraftLimitSet) AggregateType() model.AggregateType { return model.AggregateTypeAccount }

// AggregateType ...
func (AccountClosed) AggregateType() model.AggregateType { return model.AggregateTypeAccount }

func (AccountCreated) sealed()         {}
func (TransactionCreated) sealed()     {}
func (TransactionCategorized) sealed() {}
func (AccountRenamed) sealed()         {}
func (OverdraftLimitSet) sealed()      {}
func (AccountClosed) sealed()          {}

// SignedAmount is positive for credits and negative for debits
func (t TransactionCreated) SignedAmount() decimal.Decimal {
	if t.TransactionType == TransactionTypeDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}

// CategoryOrDefault ...
func (t TransactionCreated) CategoryOrDefault() string {
	if t.Category == "" {
		return CategoryUncategorized
	}
	return t.Category
}

// Spending is the transaction as it stood before the new category
func (c TransactionCategorized) Spending() TransactionCreated {
	return TransactionCreated{
		TransactionID:   c.TransactionID,
		UserID:          c.UserID,
		Amount:          c.Amount,
		Currency:        c.Currency,
		TransactionType: c.TransactionType,
		Category:        c.PreviousCategory,
		TransactionDate: c.TransactionDate,
	}
}

// Recategorized is the transaction with the new category
func (c TransactionCategorized) Recategorized() TransactionCreated {
	tx := c.Spending()
	tx.Category = c.Category
	return tx
}
