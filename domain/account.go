package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus ...
type AccountStatus int

const (
	// AccountStatusNone before the account is created
	AccountStatusNone AccountStatus = 0

	// AccountStatusOpen ...
	AccountStatusOpen AccountStatus = 1

	// AccountStatusClosed ...
	AccountStatusClosed AccountStatus = 2
)

// TransactionRef is what an account keeps of each of its transactions
type TransactionRef struct {
	TransactionID   string
	UserID          string
	Amount          decimal.Decimal
	Currency        Currency
	TransactionType TransactionType
	Category        string
	TransactionDate time.Time
}

// transactionLog is a persistent list, newest first. Folds only push nodes,
// so a state stays valid after later events are folded onto it.
type transactionLog struct {
	ref  TransactionRef
	prev *transactionLog
}

func (l *transactionLog) push(ref TransactionRef) *transactionLog {
	return &transactionLog{ref: ref, prev: l}
}

func (l *transactionLog) find(transactionID string) (TransactionRef, bool) {
	for n := l; n != nil; n = n.prev {
		if n.ref.TransactionID == transactionID {
			return n.ref, true
		}
	}
	return TransactionRef{}, false
}

// Account is the state of an account aggregate, the fold of its events
type Account struct {
	UserID      string
	Name        string
	AccountType AccountType
	Currency    Currency
	Status      AccountStatus

	Balance        decimal.Decimal
	OverdraftLimit decimal.Decimal

	TransactionCount int64

	transactions *transactionLog
}

// NewAccount returns the initial state
func NewAccount() Account {
	return Account{}
}

// FoldAccount applies one event to an account state. It never mutates its input.
// Events of other aggregate types are ignored.
func FoldAccount(s Account, e Event) Account {
	switch p := e.Payload.(type) {
	case AccountCreated:
		s.UserID = p.UserID
		s.Name = p.Name
		s.AccountType = p.AccountType
		s.Currency = p.Currency
		s.Status = AccountStatusOpen
		s.Balance = s.Balance.Add(p.InitialBalance)

	case TransactionCreated:
		s.Balance = s.Balance.Add(p.SignedAmount())
		s.TransactionCount++
		if s.Currency == "" {
			s.Currency = p.Currency
		}
		if s.UserID == "" {
			s.UserID = p.UserID
		}
		if p.TransactionID != "" {
			date := p.TransactionDate
			if date.IsZero() {
				date = e.CreatedAt
			}
			s.transactions = s.transactions.push(TransactionRef{
				TransactionID:   p.TransactionID,
				UserID:          p.UserID,
				Amount:          p.Amount,
				Currency:        p.Currency,
				TransactionType: p.TransactionType,
				Category:        p.CategoryOrDefault(),
				TransactionDate: date.UTC(),
			})
		}

	case TransactionCategorized:
		if ref, ok := s.transactions.find(p.TransactionID); ok {
			ref.Category = p.Category
			s.transactions = s.transactions.push(ref)
		}

	case AccountRenamed:
		s.Name = p.NewName

	case OverdraftLimitSet:
		s.OverdraftLimit = p.Limit

	case AccountClosed:
		s.Status = AccountStatusClosed
	}
	return s
}

// Transaction returns the latest known state of a transaction of this account
func (s Account) Transaction(transactionID string) (TransactionRef, bool) {
	return s.transactions.find(transactionID)
}

// Available is the amount that can still be withdrawn
func (s Account) Available() decimal.Decimal {
	return s.Balance.Add(s.OverdraftLimit)
}

// OpenAccountInput ...
type OpenAccountInput struct {
	UserID         string
	Name           string
	AccountType    AccountType
	Currency       string
	InitialBalance decimal.Decimal
}

// TransactionInput ...
type TransactionInput struct {
	TransactionID   string
	Amount          decimal.Decimal
	Currency        string
	MerchantName    string
	Description     string
	Category        string
	TransactionDate time.Time
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 255 {
		return "", ErrInvalidName
	}
	return name, nil
}

// Open decides the events for opening an account
func (s Account) Open(in OpenAccountInput) ([]Payload, error) {
	if s.Status != AccountStatusNone {
		return nil, ErrAccountAlreadyExists
	}
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}
	currency, err := ParseCurrency(in.Currency)
	if err != nil {
		return nil, err
	}
	if in.InitialBalance.IsNegative() {
		return nil, ErrInvalidAmount
	}
	accountType := in.AccountType
	if accountType == "" {
		accountType = AccountTypeChecking
	}
	return []Payload{
		AccountCreated{
			UserID:         in.UserID,
			Name:           name,
			AccountType:    accountType,
			Currency:       currency,
			InitialBalance: RoundMoney(in.InitialBalance),
		},
	}, nil
}

func (s Account) checkOpen() error {
	switch s.Status {
	case AccountStatusNone:
		return ErrAccountNotFound
	case AccountStatusClosed:
		return ErrAccountClosed
	default:
		return nil
	}
}

func (s Account) newTransaction(in TransactionInput, txType TransactionType) (TransactionCreated, error) {
	if err := s.checkOpen(); err != nil {
		return TransactionCreated{}, err
	}
	if !in.Amount.IsPositive() {
		return TransactionCreated{}, ErrInvalidAmount
	}
	currency := s.Currency
	if in.Currency != "" {
		c, err := ParseCurrency(in.Currency)
		if err != nil {
			return TransactionCreated{}, err
		}
		if c != s.Currency {
			return TransactionCreated{}, ErrCurrencyMismatch
		}
	}
	return TransactionCreated{
		TransactionID:   in.TransactionID,
		UserID:          s.UserID,
		Amount:          RoundMoney(in.Amount),
		Currency:        currency,
		TransactionType: txType,
		MerchantName:    in.MerchantName,
		Description:     in.Description,
		Category:        normalizeCategory(in.Category),
		TransactionDate: in.TransactionDate.UTC(),
	}, nil
}

// Deposit decides a credit transaction
func (s Account) Deposit(in TransactionInput) ([]Payload, error) {
	tx, err := s.newTransaction(in, TransactionTypeCredit)
	if err != nil {
		return nil, err
	}
	return []Payload{tx}, nil
}

// Withdraw decides a debit transaction, the balance plus overdraft limit must cover it
func (s Account) Withdraw(in TransactionInput) ([]Payload, error) {
	tx, err := s.newTransaction(in, TransactionTypeDebit)
	if err != nil {
		return nil, err
	}
	if s.Available().LessThan(tx.Amount) {
		return nil, ErrInsufficientFunds
	}
	return []Payload{tx}, nil
}

// Rename returns no events when the name does not change
func (s Account) Rename(newName string) ([]Payload, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	name, err := normalizeName(newName)
	if err != nil {
		return nil, err
	}
	if name == s.Name {
		return nil, nil
	}
	return []Payload{AccountRenamed{OldName: s.Name, NewName: name}}, nil
}

// SetOverdraftLimit ...
func (s Account) SetOverdraftLimit(limit decimal.Decimal) ([]Payload, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	if limit.IsNegative() {
		return nil, ErrInvalidAmount
	}
	limit = RoundMoney(limit)
	if limit.Equal(s.OverdraftLimit) {
		return nil, nil
	}
	return []Payload{OverdraftLimitSet{Limit: limit}}, nil
}

// Close ...
func (s Account) Close(reason string) ([]Payload, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	return []Payload{
		AccountClosed{
			Reason:       strings.TrimSpace(reason),
			FinalBalance: s.Balance,
		},
	}, nil
}

// CategorizeInput ...
type CategorizeInput struct {
	TransactionID string
	Category      string
	Subcategory   string
	CategorizedBy CategorizedBy
	Confidence    decimal.Decimal
}

var maxConfidence = decimal.NewFromInt(1)

// Categorize moves a transaction to another category, no events when the category does not change.
// Transactions of closed accounts can still be corrected.
func (s Account) Categorize(in CategorizeInput) ([]Payload, error) {
	if s.Status == AccountStatusNone {
		return nil, ErrAccountNotFound
	}
	ref, ok := s.transactions.find(in.TransactionID)
	if !ok {
		return nil, ErrTransactionNotFound
	}

	category := normalizeCategory(in.Category)
	if category == "" {
		return nil, ErrInvalidCategory
	}

	by := in.CategorizedBy
	if by == "" {
		by = CategorizedByUser
	}
	switch by {
	case CategorizedByUser, CategorizedByModel, CategorizedByRule:
	default:
		return nil, ErrInvalidCategorizer
	}
	if in.Confidence.IsNegative() || in.Confidence.GreaterThan(maxConfidence) {
		return nil, ErrInvalidConfidence
	}

	if category == ref.Category {
		return nil, nil
	}
	return []Payload{
		TransactionCategorized{
			TransactionID:    ref.TransactionID,
			UserID:           ref.UserID,
			Category:         category,
			Subcategory:      strings.TrimSpace(in.Subcategory),
			PreviousCategory: ref.Category,
			CategorizedBy:    by,
			Confidence:       in.Confidence,
			Amount:           ref.Amount,
			Currency:         ref.Currency,
			TransactionType:  ref.TransactionType,
			TransactionDate:  ref.TransactionDate,
		},
	}, nil
}
