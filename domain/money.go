package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is an ISO 4217 code
type Currency string

// Supported currencies
const (
	CurrencyNOK Currency = "NOK"
	CurrencyDKK Currency = "DKK"
	CurrencyMAD Currency = "MAD"
	CurrencySEK Currency = "SEK"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
	CurrencyAUD Currency = "AUD"
	CurrencyCAD Currency = "CAD"
	CurrencyCHF Currency = "CHF"
)

var supportedCurrencies = map[Currency]struct{}{
	CurrencyNOK: {}, CurrencyDKK: {}, CurrencyMAD: {}, CurrencySEK: {},
	CurrencyUSD: {}, CurrencyEUR: {}, CurrencyGBP: {}, CurrencyJPY: {},
	CurrencyAUD: {}, CurrencyCAD: {}, CurrencyCHF: {},
}

// ParseCurrency normalizes and validates a currency code
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := supportedCurrencies[c]; !ok {
		return "", ErrUnsupportedCurrency
	}
	return c, nil
}

// MoneyScale is the number of fractional digits stored for money amounts
const MoneyScale = 4

// RoundMoney rounds an amount to the stored scale
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

var hundred = decimal.NewFromInt(100)

// PercentageOf returns part / whole * 100 rounded to 2 places, zero when whole is zero
func PercentageOf(part decimal.Decimal, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred).Round(2)
}

// TransactionType ...
type TransactionType string

const (
	// TransactionTypeCredit money coming in
	TransactionTypeCredit TransactionType = "credit"

	// TransactionTypeDebit money going out
	TransactionTypeDebit TransactionType = "debit"
)

// CategoryUncategorized is used when a transaction carries no category
const CategoryUncategorized = "uncategorized"

func normalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
