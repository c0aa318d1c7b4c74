package domain

import (
	"testing"

	"github.com/QuangTung97/finledger/model"
	"github.com/stretchr/testify/assert"
)

func newBudgetEvent(version int64, p Payload) Event {
	return Event{
		AggregateType: model.AggregateTypeBudget,
		AggregateID:   "budget-1",
		Version:       version,
		Payload:       p,
	}
}

func TestBudget_Create(t *testing.T) {
	payloads, err := NewBudget().Create(CreateBudgetInput{
		UserID:   "user-1",
		Name:     "Food",
		Category: " Groceries",
		Month:    "2024-03",
		Limit:    newDecimal("4000"),
		Currency: "NOK",
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(payloads))

	created := payloads[0].(BudgetCreated)
	assert.Equal(t, "groceries", created.Category)
	assertDecimal(t, "0.8", created.AlertThreshold)

	s := FoldBudget(NewBudget(), newBudgetEvent(1, created))
	assert.Equal(t, true, s.Exists)
	assert.Equal(t, "2024-03", s.Month)

	_, err = s.Create(CreateBudgetInput{})
	assert.Equal(t, ErrBudgetAlreadyExists, err)
}

func TestBudget_Create__Validation(t *testing.T) {
	base := CreateBudgetInput{
		Name: "Food", Month: "2024-03", Limit: newDecimal("1"), Currency: "NOK",
	}

	in := base
	in.Month = "2024/03"
	_, err := NewBudget().Create(in)
	assert.Equal(t, ErrInvalidMonth, err)

	in = base
	in.Limit = newDecimal("0")
	_, err = NewBudget().Create(in)
	assert.Equal(t, ErrInvalidAmount, err)

	in = base
	in.AlertThreshold = newDecimal("1.5")
	_, err = NewBudget().Create(in)
	assert.Equal(t, ErrInvalidThreshold, err)
}

func TestBudget_UpdateLimit(t *testing.T) {
	_, err := NewBudget().UpdateLimit(newDecimal("10"))
	assert.Equal(t, ErrBudgetNotFound, err)

	s := Budget{Exists: true, Limit: newDecimal("100")}

	payloads, err := s.UpdateLimit(newDecimal("100.00"))
	assert.Equal(t, nil, err)
	assert.Nil(t, payloads)

	payloads, err = s.UpdateLimit(newDecimal("150"))
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(payloads))
	updated := payloads[0].(BudgetUpdated)
	assertDecimal(t, "100", updated.OldLimit)
	assertDecimal(t, "150", updated.NewLimit)

	s = FoldBudget(s, newBudgetEvent(2, payloads[0]))
	assertDecimal(t, "150", s.Limit)
}

func TestBudget_CheckSpending(t *testing.T) {
	_, err := NewBudget().CheckSpending(newDecimal("1"))
	assert.Equal(t, ErrBudgetNotFound, err)

	s := FoldBudget(NewBudget(), newBudgetEvent(1, BudgetCreated{
		UserID:         "user-1",
		Name:           "Food",
		Category:       "food",
		Month:          "2024-03",
		Limit:          newDecimal("200"),
		Currency:       CurrencyNOK,
		AlertThreshold: newDecimal("0.8"),
	}))

	payloads, err := s.CheckSpending(newDecimal("159.99"))
	assert.Equal(t, nil, err)
	assert.Nil(t, payloads)

	payloads, err = s.CheckSpending(newDecimal("170"))
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(payloads))
	threshold := payloads[0].(BudgetThresholdExceeded)
	assert.Equal(t, "food", threshold.Category)
	assert.Equal(t, CurrencyNOK, threshold.Currency)
	assertDecimal(t, "200", threshold.Limit)
	assertDecimal(t, "170", threshold.CurrentSpending)
	assertDecimal(t, "85", threshold.PercentageUsed)
	s = FoldBudget(s, newBudgetEvent(2, payloads[0]))

	// the threshold alert is raised once
	payloads, err = s.CheckSpending(newDecimal("250"))
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(payloads))
	exceeded := payloads[0].(BudgetExceeded)
	assert.Equal(t, "Food", exceeded.Name)
	assertDecimal(t, "50", exceeded.ExceededBy)
	s = FoldBudget(s, newBudgetEvent(3, exceeded))

	payloads, err = s.CheckSpending(newDecimal("300"))
	assert.Equal(t, nil, err)
	assert.Nil(t, payloads)

	// a new limit re-arms both alerts
	s = FoldBudget(s, newBudgetEvent(4, BudgetUpdated{OldLimit: newDecimal("200"), NewLimit: newDecimal("250")}))
	payloads, err = s.CheckSpending(newDecimal("300"))
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(payloads))
	assert.Equal(t, EventTypeBudgetThresholdExceeded, payloads[0].EventType())
	assert.Equal(t, EventTypeBudgetExceeded, payloads[1].EventType())

	_, err = s.CheckSpending(newDecimal("-1"))
	assert.Equal(t, ErrInvalidAmount, err)
}
