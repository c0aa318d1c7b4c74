//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/QuangTung97/finledger/model"
	"github.com/QuangTung97/finledger/pkg/integration"
	"github.com/stretchr/testify/assert"
)

func newContext() context.Context {
	return context.Background()
}

func TestProvider_Readonly__GetReadonly(t *testing.T) {
	tc := integration.NewTestCase()

	p := NewProvider(tc.DB)
	ctx := p.Readonly(newContext())

	db := GetReadonly(ctx)

	var version string
	err := db.GetContext(ctx, &version, "SELECT VERSION()")
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__GetTransaction(t *testing.T) {
	tc := integration.NewTestCase()

	var version string

	p := NewProvider(tc.DB)
	err := p.Transact(newContext(), func(ctx context.Context) error {
		tx := GetTx(ctx)

		err := tx.GetContext(ctx, &version, "SELECT VERSION()")
		assert.Equal(t, nil, err)

		return nil
	})
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__GetReadonly(t *testing.T) {
	tc := integration.NewTestCase()

	var version string

	p := NewProvider(tc.DB)
	err := p.Transact(newContext(), func(ctx context.Context) error {
		db := GetReadonly(ctx)

		err := db.GetContext(ctx, &version, "SELECT VERSION()")
		assert.Equal(t, nil, err)

		return nil
	})
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__Multi_Calls_Multi_Levels(t *testing.T) {
	tc := integration.NewTestCase()

	var version string

	p := NewProvider(tc.DB)
	err := p.Transact(newContext(), func(ctx context.Context) error {
		return p.Transact(ctx, func(ctx context.Context) error {
			tx := GetTx(ctx)

			err := tx.GetContext(ctx, &version, "SELECT VERSION()")
			assert.Equal(t, nil, err)

			return nil
		})
	})
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__Rollback_On_Error(t *testing.T) {
	tc := integration.NewTestCase()
	tc.Truncate("projection_checkpoint")

	p := NewProvider(tc.DB)
	repo := NewProjection()

	fnErr := errors.New("some error")
	err := p.Transact(newContext(), func(ctx context.Context) error {
		err := repo.UpsertCheckpoint(ctx, model.ProjectionCheckpoint{
			Projection:       "account",
			AggregateID:      "acc-1",
			LastEventVersion: 3,
			UpdatedAt:        newTime("2024-01-15T10:00:00Z"),
		})
		assert.Equal(t, nil, err)
		return fnErr
	})
	assert.Equal(t, fnErr, err)

	var count int
	err = tc.DB.Get(&count, "SELECT COUNT(*) FROM projection_checkpoint")
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, count)
}
