package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/QuangTung97/finledger/model"
)

//go:generate moq -out projection_mocks.go . Projection

// Projection for checkpoints and the read model tables
type Projection interface {
	// GetCheckpoint locks the checkpoint row, zero version when absent
	GetCheckpoint(ctx context.Context, projection string, aggregateID string) (model.ProjectionCheckpoint, error)
	UpsertCheckpoint(ctx context.Context, checkpoint model.ProjectionCheckpoint) error
	DeleteCheckpoints(ctx context.Context, projection string) error

	// GetAccount and the other single row reads lock the row when called inside a transaction
	GetAccount(ctx context.Context, accountID string) (model.NullAccountProjection, error)
	UpsertAccount(ctx context.Context, account model.AccountProjection) error
	ListAccountsByUser(ctx context.Context, userID string) ([]model.AccountProjection, error)
	DeleteAllAccounts(ctx context.Context) error

	GetDailyAggregate(ctx context.Context, key model.DailyAggregateKey) (model.NullDailyAggregate, error)
	UpsertDailyAggregate(ctx context.Context, aggregate model.DailyAggregate) error
	ListDailyAggregates(ctx context.Context, userID string, from time.Time, to time.Time) ([]model.DailyAggregate, error)

	GetBudgetStatus(ctx context.Context, key model.BudgetStatusKey) (model.NullBudgetStatus, error)
	FindBudgetStatusByBudgetID(ctx context.Context, budgetID string) (model.NullBudgetStatus, error)
	UpsertBudgetStatus(ctx context.Context, status model.BudgetStatus) error
	ListBudgetStatuses(ctx context.Context, userID string, month string) ([]model.BudgetStatus, error)
}

type projectionRepo struct {
}

// NewProjection ...
func NewProjection() Projection {
	return &projectionRepo{}
}

const dateLayout = "2006-01-02"

// GetCheckpoint ...
func (r *projectionRepo) GetCheckpoint(
	ctx context.Context, projection string, aggregateID string,
) (model.ProjectionCheckpoint, error) {
	query := `
SELECT projection, aggregate_id, last_event_version, updated_at
FROM projection_checkpoint
WHERE projection = ? AND aggregate_id = ?
FOR UPDATE
`
	var result model.ProjectionCheckpoint
	err := GetTx(ctx).GetContext(ctx, &result, query, projection, aggregateID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ProjectionCheckpoint{
			Projection:  projection,
			AggregateID: aggregateID,
		}, nil
	}
	return result, ClassifyError(err)
}

// UpsertCheckpoint ...
func (r *projectionRepo) UpsertCheckpoint(ctx context.Context, checkpoint model.ProjectionCheckpoint) error {
	query := `
INSERT INTO projection_checkpoint (projection, aggregate_id, last_event_version, updated_at)
VALUES (:projection, :aggregate_id, :last_event_version, :updated_at) AS NEW
ON DUPLICATE KEY UPDATE
	last_event_version = NEW.last_event_version,
	updated_at = NEW.updated_at
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, checkpoint)
	return ClassifyError(err)
}

// DeleteCheckpoints ...
func (r *projectionRepo) DeleteCheckpoints(ctx context.Context, projection string) error {
	query := `DELETE FROM projection_checkpoint WHERE projection = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, projection)
	return ClassifyError(err)
}

// GetAccount ...
func (r *projectionRepo) GetAccount(ctx context.Context, accountID string) (model.NullAccountProjection, error) {
	query := `
SELECT account_id, user_id, name, currency, balance, status, last_event_version, synced_at
FROM account_projection WHERE account_id = ?
` + forUpdate(ctx)
	var result model.AccountProjection
	err := GetReadonly(ctx).GetContext(ctx, &result, query, accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullAccountProjection{}, nil
	}
	if err != nil {
		return model.NullAccountProjection{}, ClassifyError(err)
	}
	return model.NullAccountProjection{
		Valid:   true,
		Account: result,
	}, nil
}

// UpsertAccount ...
func (r *projectionRepo) UpsertAccount(ctx context.Context, account model.AccountProjection) error {
	query := `
INSERT INTO account_projection (
	account_id, user_id, name, currency, balance, status, last_event_version, synced_at
) VALUES (
	:account_id, :user_id, :name, :currency, :balance, :status, :last_event_version, :synced_at
) AS NEW
ON DUPLICATE KEY UPDATE
	user_id = NEW.user_id,
	name = NEW.name,
	currency = NEW.currency,
	balance = NEW.balance,
	status = NEW.status,
	last_event_version = NEW.last_event_version,
	synced_at = NEW.synced_at
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, account)
	return ClassifyError(err)
}

// ListAccountsByUser ...
func (r *projectionRepo) ListAccountsByUser(ctx context.Context, userID string) ([]model.AccountProjection, error) {
	query := `
SELECT account_id, user_id, name, currency, balance, status, last_event_version, synced_at
FROM account_projection WHERE user_id = ?
ORDER BY account_id
`
	var result []model.AccountProjection
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, userID)
	return result, ClassifyError(err)
}

// DeleteAllAccounts ...
func (r *projectionRepo) DeleteAllAccounts(ctx context.Context) error {
	_, err := GetTx(ctx).ExecContext(ctx, `DELETE FROM account_projection`)
	return ClassifyError(err)
}

// GetDailyAggregate ...
func (r *projectionRepo) GetDailyAggregate(
	ctx context.Context, key model.DailyAggregateKey,
) (model.NullDailyAggregate, error) {
	query := `
SELECT user_id, date, category, currency, total_amount, tx_count, average_amount, updated_at
FROM daily_aggregate
WHERE user_id = ? AND date = ? AND category = ? AND currency = ?
` + forUpdate(ctx)
	var result model.DailyAggregate
	err := GetReadonly(ctx).GetContext(ctx, &result, query,
		key.UserID, key.Date.Format(dateLayout), key.Category, key.Currency)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullDailyAggregate{}, nil
	}
	if err != nil {
		return model.NullDailyAggregate{}, ClassifyError(err)
	}
	return model.NullDailyAggregate{
		Valid:     true,
		Aggregate: result,
	}, nil
}

// UpsertDailyAggregate ...
func (r *projectionRepo) UpsertDailyAggregate(ctx context.Context, aggregate model.DailyAggregate) error {
	query := `
INSERT INTO daily_aggregate (
	user_id, date, category, currency, total_amount, tx_count, average_amount, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?) AS NEW
ON DUPLICATE KEY UPDATE
	total_amount = NEW.total_amount,
	tx_count = NEW.tx_count,
	average_amount = NEW.average_amount,
	updated_at = NEW.updated_at
`
	_, err := GetTx(ctx).ExecContext(ctx, query,
		aggregate.UserID, aggregate.Date.Format(dateLayout), aggregate.Category, aggregate.Currency,
		aggregate.TotalAmount, aggregate.TxCount, aggregate.AverageAmount, aggregate.UpdatedAt,
	)
	return ClassifyError(err)
}

// ListDailyAggregates returns aggregates of a user with from <= date <= to
func (r *projectionRepo) ListDailyAggregates(
	ctx context.Context, userID string, from time.Time, to time.Time,
) ([]model.DailyAggregate, error) {
	query := `
SELECT user_id, date, category, currency, total_amount, tx_count, average_amount, updated_at
FROM daily_aggregate
WHERE user_id = ? AND date >= ? AND date <= ?
ORDER BY date, category, currency
`
	var result []model.DailyAggregate
	err := GetReadonly(ctx).SelectContext(ctx, &result, query,
		userID, from.Format(dateLayout), to.Format(dateLayout))
	return result, ClassifyError(err)
}

const budgetStatusColumns = `
user_id, category, month, currency, budget_id, budget_amount, spent_amount,
remaining_amount, percentage_used, alert_threshold, updated_at
`

// GetBudgetStatus ...
func (r *projectionRepo) GetBudgetStatus(
	ctx context.Context, key model.BudgetStatusKey,
) (model.NullBudgetStatus, error) {
	query := `SELECT ` + budgetStatusColumns + ` FROM budget_status
WHERE user_id = ? AND category = ? AND month = ? AND currency = ?
` + forUpdate(ctx)
	return r.getBudgetStatus(ctx, query, key.UserID, key.Category, key.Month, key.Currency)
}

// FindBudgetStatusByBudgetID ...
func (r *projectionRepo) FindBudgetStatusByBudgetID(
	ctx context.Context, budgetID string,
) (model.NullBudgetStatus, error) {
	query := `SELECT ` + budgetStatusColumns + ` FROM budget_status WHERE budget_id = ? LIMIT 1 ` + forUpdate(ctx)
	return r.getBudgetStatus(ctx, query, budgetID)
}

func (r *projectionRepo) getBudgetStatus(
	ctx context.Context, query string, args ...interface{},
) (model.NullBudgetStatus, error) {
	var result model.BudgetStatus
	err := GetReadonly(ctx).GetContext(ctx, &result, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullBudgetStatus{}, nil
	}
	if err != nil {
		return model.NullBudgetStatus{}, ClassifyError(err)
	}
	return model.NullBudgetStatus{
		Valid:  true,
		Status: result,
	}, nil
}

// UpsertBudgetStatus ...
func (r *projectionRepo) UpsertBudgetStatus(ctx context.Context, status model.BudgetStatus) error {
	query := `
INSERT INTO budget_status (` + budgetStatusColumns + `) VALUES (
	:user_id, :category, :month, :currency, :budget_id, :budget_amount, :spent_amount,
	:remaining_amount, :percentage_used, :alert_threshold, :updated_at
) AS NEW
ON DUPLICATE KEY UPDATE
	budget_id = NEW.budget_id,
	budget_amount = NEW.budget_amount,
	spent_amount = NEW.spent_amount,
	remaining_amount = NEW.remaining_amount,
	percentage_used = NEW.percentage_used,
	alert_threshold = NEW.alert_threshold,
	updated_at = NEW.updated_at
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, status)
	return ClassifyError(err)
}

// ListBudgetStatuses ...
func (r *projectionRepo) ListBudgetStatuses(
	ctx context.Context, userID string, month string,
) ([]model.BudgetStatus, error) {
	query := `SELECT ` + budgetStatusColumns + ` FROM budget_status
WHERE user_id = ? AND month = ?
ORDER BY category, currency
`
	var result []model.BudgetStatus
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, userID, month)
	return result, ClassifyError(err)
}
