package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// GetTx get Transaction from context
func GetTx(ctx context.Context) Transaction {
	tx, ok := ctx.Value(ctxTxKey).(ctxTxValue)
	if !ok {
		panic("Not found transaction")
	}
	return tx.tx
}

// GetReadonly get Readonly from context, inside a transaction it reads through the transaction
func GetReadonly(ctx context.Context) Readonly {
	tx, ok := ctx.Value(ctxTxKey).(ctxTxValue)
	if ok {
		return tx.tx
	}
	db, ok := ctx.Value(ctxReadonlyKey).(ctxReadonlyValue)
	if !ok {
		panic("Not found readonly repository")
	}
	return db.db
}

func hasTx(ctx context.Context) bool {
	_, ok := ctx.Value(ctxTxKey).(ctxTxValue)
	return ok
}

// forUpdate locks the selected rows when the read runs inside a transaction
func forUpdate(ctx context.Context) string {
	if hasTx(ctx) {
		return "FOR UPDATE"
	}
	return ""
}

type ctxTxKeyType struct {
}

type ctxReadonlyKeyType struct {
}

var ctxTxKey = ctxTxKeyType{}
var ctxReadonlyKey = ctxReadonlyKeyType{}

type ctxTxValue struct {
	tx *sqlx.Tx
}

type ctxReadonlyValue struct {
	db *sqlx.DB
}
