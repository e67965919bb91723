package dbmetrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationName(t *testing.T) {
	assert.Equal(t, "select", operationName("SELECT id FROM stocks"))
	assert.Equal(t, "insert", operationName("\n  INSERT INTO stocks (offer_id) VALUES ($1)"))
	assert.Equal(t, "unknown", operationName("   "))
}

type fakeTx struct {
	DBExecutor
}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

func TestGetExecutor_PrefersTransactionFromContext(t *testing.T) {
	db := &DB{}
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, db, GetExecutor(ctx, db))

	tx := &fakeTx{}
	txCtx := WithTx(ctx, tx)

	assert.True(t, IsInTransaction(txCtx))
	assert.Same(t, tx, GetExecutor(txCtx, db))
}
