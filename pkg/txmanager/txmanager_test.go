package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-EventStockService/pkg/dbmetrics"
)

type fakeTx struct {
	dbmetrics.DBExecutor
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx       *fakeTx
	lastOpts *sql.TxOptions
	begins   int
	beginErr error
}

func (b *fakeBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.begins++
	b.lastOpts = opts
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	return b.tx, nil
}

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	tm := NewTransactionManager(beginner)

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.True(t, beginner.tx.committed)
	assert.False(t, beginner.tx.rolledBack)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	tm := NewTransactionManager(beginner)
	fnErr := errors.New("insert failed")

	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		return fnErr
	})

	require.ErrorIs(t, err, fnErr)
	assert.True(t, beginner.tx.rolledBack)
	assert.False(t, beginner.tx.committed)
	assert.Equal(t, sql.LevelSerializable, beginner.lastOpts.Isolation)
}

func TestTransactionManager_NestedCallReusesTransaction(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	tm := NewTransactionManager(beginner)

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		return tm.Do(ctx, func(ctx context.Context) error { return nil })
	})

	require.NoError(t, err)
	assert.Equal(t, 1, beginner.begins)
}

func TestTransactionManager_BeginError(t *testing.T) {
	beginner := &fakeBeginner{beginErr: errors.New("connection refused")}
	tm := NewTransactionManager(beginner)

	err := tm.Do(context.Background(), func(ctx context.Context) error { return nil })

	require.ErrorIs(t, err, ErrTransaction)
}
