package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-SchedulingService/pkg/dbmetrics"
)

type fakeTx struct {
	commitErr  error
	committed  bool
	rolledBack bool
}

func (t *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	commitErrs []error // ошибка фиксации для каждой открытой транзакции по порядку
	txs        []*fakeTx
}

func (b *fakeBeginner) BeginTx(_ context.Context, _ *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	tx := &fakeTx{}
	if len(b.txs) < len(b.commitErrs) {
		tx.commitErr = b.commitErrs[len(b.txs)]
	}
	b.txs = append(b.txs, tx)
	return tx, nil
}

func serializationErr() error {
	return &pq.Error{Code: "40001", Message: "could not serialize access due to concurrent update"}
}

func TestDoSerializable_RetriesOnSerializationFailure(t *testing.T) {
	beginner := &fakeBeginner{commitErrs: []error{serializationErr(), serializationErr(), nil}}
	m := NewTransactionManager(beginner)

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		// в каждой попытке контекст несет свежую транзакцию
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 3, calls)
	require.Len(t, beginner.txs, 3)
	assert.True(t, beginner.txs[2].committed)
}

func TestDoSerializable_GivesUpAfterMaxAttempts(t *testing.T) {
	beginner := &fakeBeginner{commitErrs: []error{
		serializationErr(), serializationErr(), serializationErr(), serializationErr(),
	}}
	m := NewTransactionManager(beginner)

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})
	require.Error(t, err)

	var pqErr *pq.Error
	assert.True(t, errors.As(err, &pqErr))
	assert.Equal(t, maxSerializationAttempts, calls)
	assert.Len(t, beginner.txs, maxSerializationAttempts)
}

func TestDoSerializable_NoRetryOnOtherCommitErrors(t *testing.T) {
	beginner := &fakeBeginner{commitErrs: []error{errors.New("connection lost")}}
	m := NewTransactionManager(beginner)

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})
	require.Error(t, err)

	assert.Equal(t, 1, calls)
	assert.Len(t, beginner.txs, 1)
}

func TestDoSerializable_FnErrorRollsBackWithoutRetry(t *testing.T) {
	beginner := &fakeBeginner{}
	m := NewTransactionManager(beginner)

	sentinel := errors.New("business rule rejected")
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	require.Len(t, beginner.txs, 1)
	assert.True(t, beginner.txs[0].rolledBack)
	assert.False(t, beginner.txs[0].committed)
}

func TestDoSerializable_ReusesEnclosingTransaction(t *testing.T) {
	beginner := &fakeBeginner{}
	m := NewTransactionManager(beginner)

	outer := &fakeTx{}
	ctx := dbmetrics.WithTx(context.Background(), outer)

	calls := 0
	err := m.DoSerializable(ctx, func(ctx context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	// новая транзакция не открывается и чужая не фиксируется
	assert.Empty(t, beginner.txs)
	assert.False(t, outer.committed)
}
