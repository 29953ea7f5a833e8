package simpletxmanager

import (
	"context"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serializationErr() error {
	return &pq.Error{Code: "40001", Message: "could not serialize access due to concurrent update"}
}

func TestDoSerializable_RetriesOnSerializationFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(serializationErr())
	mock.ExpectBegin()
	mock.ExpectCommit()

	m := NewTransactionManager(db)

	calls := 0
	err = m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_GivesUpAfterMaxAttempts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for i := 0; i < maxSerializationAttempts; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(serializationErr())
	}

	m := NewTransactionManager(db)

	calls := 0
	err = m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})
	require.Error(t, err)

	var pqErr *pq.Error
	assert.True(t, errors.As(err, &pqErr))
	assert.Equal(t, maxSerializationAttempts, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_NoRetryOnOtherCommitErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("connection lost"))

	m := NewTransactionManager(db)

	calls := 0
	err = m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})
	require.Error(t, err)

	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_FnErrorRollsBackWithoutRetry(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	m := NewTransactionManager(db)

	sentinel := errors.New("business rule rejected")
	err = m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)
	assert.NoError(t, mock.ExpectationsWereMet())
}
