//go:build unit

package readstore

import (
	"context"
	"fmt"
	"testing"

	"dartshop/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRow struct {
	err error
}

func (r stubRow) Scan(dest ...any) error { return r.err }

type stubDB struct {
	rowErr error
}

func (d stubDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (d stubDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, d.rowErr
}

func (d stubDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return stubRow{err: d.rowErr}
}

func TestInventoryFindByID_NoRowsMapsToNotFound(t *testing.T) {
	// The driver error may arrive wrapped; the kind mapping has to see
	// through that.
	store := NewInventoryReadStore(stubDB{rowErr: fmt.Errorf("scan item: %w", pgx.ErrNoRows)})

	view, err := store.FindByID(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestInventoryFindByID_ScanFailureIsDBFailure(t *testing.T) {
	store := NewInventoryReadStore(stubDB{rowErr: fmt.Errorf("connection reset")})

	view, err := store.FindByID(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	assert.False(t, infra.IsKind(err, infra.KindNotFound))
}

func TestOrderFindByID_NoRowsMapsToNotFound(t *testing.T) {
	store := NewOrderReadStore(stubDB{rowErr: fmt.Errorf("scan order: %w", pgx.ErrNoRows)})

	view, err := store.FindByID(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
