package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardkit-dev/boardkit/shared/domain"
	"github.com/boardkit-dev/boardkit/shared/errors"
)

func TestGuard_AssertBoard(t *testing.T) {
	storage := &mockGuardStorage{
		BoardOwnerFunc: func(ctx context.Context, boardId domain.BoardId) (domain.AccountId, error) {
			if boardId == 1 {
				return 10, nil
			}
			return 0, errors.NotFound("Board not found")
		},
	}
	guard := NewGuard(storage)

	assert.NoError(t, guard.AssertBoard(context.Background(), 10, 1))

	// another account's board and a missing board must be indistinguishable
	mismatch := guard.AssertBoard(context.Background(), 99, 1)
	absent := guard.AssertBoard(context.Background(), 10, 2)
	require.Error(t, mismatch)
	require.Error(t, absent)
	assert.Equal(t, mismatch.Error(), absent.Error())
	assert.True(t, errors.IsNotFound(mismatch))
	assert.True(t, errors.IsNotFound(absent))
}

func TestGuard_AssertColumn(t *testing.T) {
	ownership := domain.ColumnOwnership{Column: "col-1", Board: 1, Owner: 10}
	storage := &mockGuardStorage{
		ColumnOwnerFunc: func(ctx context.Context, columnId domain.ColumnId) (domain.ColumnOwnership, error) {
			if columnId == "col-1" {
				return ownership, nil
			}
			return domain.ColumnOwnership{}, errors.NotFound("Column not found")
		},
	}
	guard := NewGuard(storage)

	own, err := guard.AssertColumn(context.Background(), 10, "col-1")
	require.NoError(t, err)
	assert.Equal(t, ownership, own)

	_, mismatch := guard.AssertColumn(context.Background(), 99, "col-1")
	_, absent := guard.AssertColumn(context.Background(), 10, "col-2")
	require.Error(t, mismatch)
	require.Error(t, absent)
	assert.Equal(t, mismatch.Error(), absent.Error())

	var statusErr *errors.ErrorWithStatusCode
	require.ErrorAs(t, mismatch, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestGuard_AssertItem(t *testing.T) {
	ownership := domain.ItemOwnership{Item: "item-1", Column: "col-1", Board: 1, Owner: 10}
	storage := &mockGuardStorage{
		ItemOwnerFunc: func(ctx context.Context, itemId domain.ItemId) (domain.ItemOwnership, error) {
			if itemId == "item-1" {
				return ownership, nil
			}
			return domain.ItemOwnership{}, errors.NotFound("Item not found")
		},
	}
	guard := NewGuard(storage)

	own, err := guard.AssertItem(context.Background(), 10, "item-1")
	require.NoError(t, err)
	assert.Equal(t, ownership, own)

	_, mismatch := guard.AssertItem(context.Background(), 99, "item-1")
	_, absent := guard.AssertItem(context.Background(), 10, "item-2")
	require.Error(t, mismatch)
	require.Error(t, absent)
	assert.Equal(t, mismatch.Error(), absent.Error())
}

func TestGuard_StorageErrorPassesThrough(t *testing.T) {
	storage := &mockGuardStorage{
		BoardOwnerFunc: func(ctx context.Context, boardId domain.BoardId) (domain.AccountId, error) {
			return 0, assert.AnError
		},
	}
	guard := NewGuard(storage)

	err := guard.AssertBoard(context.Background(), 10, 1)
	assert.ErrorIs(t, err, assert.AnError)
}
