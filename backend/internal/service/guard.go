package service

import (
	"context"

	"github.com/boardkit-dev/boardkit/shared/domain"
	"github.com/boardkit-dev/boardkit/shared/errors"
)

// OwnershipGuard verifies that a resource transitively belongs to the
// requesting account before any store mutation touches it.
type OwnershipGuard interface {
	AssertBoard(ctx context.Context, accountId domain.AccountId, boardId domain.BoardId) error
	AssertColumn(ctx context.Context, accountId domain.AccountId, columnId domain.ColumnId) (domain.ColumnOwnership, error)
	AssertItem(ctx context.Context, accountId domain.AccountId, itemId domain.ItemId) (domain.ItemOwnership, error)
}

type Guard struct {
	storage GuardStorage
}

type GuardStorage interface {
	BoardOwner(ctx context.Context, boardId domain.BoardId) (domain.AccountId, error)
	ColumnOwner(ctx context.Context, columnId domain.ColumnId) (domain.ColumnOwnership, error)
	ItemOwner(ctx context.Context, itemId domain.ItemId) (domain.ItemOwnership, error)
}

func NewGuard(storage GuardStorage) *Guard {
	return &Guard{storage}
}

// An ownership mismatch returns the same NotFound as absence: a requester
// must not be able to tell that a resource exists under another account.

func (g *Guard) AssertBoard(ctx context.Context, accountId domain.AccountId, boardId domain.BoardId) error {
	owner, err := g.storage.BoardOwner(ctx, boardId)
	if err != nil {
		return err
	}
	if owner != accountId {
		return errors.NotFound("Board not found")
	}
	return nil
}

func (g *Guard) AssertColumn(ctx context.Context, accountId domain.AccountId, columnId domain.ColumnId) (domain.ColumnOwnership, error) {
	own, err := g.storage.ColumnOwner(ctx, columnId)
	if err != nil {
		return domain.ColumnOwnership{}, err
	}
	if own.Owner != accountId {
		return domain.ColumnOwnership{}, errors.NotFound("Column not found")
	}
	return own, nil
}

func (g *Guard) AssertItem(ctx context.Context, accountId domain.AccountId, itemId domain.ItemId) (domain.ItemOwnership, error) {
	own, err := g.storage.ItemOwner(ctx, itemId)
	if err != nil {
		return domain.ItemOwnership{}, err
	}
	if own.Owner != accountId {
		return domain.ItemOwnership{}, errors.NotFound("Item not found")
	}
	return own, nil
}
