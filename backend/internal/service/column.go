package service

import (
	"context"

	"github.com/boardkit-dev/boardkit/shared/domain"
)

type ColumnService interface {
	Create(ctx context.Context, accountId domain.AccountId, data domain.ColumnCreationData) (domain.Column, error)
	Rename(ctx context.Context, accountId domain.AccountId, columnId domain.ColumnId, name string) (domain.Column, error)
	Delete(ctx context.Context, accountId domain.AccountId, columnId domain.ColumnId) error
}

type Column struct {
	storage       ColumnStorage
	guard         OwnershipGuard
	nameValidator NameValidator
}

type ColumnStorage interface {
	CreateColumn(ctx context.Context, data domain.ColumnCreationData) (domain.Column, error)
	RenameColumn(ctx context.Context, columnId domain.ColumnId, name domain.ColumnName) (domain.Column, error)
	DeleteColumn(ctx context.Context, columnId domain.ColumnId) error
}

func NewColumn(storage ColumnStorage, guard OwnershipGuard, validator NameValidator) ColumnService {
	return &Column{storage, guard, validator}
}

// Create guards on the board, the most specific ancestor that exists before
// the insert. A caller-supplied id is used verbatim so the client can know
// the final id before the round trip completes.
func (c *Column) Create(ctx context.Context, accountId domain.AccountId, data domain.ColumnCreationData) (domain.Column, error) {
	name, err := c.nameValidator.Clean(data.Name)
	if err != nil {
		return domain.Column{}, err
	}
	data.Name = name

	if err := c.guard.AssertBoard(ctx, accountId, data.BoardId); err != nil {
		return domain.Column{}, err
	}
	if data.Id == "" {
		data.Id = domain.NewEntityId()
	}

	return c.storage.CreateColumn(ctx, data)
}

func (c *Column) Rename(ctx context.Context, accountId domain.AccountId, columnId domain.ColumnId, name string) (domain.Column, error) {
	name, err := c.nameValidator.Clean(name)
	if err != nil {
		return domain.Column{}, err
	}
	if _, err := c.guard.AssertColumn(ctx, accountId, columnId); err != nil {
		return domain.Column{}, err
	}

	return c.storage.RenameColumn(ctx, columnId, name)
}

func (c *Column) Delete(ctx context.Context, accountId domain.AccountId, columnId domain.ColumnId) error {
	if _, err := c.guard.AssertColumn(ctx, accountId, columnId); err != nil {
		return err
	}

	return c.storage.DeleteColumn(ctx, columnId)
}
