package service

import (
	"context"

	"github.com/boardkit-dev/boardkit/shared/domain"
)

type ItemService interface {
	Create(ctx context.Context, accountId domain.AccountId, data domain.ItemCreationData) (domain.Item, error)
	Rename(ctx context.Context, accountId domain.AccountId, itemId domain.ItemId, title string) (domain.Item, error)
	Delete(ctx context.Context, accountId domain.AccountId, itemId domain.ItemId) error
}

type Item struct {
	storage        ItemStorage
	guard          OwnershipGuard
	titleValidator NameValidator
}

type ItemStorage interface {
	CreateItem(ctx context.Context, data domain.ItemCreationData) (domain.Item, error)
	RenameItem(ctx context.Context, itemId domain.ItemId, title domain.ItemTitle) (domain.Item, error)
	DeleteItem(ctx context.Context, itemId domain.ItemId) error
}

func NewItem(storage ItemStorage, guard OwnershipGuard, validator NameValidator) ItemService {
	return &Item{storage, guard, validator}
}

// Create guards via the owning column's board; the storage layer copies the
// column's board_id onto the item so the denormalization stays consistent.
func (i *Item) Create(ctx context.Context, accountId domain.AccountId, data domain.ItemCreationData) (domain.Item, error) {
	title, err := i.titleValidator.Clean(data.Title)
	if err != nil {
		return domain.Item{}, err
	}
	data.Title = title

	if _, err := i.guard.AssertColumn(ctx, accountId, data.ColumnId); err != nil {
		return domain.Item{}, err
	}
	if data.Id == "" {
		data.Id = domain.NewEntityId()
	}

	return i.storage.CreateItem(ctx, data)
}

func (i *Item) Rename(ctx context.Context, accountId domain.AccountId, itemId domain.ItemId, title string) (domain.Item, error) {
	title, err := i.titleValidator.Clean(title)
	if err != nil {
		return domain.Item{}, err
	}
	if _, err := i.guard.AssertItem(ctx, accountId, itemId); err != nil {
		return domain.Item{}, err
	}

	return i.storage.RenameItem(ctx, itemId, title)
}

func (i *Item) Delete(ctx context.Context, accountId domain.AccountId, itemId domain.ItemId) error {
	if _, err := i.guard.AssertItem(ctx, accountId, itemId); err != nil {
		return err
	}

	return i.storage.DeleteItem(ctx, itemId)
}
