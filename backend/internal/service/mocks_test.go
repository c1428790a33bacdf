package service

import (
	"context"

	"github.com/boardkit-dev/boardkit/shared/domain"
)

// Func-field mocks: each test sets only the calls it expects; an unexpected
// call panics on the nil func and fails loudly.

type mockGuardStorage struct {
	BoardOwnerFunc  func(ctx context.Context, boardId domain.BoardId) (domain.AccountId, error)
	ColumnOwnerFunc func(ctx context.Context, columnId domain.ColumnId) (domain.ColumnOwnership, error)
	ItemOwnerFunc   func(ctx context.Context, itemId domain.ItemId) (domain.ItemOwnership, error)
}

func (m *mockGuardStorage) BoardOwner(ctx context.Context, boardId domain.BoardId) (domain.AccountId, error) {
	return m.BoardOwnerFunc(ctx, boardId)
}

func (m *mockGuardStorage) ColumnOwner(ctx context.Context, columnId domain.ColumnId) (domain.ColumnOwnership, error) {
	return m.ColumnOwnerFunc(ctx, columnId)
}

func (m *mockGuardStorage) ItemOwner(ctx context.Context, itemId domain.ItemId) (domain.ItemOwnership, error) {
	return m.ItemOwnerFunc(ctx, itemId)
}

type mockGuard struct {
	AssertBoardFunc  func(ctx context.Context, accountId domain.AccountId, boardId domain.BoardId) error
	AssertColumnFunc func(ctx context.Context, accountId domain.AccountId, columnId domain.ColumnId) (domain.ColumnOwnership, error)
	AssertItemFunc   func(ctx context.Context, accountId domain.AccountId, itemId domain.ItemId) (domain.ItemOwnership, error)
}

func (m *mockGuard) AssertBoard(ctx context.Context, accountId domain.AccountId, boardId domain.BoardId) error {
	return m.AssertBoardFunc(ctx, accountId, boardId)
}

func (m *mockGuard) AssertColumn(ctx context.Context, accountId domain.AccountId, columnId domain.ColumnId) (domain.ColumnOwnership, error) {
	return m.AssertColumnFunc(ctx, accountId, columnId)
}

func (m *mockGuard) AssertItem(ctx context.Context, accountId domain.AccountId, itemId domain.ItemId) (domain.ItemOwnership, error) {
	return m.AssertItemFunc(ctx, accountId, itemId)
}

// passGuard allows everything.
func passGuard() *mockGuard {
	return &mockGuard{
		AssertBoardFunc: func(ctx context.Context, accountId domain.AccountId, boardId domain.BoardId) error {
			return nil
		},
		AssertColumnFunc: func(ctx context.Context, accountId domain.AccountId, columnId domain.ColumnId) (domain.ColumnOwnership, error) {
			return domain.ColumnOwnership{Owner: accountId}, nil
		},
		AssertItemFunc: func(ctx context.Context, accountId domain.AccountId, itemId domain.ItemId) (domain.ItemOwnership, error) {
			return domain.ItemOwnership{Owner: accountId}, nil
		},
	}
}

type mockValidator struct {
	CleanFunc func(raw string) (string, error)
}

func (m *mockValidator) Clean(raw string) (string, error) {
	if m.CleanFunc != nil {
		return m.CleanFunc(raw)
	}
	return raw, nil
}

type mockBoardStorage struct {
	CreateBoardFunc func(ctx context.Context, data domain.BoardCreationData) (domain.Board, error)
	RenameBoardFunc func(ctx context.Context, boardId domain.BoardId, name domain.BoardName) (domain.Board, error)
	BoardsFunc      func(ctx context.Context, accountId domain.AccountId) ([]domain.Board, error)
	BoardFunc       func(ctx context.Context, accountId domain.AccountId, boardId domain.BoardId) (*domain.Board, error)
}

func (m *mockBoardStorage) CreateBoard(ctx context.Context, data domain.BoardCreationData) (domain.Board, error) {
	return m.CreateBoardFunc(ctx, data)
}

func (m *mockBoardStorage) RenameBoard(ctx context.Context, boardId domain.BoardId, name domain.BoardName) (domain.Board, error) {
	return m.RenameBoardFunc(ctx, boardId, name)
}

func (m *mockBoardStorage) Boards(ctx context.Context, accountId domain.AccountId) ([]domain.Board, error) {
	return m.BoardsFunc(ctx, accountId)
}

func (m *mockBoardStorage) Board(ctx context.Context, accountId domain.AccountId, boardId domain.BoardId) (*domain.Board, error) {
	return m.BoardFunc(ctx, accountId, boardId)
}

type mockColumnStorage struct {
	CreateColumnFunc func(ctx context.Context, data domain.ColumnCreationData) (domain.Column, error)
	RenameColumnFunc func(ctx context.Context, columnId domain.ColumnId, name domain.ColumnName) (domain.Column, error)
	DeleteColumnFunc func(ctx context.Context, columnId domain.ColumnId) error
}

func (m *mockColumnStorage) CreateColumn(ctx context.Context, data domain.ColumnCreationData) (domain.Column, error) {
	return m.CreateColumnFunc(ctx, data)
}

func (m *mockColumnStorage) RenameColumn(ctx context.Context, columnId domain.ColumnId, name domain.ColumnName) (domain.Column, error) {
	return m.RenameColumnFunc(ctx, columnId, name)
}

func (m *mockColumnStorage) DeleteColumn(ctx context.Context, columnId domain.ColumnId) error {
	return m.DeleteColumnFunc(ctx, columnId)
}

type mockItemStorage struct {
	CreateItemFunc func(ctx context.Context, data domain.ItemCreationData) (domain.Item, error)
	RenameItemFunc func(ctx context.Context, itemId domain.ItemId, title domain.ItemTitle) (domain.Item, error)
	DeleteItemFunc func(ctx context.Context, itemId domain.ItemId) error
}

func (m *mockItemStorage) CreateItem(ctx context.Context, data domain.ItemCreationData) (domain.Item, error) {
	return m.CreateItemFunc(ctx, data)
}

func (m *mockItemStorage) RenameItem(ctx context.Context, itemId domain.ItemId, title domain.ItemTitle) (domain.Item, error) {
	return m.RenameItemFunc(ctx, itemId, title)
}

func (m *mockItemStorage) DeleteItem(ctx context.Context, itemId domain.ItemId) error {
	return m.DeleteItemFunc(ctx, itemId)
}
