package service

import (
	"context"

	"github.com/boardkit-dev/boardkit/shared/domain"
)

const defaultBoardColor = "#e3e3e3"

// to mock service in tests
type BoardService interface {
	Create(ctx context.Context, accountId domain.AccountId, name, color string) (domain.Board, error)
	Rename(ctx context.Context, accountId domain.AccountId, boardId domain.BoardId, name string) (domain.Board, error)
	All(ctx context.Context, accountId domain.AccountId) ([]domain.Board, error)
	// Get returns (nil, nil) when the board is absent or not owned.
	Get(ctx context.Context, accountId domain.AccountId, boardId domain.BoardId) (*domain.Board, error)
}

type Board struct {
	storage       BoardStorage
	guard         OwnershipGuard
	nameValidator NameValidator
}

type BoardStorage interface {
	CreateBoard(ctx context.Context, data domain.BoardCreationData) (domain.Board, error)
	RenameBoard(ctx context.Context, boardId domain.BoardId, name domain.BoardName) (domain.Board, error)
	Boards(ctx context.Context, accountId domain.AccountId) ([]domain.Board, error)
	Board(ctx context.Context, accountId domain.AccountId, boardId domain.BoardId) (*domain.Board, error)
}

type NameValidator interface {
	Clean(raw string) (string, error)
}

func NewBoard(storage BoardStorage, guard OwnershipGuard, validator NameValidator) BoardService {
	return &Board{storage, guard, validator}
}

func (b *Board) Create(ctx context.Context, accountId domain.AccountId, name, color string) (domain.Board, error) {
	name, err := b.nameValidator.Clean(name)
	if err != nil {
		return domain.Board{}, err
	}
	if color == "" {
		color = defaultBoardColor
	}

	return b.storage.CreateBoard(ctx, domain.BoardCreationData{AccountId: accountId, Name: name, Color: color})
}

func (b *Board) Rename(ctx context.Context, accountId domain.AccountId, boardId domain.BoardId, name string) (domain.Board, error) {
	name, err := b.nameValidator.Clean(name)
	if err != nil {
		return domain.Board{}, err
	}
	if err := b.guard.AssertBoard(ctx, accountId, boardId); err != nil {
		return domain.Board{}, err
	}

	return b.storage.RenameBoard(ctx, boardId, name)
}

func (b *Board) All(ctx context.Context, accountId domain.AccountId) ([]domain.Board, error) {
	return b.storage.Boards(ctx, accountId)
}

func (b *Board) Get(ctx context.Context, accountId domain.AccountId, boardId domain.BoardId) (*domain.Board, error) {
	return b.storage.Board(ctx, accountId, boardId)
}
