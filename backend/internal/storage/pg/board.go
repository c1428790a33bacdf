package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/boardkit-dev/boardkit/shared/domain"
	internal_errors "github.com/boardkit-dev/boardkit/shared/errors"
)

func (s *Storage) CreateBoard(ctx context.Context, data domain.BoardCreationData) (domain.Board, error) {
	board := domain.Board{AccountId: data.AccountId, Name: data.Name, Color: data.Color}
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO boards(account_id, name, color) VALUES($1, $2, $3) RETURNING id, created",
		data.AccountId, data.Name, data.Color,
	).Scan(&board.Id, &board.CreatedAt)
	if err != nil {
		return domain.Board{}, fmt.Errorf("failed to insert board: %w", err)
	}
	return board, nil
}

func (s *Storage) RenameBoard(ctx context.Context, boardId domain.BoardId, name domain.BoardName) (domain.Board, error) {
	var board domain.Board
	err := s.db.QueryRowContext(ctx,
		"UPDATE boards SET name = $2 WHERE id = $1 RETURNING id, account_id, name, color, created",
		boardId, name,
	).Scan(&board.Id, &board.AccountId, &board.Name, &board.Color, &board.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Board{}, internal_errors.NotFound("Board not found")
		}
		return domain.Board{}, fmt.Errorf("failed to rename board: %w", err)
	}
	return board, nil
}

func (s *Storage) Boards(ctx context.Context, accountId domain.AccountId) ([]domain.Board, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, account_id, name, color, created FROM boards WHERE account_id = $1 ORDER BY created, id",
		accountId,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query boards: %w", err)
	}
	defer rows.Close()

	boards := []domain.Board{}
	for rows.Next() {
		var board domain.Board
		if err := rows.Scan(&board.Id, &board.AccountId, &board.Name, &board.Color, &board.CreatedAt); err != nil {
			return nil, err
		}
		boards = append(boards, board)
	}
	return boards, rows.Err()
}

// Board returns the board with nested columns and items, in insertion order.
// It returns (nil, nil) when the board is absent OR owned by another account;
// the two cases must read the same from the outside.
func (s *Storage) Board(ctx context.Context, accountId domain.AccountId, boardId domain.BoardId) (*domain.Board, error) {
	var board domain.Board
	err := s.db.QueryRowContext(ctx,
		"SELECT id, account_id, name, color, created FROM boards WHERE id = $1 AND account_id = $2",
		boardId, accountId,
	).Scan(&board.Id, &board.AccountId, &board.Name, &board.Color, &board.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query board: %w", err)
	}

	columns, err := s.boardColumns(ctx, boardId)
	if err != nil {
		return nil, err
	}
	board.Columns = columns
	return &board, nil
}

func (s *Storage) boardColumns(ctx context.Context, boardId domain.BoardId) ([]domain.Column, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, board_id, name FROM columns WHERE board_id = $1 ORDER BY seq",
		boardId,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer rows.Close()

	columns := []domain.Column{}
	index := map[domain.ColumnId]int{}
	for rows.Next() {
		var column domain.Column
		if err := rows.Scan(&column.Id, &column.BoardId, &column.Name); err != nil {
			return nil, err
		}
		column.Items = []domain.Item{}
		index[column.Id] = len(columns)
		columns = append(columns, column)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := s.db.QueryContext(ctx,
		"SELECT id, column_id, board_id, title FROM items WHERE board_id = $1 ORDER BY seq",
		boardId,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item domain.Item
		if err := itemRows.Scan(&item.Id, &item.ColumnId, &item.BoardId, &item.Title); err != nil {
			return nil, err
		}
		if i, ok := index[item.ColumnId]; ok {
			columns[i].Items = append(columns[i].Items, item)
		}
	}
	return columns, itemRows.Err()
}

// BoardOwner resolves the owning account of a board for the ownership guard.
func (s *Storage) BoardOwner(ctx context.Context, boardId domain.BoardId) (domain.AccountId, error) {
	var owner domain.AccountId
	err := s.db.QueryRowContext(ctx,
		"SELECT account_id FROM boards WHERE id = $1",
		boardId,
	).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, internal_errors.NotFound("Board not found")
		}
		return 0, fmt.Errorf("failed to resolve board owner: %w", err)
	}
	return owner, nil
}
