package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/boardkit-dev/boardkit/shared/domain"
	internal_errors "github.com/boardkit-dev/boardkit/shared/errors"
)

// CreateItem persists an item under data.ColumnId. The denormalized board_id
// is copied from the owning column inside the insert itself, so it cannot
// drift from the column's board. Same duplicate-id rules as CreateColumn.
func (s *Storage) CreateItem(ctx context.Context, data domain.ItemCreationData) (domain.Item, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO items(id, column_id, board_id, title)
		SELECT $1, c.id, c.board_id, $3 FROM columns c WHERE c.id = $2
		ON CONFLICT (id) DO NOTHING`,
		data.Id, data.ColumnId, data.Title,
	)
	if err != nil {
		return domain.Item{}, fmt.Errorf("failed to insert item: %w", err)
	}
	inserted, err := result.RowsAffected()
	if err != nil {
		return domain.Item{}, err
	}

	var item domain.Item
	err = s.db.QueryRowContext(ctx,
		"SELECT id, column_id, board_id, title FROM items WHERE id = $1",
		data.Id,
	).Scan(&item.Id, &item.ColumnId, &item.BoardId, &item.Title)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// INSERT ... SELECT matched no column row
			return domain.Item{}, internal_errors.NotFound("Column not found")
		}
		return domain.Item{}, fmt.Errorf("failed to read back item: %w", err)
	}

	if inserted == 0 && item.ColumnId != data.ColumnId {
		return domain.Item{}, &internal_errors.ErrorWithStatusCode{
			Message:    "Item id already in use",
			StatusCode: http.StatusConflict,
		}
	}
	return item, nil
}

func (s *Storage) RenameItem(ctx context.Context, itemId domain.ItemId, title domain.ItemTitle) (domain.Item, error) {
	var item domain.Item
	err := s.db.QueryRowContext(ctx,
		"UPDATE items SET title = $2 WHERE id = $1 RETURNING id, column_id, board_id, title",
		itemId, title,
	).Scan(&item.Id, &item.ColumnId, &item.BoardId, &item.Title)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Item{}, internal_errors.NotFound("Item not found")
		}
		return domain.Item{}, fmt.Errorf("failed to rename item: %w", err)
	}
	return item, nil
}

func (s *Storage) DeleteItem(ctx context.Context, itemId domain.ItemId) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE id = $1", itemId)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return internal_errors.NotFound("Item not found")
	}
	return nil
}

// ItemOwner resolves an item and its owning board in a single lookup, via the
// denormalized board_id.
func (s *Storage) ItemOwner(ctx context.Context, itemId domain.ItemId) (domain.ItemOwnership, error) {
	var own domain.ItemOwnership
	err := s.db.QueryRowContext(ctx, `
		SELECT i.id, i.column_id, i.board_id, b.account_id
		FROM items i
		JOIN boards b ON b.id = i.board_id
		WHERE i.id = $1`,
		itemId,
	).Scan(&own.Item, &own.Column, &own.Board, &own.Owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ItemOwnership{}, internal_errors.NotFound("Item not found")
		}
		return domain.ItemOwnership{}, fmt.Errorf("failed to resolve item owner: %w", err)
	}
	return own, nil
}
