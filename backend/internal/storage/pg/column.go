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

// CreateColumn persists a column under data.BoardId. The id is used verbatim
// (it may be client-generated). A retried create with the same id under the
// same board is a no-op returning the existing row; the same id under a
// different board is a conflict.
func (s *Storage) CreateColumn(ctx context.Context, data domain.ColumnCreationData) (domain.Column, error) {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO columns(id, board_id, name) VALUES($1, $2, $3) ON CONFLICT (id) DO NOTHING",
		data.Id, data.BoardId, data.Name,
	)
	if err != nil {
		return domain.Column{}, fmt.Errorf("failed to insert column: %w", err)
	}
	inserted, err := result.RowsAffected()
	if err != nil {
		return domain.Column{}, err
	}

	var column domain.Column
	err = s.db.QueryRowContext(ctx,
		"SELECT id, board_id, name FROM columns WHERE id = $1",
		data.Id,
	).Scan(&column.Id, &column.BoardId, &column.Name)
	if err != nil {
		return domain.Column{}, fmt.Errorf("failed to read back column: %w", err)
	}

	if inserted == 0 && column.BoardId != data.BoardId {
		return domain.Column{}, &internal_errors.ErrorWithStatusCode{
			Message:    "Column id already in use",
			StatusCode: http.StatusConflict,
		}
	}
	column.Items = []domain.Item{}
	return column, nil
}

func (s *Storage) RenameColumn(ctx context.Context, columnId domain.ColumnId, name domain.ColumnName) (domain.Column, error) {
	var column domain.Column
	err := s.db.QueryRowContext(ctx,
		"UPDATE columns SET name = $2 WHERE id = $1 RETURNING id, board_id, name",
		columnId, name,
	).Scan(&column.Id, &column.BoardId, &column.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Column{}, internal_errors.NotFound("Column not found")
		}
		return domain.Column{}, fmt.Errorf("failed to rename column: %w", err)
	}
	return column, nil
}

// DeleteColumn removes the column and all its items in one transaction.
// A partial cascade would leave orphan items, so both deletes commit or
// neither does.
func (s *Storage) DeleteColumn(ctx context.Context, columnId domain.ColumnId) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM items WHERE column_id = $1", columnId); err != nil {
			return fmt.Errorf("failed to delete column items: %w", err)
		}

		result, err := tx.ExecContext(ctx, "DELETE FROM columns WHERE id = $1", columnId)
		if err != nil {
			return fmt.Errorf("failed to delete column: %w", err)
		}
		deleted, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if deleted == 0 {
			return internal_errors.NotFound("Column not found")
		}
		return nil
	})
}

// ColumnOwner resolves a column and its owning board in a single lookup.
func (s *Storage) ColumnOwner(ctx context.Context, columnId domain.ColumnId) (domain.ColumnOwnership, error) {
	var own domain.ColumnOwnership
	err := s.db.QueryRowContext(ctx, `
		SELECT c.id, c.board_id, b.account_id
		FROM columns c
		JOIN boards b ON b.id = c.board_id
		WHERE c.id = $1`,
		columnId,
	).Scan(&own.Column, &own.Board, &own.Owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ColumnOwnership{}, internal_errors.NotFound("Column not found")
		}
		return domain.ColumnOwnership{}, fmt.Errorf("failed to resolve column owner: %w", err)
	}
	return own, nil
}
