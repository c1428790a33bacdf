package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"

	"github.com/boardkit-dev/boardkit/shared/domain"
	internal_errors "github.com/boardkit-dev/boardkit/shared/errors"
)

const uniqueViolation = "23505"

func (s *Storage) SaveAccount(ctx context.Context, email domain.Email, passwordHash string) (domain.Account, error) {
	var account domain.Account
	account.Email = email
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO accounts(email, password_hash) VALUES($1, $2) RETURNING id, created",
		email, passwordHash,
	).Scan(&account.Id, &account.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.Account{}, &internal_errors.ErrorWithStatusCode{
				Message:    "Account already exists",
				StatusCode: http.StatusConflict,
			}
		}
		return domain.Account{}, fmt.Errorf("failed to insert account: %w", err)
	}
	return account, nil
}

// Account returns the account and its password hash for credential checks.
func (s *Storage) Account(ctx context.Context, email domain.Email) (domain.Account, string, error) {
	var account domain.Account
	var hash string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, email, password_hash, created FROM accounts WHERE email = $1",
		email,
	).Scan(&account.Id, &account.Email, &hash, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, "", internal_errors.NotFound("Account not found")
		}
		return domain.Account{}, "", fmt.Errorf("failed to query account: %w", err)
	}
	return account, hash, nil
}
