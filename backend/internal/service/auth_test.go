package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/boardkit-dev/boardkit/shared/domain"
	"github.com/boardkit-dev/boardkit/shared/errors"
)

type mockAuthStorage struct {
	SaveAccountFunc func(ctx context.Context, email domain.Email, passwordHash string) (domain.Account, error)
	AccountFunc     func(ctx context.Context, email domain.Email) (domain.Account, string, error)
}

func (m *mockAuthStorage) SaveAccount(ctx context.Context, email domain.Email, passwordHash string) (domain.Account, error) {
	return m.SaveAccountFunc(ctx, email, passwordHash)
}

func (m *mockAuthStorage) Account(ctx context.Context, email domain.Email) (domain.Account, string, error) {
	return m.AccountFunc(ctx, email)
}

type mockJwt struct {
	NewTokenFunc func(account domain.Account) (string, error)
}

func (m *mockJwt) NewToken(account domain.Account) (string, error) {
	return m.NewTokenFunc(account)
}

func staticToken(token string) *mockJwt {
	return &mockJwt{NewTokenFunc: func(account domain.Account) (string, error) {
		return token, nil
	}}
}

func TestSignup_HashesPasswordAndNormalizesEmail(t *testing.T) {
	var savedEmail, savedHash string
	storage := &mockAuthStorage{
		SaveAccountFunc: func(ctx context.Context, email domain.Email, passwordHash string) (domain.Account, error) {
			savedEmail, savedHash = email, passwordHash
			return domain.Account{Id: 1, Email: email}, nil
		},
	}
	auth := NewAuth(storage, staticToken("token-1"))

	token, err := auth.Signup(context.Background(), domain.Credentials{
		Email:    "  User@Example.COM ",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)
	assert.Equal(t, "user@example.com", savedEmail)
	assert.NotEqual(t, "correct horse", savedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(savedHash), []byte("correct horse")))
}

func TestLogin_ValidCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	storage := &mockAuthStorage{
		AccountFunc: func(ctx context.Context, email domain.Email) (domain.Account, string, error) {
			return domain.Account{Id: 1, Email: email}, string(hash), nil
		},
	}
	auth := NewAuth(storage, staticToken("token-1"))

	token, err := auth.Login(context.Background(), domain.Credentials{
		Email:    "user@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)
}

func TestLogin_WrongPasswordAndUnknownEmailAreIndistinguishable(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	storage := &mockAuthStorage{
		AccountFunc: func(ctx context.Context, email domain.Email) (domain.Account, string, error) {
			if email == "user@example.com" {
				return domain.Account{Id: 1, Email: email}, string(hash), nil
			}
			return domain.Account{}, "", errors.NotFound("Account not found")
		},
	}
	auth := NewAuth(storage, staticToken("token-1"))

	_, wrongPassword := auth.Login(context.Background(), domain.Credentials{
		Email: "user@example.com", Password: "wrong",
	})
	_, unknownEmail := auth.Login(context.Background(), domain.Credentials{
		Email: "nobody@example.com", Password: "correct horse",
	})

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())

	var statusErr *errors.ErrorWithStatusCode
	require.ErrorAs(t, wrongPassword, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
}
