package service

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/boardkit-dev/boardkit/shared/domain"
	"github.com/boardkit-dev/boardkit/shared/errors"
	"github.com/boardkit-dev/boardkit/shared/logger"
)

// AuthService is the account subsystem behind the session verifier. The
// board core never calls it; it only produces the tokens the auth middleware
// later resolves into an account id.
type AuthService interface {
	Signup(ctx context.Context, creds domain.Credentials) (string, error)
	Login(ctx context.Context, creds domain.Credentials) (string, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

type AuthStorage interface {
	SaveAccount(ctx context.Context, email domain.Email, passwordHash string) (domain.Account, error)
	Account(ctx context.Context, email domain.Email) (domain.Account, string, error)
}

type Jwt interface {
	NewToken(account domain.Account) (string, error)
}

func NewAuth(storage AuthStorage, jwt Jwt) AuthService {
	return &Auth{storage, jwt}
}

func (a *Auth) Signup(ctx context.Context, creds domain.Credentials) (string, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	account, err := a.storage.SaveAccount(ctx, email, string(hash))
	if err != nil {
		return "", err
	}
	logger.Log.Info("account created", "accountId", account.Id)

	return a.jwt.NewToken(account)
}

func (a *Auth) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))

	account, hash, err := a.storage.Account(ctx, email)
	if err != nil {
		if errors.IsNotFound(err) {
			// same response as a wrong password, no account enumeration
			return "", badCredentials()
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(creds.Password)); err != nil {
		return "", badCredentials()
	}

	return a.jwt.NewToken(account)
}

func badCredentials() error {
	return &errors.ErrorWithStatusCode{Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
}
