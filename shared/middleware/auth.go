package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/boardkit-dev/boardkit/shared/domain"
	jwt_internal "github.com/boardkit-dev/boardkit/shared/jwt"
	"github.com/boardkit-dev/boardkit/shared/logger"
	"github.com/boardkit-dev/boardkit/shared/utils"
)

// Key to store the account claims in the request context
type key int

const AccountClaimsKey key = 0

const AccessTokenCookie = "accessToken"

// Auth resolves the current account once per request. Handlers and services
// below this middleware never re-derive identity; they receive the account id
// through the context.
type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth returns middleware that requires authentication.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			account, err := a.extractAccount(r)
			if err != nil {
				switch err {
				case errNoToken:
					http.Error(w, "Please sign-in", http.StatusUnauthorized)
				case errInvalidClaims:
					logger.Log.Error("invalid jwt claims")
					http.Error(w, "Invalid token", http.StatusUnauthorized)
				default:
					utils.WriteErrorAndStatusCode(w, err)
				}
				return
			}

			ctx := context.WithValue(r.Context(), AccountClaimsKey, account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractAccount validates the JWT from the cookie (browser clients) or the
// Authorization header (API clients) and returns the account it names.
func (a *Auth) extractAccount(r *http.Request) (*domain.Account, error) {
	var tokenString string
	accessCookie, err := r.Cookie(AccessTokenCookie)
	if err == nil {
		tokenString = accessCookie.Value
	} else if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		tokenString = token
	}

	if tokenString == "" {
		return nil, errNoToken
	}

	token, err := a.jwtService.DecodeToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errInvalidClaims
	}

	uidFloat, ok := claims["uid"].(float64)
	if !ok {
		return nil, errInvalidClaims
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, errInvalidClaims
	}

	return &domain.Account{Id: domain.AccountId(uidFloat), Email: email}, nil
}

var (
	errNoToken       = errorString("no token")
	errInvalidClaims = errorString("invalid claims")
)

type errorString string

func (e errorString) Error() string { return string(e) }

// GetAccountFromContext retrieves the authenticated account from the context.
func GetAccountFromContext(r *http.Request) *domain.Account {
	account, ok := r.Context().Value(AccountClaimsKey).(*domain.Account)
	if !ok {
		return nil
	}
	return account
}
