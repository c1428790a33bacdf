package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/boardkit-dev/boardkit/backend/internal/service"
	"github.com/boardkit-dev/boardkit/shared/config"
	"github.com/boardkit-dev/boardkit/shared/domain"
	mw "github.com/boardkit-dev/boardkit/shared/middleware"
)

// Func-field service mocks, same shape as the service-layer storage mocks.

type mockAuthService struct {
	SignupFunc func(ctx context.Context, creds domain.Credentials) (string, error)
	LoginFunc  func(ctx context.Context, creds domain.Credentials) (string, error)
}

func (m *mockAuthService) Signup(ctx context.Context, creds domain.Credentials) (string, error) {
	return m.SignupFunc(ctx, creds)
}

func (m *mockAuthService) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	return m.LoginFunc(ctx, creds)
}

type mockBoardService struct {
	CreateFunc func(ctx context.Context, accountId domain.AccountId, name, color string) (domain.Board, error)
	RenameFunc func(ctx context.Context, accountId domain.AccountId, boardId domain.BoardId, name string) (domain.Board, error)
	AllFunc    func(ctx context.Context, accountId domain.AccountId) ([]domain.Board, error)
	GetFunc    func(ctx context.Context, accountId domain.AccountId, boardId domain.BoardId) (*domain.Board, error)
}

func (m *mockBoardService) Create(ctx context.Context, accountId domain.AccountId, name, color string) (domain.Board, error) {
	return m.CreateFunc(ctx, accountId, name, color)
}

func (m *mockBoardService) Rename(ctx context.Context, accountId domain.AccountId, boardId domain.BoardId, name string) (domain.Board, error) {
	return m.RenameFunc(ctx, accountId, boardId, name)
}

func (m *mockBoardService) All(ctx context.Context, accountId domain.AccountId) ([]domain.Board, error) {
	return m.AllFunc(ctx, accountId)
}

func (m *mockBoardService) Get(ctx context.Context, accountId domain.AccountId, boardId domain.BoardId) (*domain.Board, error) {
	return m.GetFunc(ctx, accountId, boardId)
}

type mockColumnService struct {
	CreateFunc func(ctx context.Context, accountId domain.AccountId, data domain.ColumnCreationData) (domain.Column, error)
	RenameFunc func(ctx context.Context, accountId domain.AccountId, columnId domain.ColumnId, name string) (domain.Column, error)
	DeleteFunc func(ctx context.Context, accountId domain.AccountId, columnId domain.ColumnId) error
}

func (m *mockColumnService) Create(ctx context.Context, accountId domain.AccountId, data domain.ColumnCreationData) (domain.Column, error) {
	return m.CreateFunc(ctx, accountId, data)
}

func (m *mockColumnService) Rename(ctx context.Context, accountId domain.AccountId, columnId domain.ColumnId, name string) (domain.Column, error) {
	return m.RenameFunc(ctx, accountId, columnId, name)
}

func (m *mockColumnService) Delete(ctx context.Context, accountId domain.AccountId, columnId domain.ColumnId) error {
	return m.DeleteFunc(ctx, accountId, columnId)
}

type mockItemService struct {
	CreateFunc func(ctx context.Context, accountId domain.AccountId, data domain.ItemCreationData) (domain.Item, error)
	RenameFunc func(ctx context.Context, accountId domain.AccountId, itemId domain.ItemId, title string) (domain.Item, error)
	DeleteFunc func(ctx context.Context, accountId domain.AccountId, itemId domain.ItemId) error
}

func (m *mockItemService) Create(ctx context.Context, accountId domain.AccountId, data domain.ItemCreationData) (domain.Item, error) {
	return m.CreateFunc(ctx, accountId, data)
}

func (m *mockItemService) Rename(ctx context.Context, accountId domain.AccountId, itemId domain.ItemId, title string) (domain.Item, error) {
	return m.RenameFunc(ctx, accountId, itemId, title)
}

func (m *mockItemService) Delete(ctx context.Context, accountId domain.AccountId, itemId domain.ItemId) error {
	return m.DeleteFunc(ctx, accountId, itemId)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Public.Listen = "localhost:8080"
	cfg.Public.JwtTTL = time.Hour
	cfg.Private.JwtKey = "test-key"
	return cfg
}

type handlerMocks struct {
	auth    *mockAuthService
	boards  *mockBoardService
	columns *mockColumnService
	items   *mockItemService
}

func newTestHandler() (*Handler, *handlerMocks) {
	m := &handlerMocks{
		auth:    &mockAuthService{},
		boards:  &mockBoardService{},
		columns: &mockColumnService{},
		items:   &mockItemService{},
	}
	dispatcher := service.NewDispatcher(m.boards, m.columns, m.items)
	return New(m.auth, m.boards, dispatcher, nil, testConfig()), m
}

// authedRequest builds a request that already passed the auth middleware and
// chi routing, with {board} bound when non-empty.
func authedRequest(method, target, body string, accountId domain.AccountId, boardParam string) *http.Request {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	r := httptest.NewRequest(method, target, reader)

	ctx := context.WithValue(r.Context(), mw.AccountClaimsKey, &domain.Account{Id: accountId, Email: "user@example.com"})
	if boardParam != "" {
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("board", boardParam)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
	}
	return r.WithContext(ctx)
}
