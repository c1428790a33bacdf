package setup

import (
	"github.com/boardkit-dev/boardkit/backend/internal/handler"
	"github.com/boardkit-dev/boardkit/backend/internal/service"
	"github.com/boardkit-dev/boardkit/backend/internal/storage/pg"
	"github.com/boardkit-dev/boardkit/backend/internal/utils"
	"github.com/boardkit-dev/boardkit/shared/config"
	"github.com/boardkit-dev/boardkit/shared/jwt"
	"github.com/boardkit-dev/boardkit/shared/middleware"
)

// Dependencies holds all initialized dependencies. The storage handle is
// constructed once here and injected everywhere; nothing reaches for ambient
// global state.
type Dependencies struct {
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	Config         *config.Config
}

func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	guard := service.NewGuard(storage)

	auth := service.NewAuth(storage, jwtService)
	boards := service.NewBoard(storage, guard, utils.NewBoardNameValidator())
	columns := service.NewColumn(storage, guard, utils.NewColumnNameValidator())
	items := service.NewItem(storage, guard, utils.NewItemTitleValidator())
	dispatcher := service.NewDispatcher(boards, columns, items)

	h := handler.New(auth, boards, dispatcher, storage, cfg)

	return &Dependencies{
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(jwtService),
		Config:         cfg,
	}, nil
}
