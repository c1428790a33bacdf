package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/boardkit-dev/boardkit/shared/api"
	"github.com/boardkit-dev/boardkit/shared/domain"
	internal_errors "github.com/boardkit-dev/boardkit/shared/errors"
)

// === Board Methods ===

func (c *APIClient) GetBoards(ctx context.Context) ([]domain.Board, error) {
	var response api.BoardListResponse
	if err := c.doJSON(ctx, "GET", "/v1/boards", nil, http.StatusOK, &response); err != nil {
		return nil, err
	}
	return response.Boards, nil
}

func (c *APIClient) GetBoard(ctx context.Context, boardId domain.BoardId) (domain.Board, error) {
	var response api.BoardResponse
	err := c.doJSON(ctx, "GET", fmt.Sprintf("/v1/boards/%d", boardId), nil, http.StatusOK, &response)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return domain.Board{}, internal_errors.NotFound(fmt.Sprintf("board %d not found", boardId))
		}
		return domain.Board{}, err
	}
	return response.Board, nil
}

func (c *APIClient) CreateBoard(ctx context.Context, data api.CreateBoardRequest) (domain.Board, error) {
	var response api.BoardResponse
	if err := c.doJSON(ctx, "POST", "/v1/boards", data, http.StatusCreated, &response); err != nil {
		return domain.Board{}, err
	}
	return response.Board, nil
}

// mutate drives the generic mutation endpoint.
func mutate[T any](ctx context.Context, c *APIClient, boardId domain.BoardId, model, intent string, body api.MutationRequest, wantStatus int) (T, error) {
	var out T
	path := fmt.Sprintf("/v1/boards/%d/mutations?model=%s&intent=%s", boardId, model, intent)
	if err := c.doJSON(ctx, "POST", path, body, wantStatus, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *APIClient) RenameBoard(ctx context.Context, boardId domain.BoardId, name string) (domain.Board, error) {
	return mutate[domain.Board](ctx, c, boardId, "board", "rename", api.MutationRequest{Name: name}, http.StatusOK)
}

func (c *APIClient) CreateColumn(ctx context.Context, boardId domain.BoardId, id domain.ColumnId, name string) (domain.Column, error) {
	return mutate[domain.Column](ctx, c, boardId, "column", "create", api.MutationRequest{Id: id, Name: name}, http.StatusCreated)
}

func (c *APIClient) RenameColumn(ctx context.Context, boardId domain.BoardId, columnId domain.ColumnId, name string) (domain.Column, error) {
	return mutate[domain.Column](ctx, c, boardId, "column", "rename", api.MutationRequest{ColumnId: columnId, Name: name}, http.StatusOK)
}

func (c *APIClient) DeleteColumn(ctx context.Context, boardId domain.BoardId, columnId domain.ColumnId) error {
	_, err := mutate[api.DeletedResponse](ctx, c, boardId, "column", "delete", api.MutationRequest{ColumnId: columnId}, http.StatusOK)
	return err
}

func (c *APIClient) CreateItem(ctx context.Context, boardId domain.BoardId, id domain.ItemId, columnId domain.ColumnId, title string) (domain.Item, error) {
	return mutate[domain.Item](ctx, c, boardId, "item", "create", api.MutationRequest{Id: id, ColumnId: columnId, Title: title}, http.StatusCreated)
}

func (c *APIClient) RenameItem(ctx context.Context, boardId domain.BoardId, itemId domain.ItemId, title string) (domain.Item, error) {
	return mutate[domain.Item](ctx, c, boardId, "item", "rename", api.MutationRequest{ItemId: itemId, Title: title}, http.StatusOK)
}

func (c *APIClient) DeleteItem(ctx context.Context, boardId domain.BoardId, itemId domain.ItemId) error {
	_, err := mutate[api.DeletedResponse](ctx, c, boardId, "item", "delete", api.MutationRequest{ItemId: itemId}, http.StatusOK)
	return err
}
