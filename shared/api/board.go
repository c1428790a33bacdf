package api

import "github.com/boardkit-dev/boardkit/shared/domain"

// Request DTOs shared by the backend handlers and the frontend api client.

type CreateBoardRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color,omitempty"`
}

// MutationRequest is the field set of the generic mutation endpoint. Which
// fields are required depends on the (model, intent) pair; the dispatcher
// validates per kind, so no validate tags here.
type MutationRequest struct {
	Id       string `json:"id,omitempty"` // optional client-generated id for creates
	ColumnId string `json:"columnId,omitempty"`
	ItemId   string `json:"itemId,omitempty"`
	Name     string `json:"name,omitempty"`
	Title    string `json:"title,omitempty"`
}

// Response DTOs

type BoardResponse struct {
	domain.Board
}

type BoardListResponse struct {
	Boards []domain.Board `json:"boards"`
}

// DeletedResponse is returned by delete mutations instead of an entity.
type DeletedResponse struct {
	Model string `json:"model"`
	Id    string `json:"id"`
}
