package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/boardkit-dev/boardkit/shared/api"
	mw "github.com/boardkit-dev/boardkit/shared/middleware"
	"github.com/boardkit-dev/boardkit/shared/utils"
)

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	account := mw.GetAccountFromContext(r)
	if account == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	var body api.CreateBoardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	board, err := h.boards.Create(r.Context(), account.Id, body.Name, body.Color)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.BoardResponse{Board: board})
}

func (h *Handler) GetBoards(w http.ResponseWriter, r *http.Request) {
	account := mw.GetAccountFromContext(r)
	if account == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	boards, err := h.boards.All(r.Context(), account.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.BoardListResponse{Boards: boards})
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	account := mw.GetAccountFromContext(r)
	if account == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	boardId, err := parseIntParam(chi.URLParam(r, "board"), "board ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	board, err := h.boards.Get(r.Context(), account.Id, boardId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if board == nil {
		http.Error(w, "Board not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, api.BoardResponse{Board: *board})
}
