package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/boardkit-dev/boardkit/backend/internal/service"
	"github.com/boardkit-dev/boardkit/shared/api"
	"github.com/boardkit-dev/boardkit/shared/domain"
	mw "github.com/boardkit-dev/boardkit/shared/middleware"
	"github.com/boardkit-dev/boardkit/shared/utils"
)

// Mutate is the generic mutation endpoint: ?model=&intent= selects the
// operation, the JSON body carries its field set. Field requirements are
// validated by the dispatcher per kind.
func (h *Handler) Mutate(w http.ResponseWriter, r *http.Request) {
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

	model := r.URL.Query().Get("model")
	intent := r.URL.Query().Get("intent")
	kind, ok := domain.ParseMutationKind(model, intent)
	if !ok {
		http.Error(w, "Unknown operation", http.StatusBadRequest)
		return
	}

	var body api.MutationRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	entity, err := h.dispatcher.Dispatch(r.Context(), account.Id, service.MutationRequest{
		Kind:     kind,
		BoardId:  boardId,
		Id:       body.Id,
		ColumnId: body.ColumnId,
		ItemId:   body.ItemId,
		Name:     body.Name,
		Title:    body.Title,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	status := http.StatusOK
	if kind == domain.MutationColumnCreate || kind == domain.MutationItemCreate {
		status = http.StatusCreated
	}
	writeJSON(w, status, entity)
}
