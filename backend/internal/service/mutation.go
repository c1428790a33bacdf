package service

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/boardkit-dev/boardkit/shared/domain"
	"github.com/boardkit-dev/boardkit/shared/errors"
)

var mutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "boardkit_mutations_total",
		Help: "Total number of dispatched mutations",
	},
	[]string{"kind", "status"},
)

// MutationRequest is the already-parsed field set of one mutation. BoardId
// comes from the route scope; the rest from the request body.
type MutationRequest struct {
	Kind     domain.MutationKind
	BoardId  domain.BoardId
	Id       string // optional client-generated id for creates
	ColumnId domain.ColumnId
	ItemId   domain.ItemId
	Name     string
	Title    string
}

// Deleted is the dispatch result of delete mutations, which have no entity
// to return.
type Deleted struct {
	Model string `json:"model"`
	Id    string `json:"id"`
}

// Dispatcher maps mutation kinds onto store calls. It is the trust boundary:
// the only component that accepts the session-derived account id and passes
// it onward; stores and guard never re-derive identity.
type Dispatcher struct {
	boards  BoardService
	columns ColumnService
	items   ItemService
}

func NewDispatcher(boards BoardService, columns ColumnService, items ItemService) *Dispatcher {
	return &Dispatcher{boards, columns, items}
}

// Dispatch validates required fields for the kind, then invokes the matching
// store operation. Missing fields never reach the stores.
func (d *Dispatcher) Dispatch(ctx context.Context, accountId domain.AccountId, req MutationRequest) (any, error) {
	entity, err := d.dispatch(ctx, accountId, req)

	status := "ok"
	if err != nil {
		status = "error"
	}
	mutationsTotal.WithLabelValues(req.Kind.String(), status).Inc()

	return entity, err
}

func (d *Dispatcher) dispatch(ctx context.Context, accountId domain.AccountId, req MutationRequest) (any, error) {
	switch req.Kind {
	case domain.MutationBoardRename:
		if err := requireField(req.Name, "name"); err != nil {
			return nil, err
		}
		return d.boards.Rename(ctx, accountId, req.BoardId, req.Name)

	case domain.MutationColumnCreate:
		if err := requireField(req.Name, "name"); err != nil {
			return nil, err
		}
		return d.columns.Create(ctx, accountId, domain.ColumnCreationData{
			Id:      req.Id,
			BoardId: req.BoardId,
			Name:    req.Name,
		})

	case domain.MutationColumnRename:
		if err := requireField(req.ColumnId, "columnId"); err != nil {
			return nil, err
		}
		if err := requireField(req.Name, "name"); err != nil {
			return nil, err
		}
		return d.columns.Rename(ctx, accountId, req.ColumnId, req.Name)

	case domain.MutationColumnDelete:
		if err := requireField(req.ColumnId, "columnId"); err != nil {
			return nil, err
		}
		if err := d.columns.Delete(ctx, accountId, req.ColumnId); err != nil {
			return nil, err
		}
		return Deleted{Model: "column", Id: req.ColumnId}, nil

	case domain.MutationItemCreate:
		if err := requireField(req.ColumnId, "columnId"); err != nil {
			return nil, err
		}
		if err := requireField(req.Title, "title"); err != nil {
			return nil, err
		}
		return d.items.Create(ctx, accountId, domain.ItemCreationData{
			Id:       req.Id,
			ColumnId: req.ColumnId,
			Title:    req.Title,
		})

	case domain.MutationItemRename:
		if err := requireField(req.ItemId, "itemId"); err != nil {
			return nil, err
		}
		if err := requireField(req.Title, "title"); err != nil {
			return nil, err
		}
		return d.items.Rename(ctx, accountId, req.ItemId, req.Title)

	case domain.MutationItemDelete:
		if err := requireField(req.ItemId, "itemId"); err != nil {
			return nil, err
		}
		if err := d.items.Delete(ctx, accountId, req.ItemId); err != nil {
			return nil, err
		}
		return Deleted{Model: "item", Id: req.ItemId}, nil

	default:
		// unknown kinds are a client programming error, rejected before any
		// store call
		return nil, errors.Validation("unknown mutation")
	}
}

func requireField(value, field string) error {
	if value == "" {
		return errors.Validation(fmt.Sprintf("%s is required", field))
	}
	return nil
}
