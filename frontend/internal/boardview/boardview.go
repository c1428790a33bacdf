// Package boardview drives one open board: user actions render optimistically
// through the overlay and fire the backend mutation without waiting for it.
package boardview

import (
	"context"
	"sync"

	"github.com/boardkit-dev/boardkit/frontend/internal/reconcile"
	"github.com/boardkit-dev/boardkit/shared/domain"
	"github.com/boardkit-dev/boardkit/shared/logger"
)

// BoardAPI is the slice of the api client the view needs.
type BoardAPI interface {
	GetBoard(ctx context.Context, boardId domain.BoardId) (domain.Board, error)
	RenameBoard(ctx context.Context, boardId domain.BoardId, name string) (domain.Board, error)
	CreateColumn(ctx context.Context, boardId domain.BoardId, id domain.ColumnId, name string) (domain.Column, error)
	RenameColumn(ctx context.Context, boardId domain.BoardId, columnId domain.ColumnId, name string) (domain.Column, error)
	DeleteColumn(ctx context.Context, boardId domain.BoardId, columnId domain.ColumnId) error
	CreateItem(ctx context.Context, boardId domain.BoardId, id domain.ItemId, columnId domain.ColumnId, title string) (domain.Item, error)
	RenameItem(ctx context.Context, boardId domain.BoardId, itemId domain.ItemId, title string) (domain.Item, error)
	DeleteItem(ctx context.Context, boardId domain.BoardId, itemId domain.ItemId) error
}

type BoardView struct {
	api     BoardAPI
	boardId domain.BoardId
	overlay *reconcile.Overlay

	mu   sync.Mutex
	view reconcile.BoardView

	// one edit state machine per editable name field
	boardEditor   *reconcile.Editor
	columnEditors map[domain.ColumnId]*reconcile.Editor
	itemEditors   map[domain.ItemId]*reconcile.Editor

	// fired mutations are not cancelled on navigation; wg only exists so
	// tests can wait for them to settle
	wg sync.WaitGroup
}

func New(api BoardAPI, boardId domain.BoardId) *BoardView {
	return &BoardView{
		api:           api,
		boardId:       boardId,
		overlay:       reconcile.NewOverlay(),
		boardEditor:   reconcile.NewEditor(),
		columnEditors: map[domain.ColumnId]*reconcile.Editor{},
		itemEditors:   map[domain.ItemId]*reconcile.Editor{},
	}
}

// Refresh pulls a fresh confirmed read and merges the overlay into the
// rendered view.
func (v *BoardView) Refresh(ctx context.Context) error {
	board, err := v.api.GetBoard(ctx, v.boardId)
	if err != nil {
		return err
	}

	v.mu.Lock()
	v.view = v.overlay.Merge(board)
	v.mu.Unlock()
	return nil
}

// View returns the last merged view.
func (v *BoardView) View() reconcile.BoardView {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.view
}

// AddColumn renders the new column immediately under a client-generated id
// and fires the create. The id is known before the round trip completes, so
// the confirmed row deduplicates against the optimistic one.
func (v *BoardView) AddColumn(ctx context.Context, name string) domain.ColumnId {
	column := domain.Column{Id: domain.NewEntityId(), BoardId: v.boardId, Name: name}
	pending := v.overlay.StageColumnCreate(column)

	v.fire(pending, func() error {
		_, err := v.api.CreateColumn(ctx, v.boardId, column.Id, column.Name)
		return err
	})
	return column.Id
}

func (v *BoardView) AddItem(ctx context.Context, columnId domain.ColumnId, title string) domain.ItemId {
	item := domain.Item{Id: domain.NewEntityId(), ColumnId: columnId, BoardId: v.boardId, Title: title}
	pending := v.overlay.StageItemCreate(item)

	v.fire(pending, func() error {
		_, err := v.api.CreateItem(ctx, v.boardId, item.Id, item.ColumnId, item.Title)
		return err
	})
	return item.Id
}

func (v *BoardView) RenameBoard(ctx context.Context, name string) {
	pending := v.overlay.StageBoardRename(v.boardId, name)
	v.fire(pending, func() error {
		_, err := v.api.RenameBoard(ctx, v.boardId, name)
		return err
	})
}

func (v *BoardView) RenameColumn(ctx context.Context, columnId domain.ColumnId, name string) {
	pending := v.overlay.StageColumnRename(columnId, name)
	v.fire(pending, func() error {
		_, err := v.api.RenameColumn(ctx, v.boardId, columnId, name)
		return err
	})
}

func (v *BoardView) RenameItem(ctx context.Context, itemId domain.ItemId, title string) {
	pending := v.overlay.StageItemRename(itemId, title)
	v.fire(pending, func() error {
		_, err := v.api.RenameItem(ctx, v.boardId, itemId, title)
		return err
	})
}

func (v *BoardView) DeleteColumn(ctx context.Context, columnId domain.ColumnId) {
	pending := v.overlay.StageColumnDelete(columnId)
	v.fire(pending, func() error {
		return v.api.DeleteColumn(ctx, v.boardId, columnId)
	})
}

func (v *BoardView) DeleteItem(ctx context.Context, itemId domain.ItemId) {
	pending := v.overlay.StageItemDelete(itemId)
	v.fire(pending, func() error {
		return v.api.DeleteItem(ctx, v.boardId, itemId)
	})
}

// BoardEditor returns the edit state machine for the board's name field.
func (v *BoardView) BoardEditor() *reconcile.Editor {
	return v.boardEditor
}

// ColumnEditor returns the edit state machine for one column's name field,
// created on first use.
func (v *BoardView) ColumnEditor(columnId domain.ColumnId) *reconcile.Editor {
	v.mu.Lock()
	defer v.mu.Unlock()
	ed, ok := v.columnEditors[columnId]
	if !ok {
		ed = reconcile.NewEditor()
		v.columnEditors[columnId] = ed
	}
	return ed
}

// ItemEditor returns the edit state machine for one item's title field,
// created on first use.
func (v *BoardView) ItemEditor(itemId domain.ItemId) *reconcile.Editor {
	v.mu.Lock()
	defer v.mu.Unlock()
	ed, ok := v.itemEditors[itemId]
	if !ok {
		ed = reconcile.NewEditor()
		v.itemEditors[itemId] = ed
	}
	return ed
}

// SubmitBoardEdit fires the rename held in the board name field's draft.
// The staged value renders immediately; the field returns to idle once the
// request is dispatched, without waiting for it to complete.
func (v *BoardView) SubmitBoardEdit(ctx context.Context) {
	name, ok := v.boardEditor.Submit()
	if !ok {
		return
	}
	v.RenameBoard(ctx, name)
	v.boardEditor.Settle()
}

func (v *BoardView) SubmitColumnEdit(ctx context.Context, columnId domain.ColumnId) {
	ed := v.ColumnEditor(columnId)
	name, ok := ed.Submit()
	if !ok {
		return
	}
	v.RenameColumn(ctx, columnId, name)
	ed.Settle()
}

func (v *BoardView) SubmitItemEdit(ctx context.Context, itemId domain.ItemId) {
	ed := v.ItemEditor(itemId)
	title, ok := ed.Submit()
	if !ok {
		return
	}
	v.RenameItem(ctx, itemId, title)
	ed.Settle()
}

// Wait blocks until all fired mutations have settled. Test helper; the UI
// never waits.
func (v *BoardView) Wait() {
	v.wg.Wait()
}

// fire dispatches the mutation in the background and settles the overlay
// entry from its outcome. There is no retry: a failed request prunes the
// optimistic entry and the view reverts to last-known-confirmed state.
func (v *BoardView) fire(pending *reconcile.PendingMutation, call func() error) {
	v.wg.Add(1)
	go func() {
		defer v.wg.Done()
		if err := call(); err != nil {
			logger.Log.Warn("mutation failed", "error", err)
			pending.Fail()
			return
		}
		pending.Confirm()
	}()
}
