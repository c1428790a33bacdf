// Package reconcile merges confirmed server state with in-flight mutations
// into the single view the user sees. Merging is always by id, which is why
// create ids are minted on the client: without a known-ahead id a confirmed
// create could not be matched to its pending twin and would render twice.
package reconcile

import (
	"sort"
	"sync"

	"github.com/boardkit-dev/boardkit/shared/domain"
)

// Lifecycle of one staged mutation. Failed entries are pruned immediately by
// Fail; Confirmed entries are dropped on the next merge of a fresh read.
type Lifecycle int

const (
	Pending Lifecycle = iota
	Confirmed
	Failed
)

// PendingMutation is the handle returned by Stage* calls. Exactly one of
// Confirm or Fail should be called when the mutation's request settles;
// later calls are no-ops.
type PendingMutation struct {
	overlay *Overlay
	settle  func(Lifecycle)
	settled bool
}

func (p *PendingMutation) Confirm() { p.resolve(Confirmed) }

// Fail actively prunes the staged entry so the view reverts to the
// last-known-confirmed state instead of waiting for incidental cleanup.
func (p *PendingMutation) Fail() { p.resolve(Failed) }

func (p *PendingMutation) resolve(state Lifecycle) {
	p.overlay.mu.Lock()
	defer p.overlay.mu.Unlock()
	if p.settled {
		return
	}
	p.settled = true
	p.settle(state)
}

type pendingColumn struct {
	column domain.Column
	state  Lifecycle
	seq    uint64
}

type pendingItem struct {
	item  domain.Item
	state Lifecycle
	seq   uint64
}

type pendingValue struct {
	value string
	state Lifecycle
}

type pendingDelete struct {
	state Lifecycle
}

// Overlay tracks every in-flight mutation for one board. Staging a second
// mutation for the same target replaces the first: same-resource edits are
// last-write-wins, never queued.
type Overlay struct {
	mu sync.Mutex

	// seq fixes the render order of pending creates: without it the map
	// iteration below would reshuffle them on every merge
	seq uint64

	columnCreates map[domain.ColumnId]*pendingColumn
	itemCreates   map[domain.ItemId]*pendingItem
	boardRenames  map[domain.BoardId]*pendingValue
	columnRenames map[domain.ColumnId]*pendingValue
	itemRenames   map[domain.ItemId]*pendingValue
	columnDeletes map[domain.ColumnId]*pendingDelete
	itemDeletes   map[domain.ItemId]*pendingDelete
}

func NewOverlay() *Overlay {
	return &Overlay{
		columnCreates: map[domain.ColumnId]*pendingColumn{},
		itemCreates:   map[domain.ItemId]*pendingItem{},
		boardRenames:  map[domain.BoardId]*pendingValue{},
		columnRenames: map[domain.ColumnId]*pendingValue{},
		itemRenames:   map[domain.ItemId]*pendingValue{},
		columnDeletes: map[domain.ColumnId]*pendingDelete{},
		itemDeletes:   map[domain.ItemId]*pendingDelete{},
	}
}

// StageColumnCreate registers an optimistic column. column.Id must already be
// set (client-generated) so the confirmed row can be deduplicated later.
func (o *Overlay) StageColumnCreate(column domain.Column) *PendingMutation {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seq++
	entry := &pendingColumn{column: column, seq: o.seq}
	o.columnCreates[column.Id] = entry
	return o.handle(func(state Lifecycle) {
		if state == Failed && o.columnCreates[column.Id] == entry {
			delete(o.columnCreates, column.Id)
			return
		}
		entry.state = state
	})
}

func (o *Overlay) StageItemCreate(item domain.Item) *PendingMutation {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seq++
	entry := &pendingItem{item: item, seq: o.seq}
	o.itemCreates[item.Id] = entry
	return o.handle(func(state Lifecycle) {
		if state == Failed && o.itemCreates[item.Id] == entry {
			delete(o.itemCreates, item.Id)
			return
		}
		entry.state = state
	})
}

func (o *Overlay) StageBoardRename(boardId domain.BoardId, name string) *PendingMutation {
	o.mu.Lock()
	defer o.mu.Unlock()
	entry := &pendingValue{value: name}
	o.boardRenames[boardId] = entry
	return o.handle(func(state Lifecycle) {
		if state == Failed && o.boardRenames[boardId] == entry {
			delete(o.boardRenames, boardId)
			return
		}
		entry.state = state
	})
}

func (o *Overlay) StageColumnRename(columnId domain.ColumnId, name string) *PendingMutation {
	o.mu.Lock()
	defer o.mu.Unlock()
	entry := &pendingValue{value: name}
	o.columnRenames[columnId] = entry
	return o.handle(func(state Lifecycle) {
		if state == Failed && o.columnRenames[columnId] == entry {
			delete(o.columnRenames, columnId)
			return
		}
		entry.state = state
	})
}

func (o *Overlay) StageItemRename(itemId domain.ItemId, title string) *PendingMutation {
	o.mu.Lock()
	defer o.mu.Unlock()
	entry := &pendingValue{value: title}
	o.itemRenames[itemId] = entry
	return o.handle(func(state Lifecycle) {
		if state == Failed && o.itemRenames[itemId] == entry {
			delete(o.itemRenames, itemId)
			return
		}
		entry.state = state
	})
}

func (o *Overlay) StageColumnDelete(columnId domain.ColumnId) *PendingMutation {
	o.mu.Lock()
	defer o.mu.Unlock()
	entry := &pendingDelete{}
	o.columnDeletes[columnId] = entry
	return o.handle(func(state Lifecycle) {
		if state == Failed && o.columnDeletes[columnId] == entry {
			delete(o.columnDeletes, columnId)
			return
		}
		entry.state = state
	})
}

func (o *Overlay) StageItemDelete(itemId domain.ItemId) *PendingMutation {
	o.mu.Lock()
	defer o.mu.Unlock()
	entry := &pendingDelete{}
	o.itemDeletes[itemId] = entry
	return o.handle(func(state Lifecycle) {
		if state == Failed && o.itemDeletes[itemId] == entry {
			delete(o.itemDeletes, itemId)
			return
		}
		entry.state = state
	})
}

// handle must be called under o.mu.
func (o *Overlay) handle(settle func(Lifecycle)) *PendingMutation {
	return &PendingMutation{overlay: o, settle: settle}
}

// Rendered views.

type ItemView struct {
	domain.Item
	Pending  bool // created optimistically, not yet in a confirmed read
	Deleting bool // delete in flight; rendered disabled, not removed
}

type ColumnView struct {
	Id       domain.ColumnId
	BoardId  domain.BoardId
	Name     string
	Items    []ItemView
	Pending  bool
	Deleting bool
}

type BoardView struct {
	Id      domain.BoardId
	Name    string
	Color   domain.BoardColor
	Columns []ColumnView
}

// Merge combines a fresh confirmed read with the staged overlay:
//   - lists are confirmed ∪ pending-creates-by-id; a pending create whose id
//     appears in the confirmed read is dropped (it is the same entity)
//   - renames display the in-flight value until the rename is confirmed and a
//     fresh read has arrived, avoiding revert-then-update flicker
//   - deletes keep the entity visible, flagged Deleting, until the confirmed
//     read omits it
//
// Call it once per confirmed read; the returned view is what renders.
func (o *Overlay) Merge(board domain.Board) BoardView {
	o.mu.Lock()
	defer o.mu.Unlock()

	view := BoardView{
		Id:    board.Id,
		Name:  overlaidName(o.boardRenames, board.Id, board.Name),
		Color: board.Color,
	}

	confirmedColumns := map[domain.ColumnId]bool{}
	confirmedItems := map[domain.ItemId]bool{}
	columnIndex := map[domain.ColumnId]int{}

	for _, column := range board.Columns {
		confirmedColumns[column.Id] = true
		// the confirmed read includes this id, the optimistic twin is obsolete
		delete(o.columnCreates, column.Id)

		cv := ColumnView{
			Id:      column.Id,
			BoardId: column.BoardId,
			Name:    overlaidName(o.columnRenames, column.Id, column.Name),
			Items:   []ItemView{},
		}
		if _, ok := o.columnDeletes[column.Id]; ok {
			cv.Deleting = true
		}
		for _, item := range column.Items {
			confirmedItems[item.Id] = true
			delete(o.itemCreates, item.Id)

			iv := ItemView{Item: item}
			iv.Title = overlaidName(o.itemRenames, item.Id, item.Title)
			if _, ok := o.itemDeletes[item.Id]; ok {
				iv.Deleting = true
			}
			cv.Items = append(cv.Items, iv)
		}
		columnIndex[cv.Id] = len(view.Columns)
		view.Columns = append(view.Columns, cv)
	}

	// pending creates append after confirmed rows, in the order they were
	// staged; map order would shuffle them between merges
	pendingColumns := make([]*pendingColumn, 0, len(o.columnCreates))
	for _, entry := range o.columnCreates {
		pendingColumns = append(pendingColumns, entry)
	}
	sort.Slice(pendingColumns, func(i, j int) bool { return pendingColumns[i].seq < pendingColumns[j].seq })
	for _, entry := range pendingColumns {
		cv := ColumnView{
			Id:      entry.column.Id,
			BoardId: entry.column.BoardId,
			Name:    entry.column.Name,
			Items:   []ItemView{},
			Pending: true,
		}
		columnIndex[cv.Id] = len(view.Columns)
		view.Columns = append(view.Columns, cv)
	}

	pendingItems := make([]*pendingItem, 0, len(o.itemCreates))
	for _, entry := range o.itemCreates {
		pendingItems = append(pendingItems, entry)
	}
	sort.Slice(pendingItems, func(i, j int) bool { return pendingItems[i].seq < pendingItems[j].seq })
	for _, entry := range pendingItems {
		i, ok := columnIndex[entry.item.ColumnId]
		if !ok {
			// target column is gone from the view; nothing to render under
			continue
		}
		view.Columns[i].Items = append(view.Columns[i].Items, ItemView{Item: entry.item, Pending: true})
	}

	// confirmed deletes whose target vanished from the read are complete
	for id, entry := range o.columnDeletes {
		if entry.state == Confirmed && !confirmedColumns[id] {
			delete(o.columnDeletes, id)
		}
	}
	for id, entry := range o.itemDeletes {
		if entry.state == Confirmed && !confirmedItems[id] {
			delete(o.itemDeletes, id)
		}
	}

	return view
}

// overlaidName must be called under o.mu. While the rename is in flight the
// staged value displays; once confirmed, the fresh read carries the canonical
// value and the entry is pruned.
func overlaidName[K comparable](renames map[K]*pendingValue, id K, confirmed string) string {
	entry, ok := renames[id]
	if !ok {
		return confirmed
	}
	if entry.state == Confirmed {
		delete(renames, id)
		return confirmed
	}
	return entry.value
}
