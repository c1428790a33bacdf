package domain

import "time"

type Board struct {
	Id        BoardId    `json:"id"`
	AccountId AccountId  `json:"accountId"`
	Name      BoardName  `json:"name"`
	Color     BoardColor `json:"color"`
	CreatedAt time.Time  `json:"createdAt"`
	Columns   []Column   `json:"columns,omitempty"`
}

type Column struct {
	Id      ColumnId   `json:"id"`
	BoardId BoardId    `json:"boardId"`
	Name    ColumnName `json:"name"`
	Items   []Item     `json:"items,omitempty"`
}

// Item carries a denormalized BoardId so ownership resolves with one join.
// It is derived from the owning column at create time and never mutated on
// its own.
type Item struct {
	Id       ItemId    `json:"id"`
	ColumnId ColumnId  `json:"columnId"`
	BoardId  BoardId   `json:"boardId"`
	Title    ItemTitle `json:"title"`
}

// to iterate thru layers: handler -> service -> storage

type BoardCreationData struct {
	AccountId AccountId
	Name      BoardName
	Color     BoardColor
}

type ColumnCreationData struct {
	Id      ColumnId // optional, client-generated; empty means server mints one
	BoardId BoardId
	Name    ColumnName
}

type ItemCreationData struct {
	Id       ItemId // optional, client-generated
	ColumnId ColumnId
	Title    ItemTitle
}

// Ownership resolution results returned by guard lookups.

type ColumnOwnership struct {
	Column ColumnId
	Board  BoardId
	Owner  AccountId
}

type ItemOwnership struct {
	Item   ItemId
	Column ColumnId
	Board  BoardId
	Owner  AccountId
}
