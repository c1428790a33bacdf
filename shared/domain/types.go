package domain

import "github.com/google/uuid"

type (
	Email    = string
	Password = string

	AccountId = int64

	BoardId    = int64
	BoardName  = string
	BoardColor = string

	ColumnId   = string
	ColumnName = string

	ItemId    = string
	ItemTitle = string
)

// NewEntityId mints a column/item identifier. The client uses it for
// optimistic creates (the id must be known before the request completes),
// the server uses it as a fallback when the caller supplied none.
func NewEntityId() string {
	return uuid.NewString()
}
