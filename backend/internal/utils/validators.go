package utils

import (
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/boardkit-dev/boardkit/shared/errors"
)

const (
	maxBoardNameLen  = 60
	maxColumnNameLen = 60
	maxItemTitleLen  = 200
)

// nameCleaner strips markup from user-supplied names before they are
// persisted. bluemonday escapes what it strips, so unescape afterwards to
// keep innocent characters like & intact.
type nameCleaner struct {
	policy *bluemonday.Policy
	field  string
	limit  int
}

func newNameCleaner(field string, limit int) nameCleaner {
	return nameCleaner{policy: bluemonday.StrictPolicy(), field: field, limit: limit}
}

func (c nameCleaner) Clean(raw string) (string, error) {
	cleaned := strings.TrimSpace(html.UnescapeString(c.policy.Sanitize(raw)))
	if cleaned == "" {
		return "", errors.Validation(fmt.Sprintf("%s must not be empty", c.field))
	}
	if len(cleaned) > c.limit {
		return "", errors.Validation(fmt.Sprintf("%s must be at most %d characters", c.field, c.limit))
	}
	return cleaned, nil
}

type BoardNameValidator struct{ nameCleaner }

func NewBoardNameValidator() *BoardNameValidator {
	return &BoardNameValidator{newNameCleaner("name", maxBoardNameLen)}
}

type ColumnNameValidator struct{ nameCleaner }

func NewColumnNameValidator() *ColumnNameValidator {
	return &ColumnNameValidator{newNameCleaner("name", maxColumnNameLen)}
}

type ItemTitleValidator struct{ nameCleaner }

func NewItemTitleValidator() *ItemTitleValidator {
	return &ItemTitleValidator{newNameCleaner("title", maxItemTitleLen)}
}
