package item

import (
	"errors"
	"fmt"
	"strings"

	"giftlist/internal/model"
)

// The only error kinds crossing the UseCase boundary. Deeper structural or
// validation failures are translated into one of these; anything unrecognized
// passes through unchanged.
var (
	ErrInvalidUser       = errors.New("invalid user")
	ErrInvalidList       = errors.New("invalid list")
	ErrInvalidItem       = errors.New("invalid item")
	ErrItemNotDeletable  = errors.New("item is not deletable")
	ErrItemNotMovable    = errors.New("item is not movable")
	ErrItemNotReceivable = errors.New("item is not receivable")
	ErrItemNotArchivable = errors.New("item is not archivable")
	ErrItemLimitReached  = errors.New("item limit reached for list")
	ErrNoAvailableTitle  = errors.New("no available title in target list")
)

// ValidationError is the orchestration wrapper around a field-level
// validation failure. It carries the representations of the entities
// involved so a caller can re-render the failed form without re-querying
// storage. Item is nil when the failure happened before the item existed.
type ValidationError struct {
	User   model.UserRep
	List   model.ListRep
	Item   *model.ItemRep
	Fields []model.FieldError
}

func (e *ValidationError) Error() string {
	paths := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		paths[i] = f.Field
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(paths, ", "))
}
