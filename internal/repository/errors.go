package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrFailedToDelete = errors.New("failed to delete record")
	ErrFailedToCount  = errors.New("failed to count records")

	// ErrDuplicate is returned when a uniqueness constraint is violated,
	// e.g. two concurrent reservations racing on the same item.
	ErrDuplicate = errors.New("record already exists")
)
