package reservation

import "errors"

var (
	ErrInvalidItem        = errors.New("invalid item")
	ErrInvalidReservation = errors.New("invalid reservation")
	// ErrInvalidHolder: every operation needs a concrete holder
	// identification; an empty one would match any stored reservation.
	ErrInvalidHolder = errors.New("invalid holder identification")
	// ErrItemReserved covers both a found existing reservation and the
	// storage uniqueness conflict when two reservations race on one item.
	ErrItemReserved = errors.New("item is already reserved")
	// ErrNotHolder: only the reservation's holder may undo it.
	ErrNotHolder = errors.New("caller does not hold this reservation")
	// ErrReservationClosed: closed is terminal, no deletion or reopening.
	ErrReservationClosed = errors.New("reservation is closed")
	ErrItemArchived      = errors.New("item is archived")
)
