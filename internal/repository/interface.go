package repository

import (
	"context"

	"giftlist/internal/model"
)

// Repository is the composed interface over all entity stores. "Not found"
// is always a zero-value entity, never an error.
type Repository interface {
	UserRepository
	ListRepository
	ItemRepository
	ReservationRepository
}

// UserRepository gives the lookups needed for ownership checks.
type UserRepository interface {
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
}

// ListRepository gives list lookups and listing scoped by owner.
type ListRepository interface {
	GetOneList(ctx context.Context, opt GetOneListOptions) (model.List, error)
	ListLists(ctx context.Context, opt ListListsOptions) ([]model.List, int, error)
}

// ItemRepository defines all data access for the Item entity.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (model.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.Item, int, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.Item, error)
	DeleteItem(ctx context.Context, id string) error
	CountItems(ctx context.Context, opt CountItemsOptions) (int, error)
}

// ReservationRepository defines all data access for the Reservation entity.
// CreateReservation must enforce the one-reservation-per-item constraint and
// return ErrDuplicate when it is violated.
type ReservationRepository interface {
	CreateReservation(ctx context.Context, opt CreateReservationOptions) (model.Reservation, error)
	GetOneReservation(ctx context.Context, opt GetOneReservationOptions) (model.Reservation, error)
	ListReservations(ctx context.Context, opt ListReservationsOptions) ([]model.Reservation, error)
	UpdateReservation(ctx context.Context, opt UpdateReservationOptions) (model.Reservation, error)
	DeleteReservation(ctx context.Context, id string) error
}
