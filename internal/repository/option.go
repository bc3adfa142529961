package repository

import "giftlist/internal/model"

// GetOneUserOptions holds filter parameters for fetching a single User.
// All non-empty fields are applied as AND conditions.
type GetOneUserOptions struct {
	ID               string
	IdentificationID string
}

// GetOneListOptions holds filter parameters for fetching a single List.
type GetOneListOptions struct {
	ID     string
	UserID string
}

// ListListsOptions holds filter and pagination parameters for listing Lists.
type ListListsOptions struct {
	UserID string
	Limit  int
	Offset int
}

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	Item model.Item
}

// GetOneItemOptions holds filter parameters for fetching a single Item.
type GetOneItemOptions struct {
	ID     string
	ListID string
	Title  string
}

// ListItemsOptions holds filter and pagination parameters for listing Items.
// Items are ordered by ordinal, then creation time.
type ListItemsOptions struct {
	ListID          string
	IncludeArchived bool
	Limit           int
	Offset          int
}

// UpdateItemOptions holds parameters for updating an existing Item. The use
// case resolves partial input against the stored entity before calling this,
// so every field here is written as-is.
type UpdateItemOptions struct {
	Item model.Item
}

// CountItemsOptions holds filter parameters for counting Items.
type CountItemsOptions struct {
	ListID string
}

// CreateReservationOptions holds parameters for inserting a new Reservation.
type CreateReservationOptions struct {
	ItemID   string
	HolderID model.Identification
}

// GetOneReservationOptions holds filter parameters for fetching a single
// Reservation.
type GetOneReservationOptions struct {
	ID     string
	ItemID string
}

// ListReservationsOptions holds filter parameters for listing Reservations.
type ListReservationsOptions struct {
	HolderID model.Identification
}

// UpdateReservationOptions holds parameters for updating a Reservation.
// Only status and holder are mutable.
type UpdateReservationOptions struct {
	ID       string
	Status   model.ReservationStatus
	HolderID model.Identification
}
