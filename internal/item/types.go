package item

import "giftlist/internal/model"

// --- UseCase Inputs ---
// Each input is an immutable per-call specification: identifiers of the
// acting user and target entities plus any new field values. No behavior.

type CreateItemInput struct {
	UserID      string
	ListID      string
	Title       string
	Description string
	Ordinal     int
	URL         string
	ImageURL    string
}

type DetailItemInput struct {
	UserID string
	ListID string
	ItemID string
}

type ListItemsInput struct {
	UserID          string
	ListID          string
	IncludeArchived bool
	Limit           int
	Offset          int
}

type UpdateItemInput struct {
	UserID      string
	ListID      string
	ItemID      string
	Title       string
	Description string
	Ordinal     *int
	URL         *string
	ImageURL    *string
}

type DeleteItemInput struct {
	UserID string
	ListID string
	ItemID string
}

type DeleteAllItemsInput struct {
	UserID string
	ListID string
}

type MoveItemInput struct {
	UserID       string
	ListID       string
	ItemID       string
	TargetListID string
}

type ReceiveItemInput struct {
	UserID string
	ListID string
	ItemID string
}

type ArchiveItemInput struct {
	UserID string
	ListID string
	ItemID string
}

// --- UseCase Outputs ---
// Outputs are built only from representations, never raw entities, so they
// are safe to serialize straight to a wire format.

type CreateItemOutput struct {
	Item model.ItemRep
}

type DetailItemOutput struct {
	Item        model.ItemRep
	Reservation *model.ReservationRep
}

type ListItemsOutput struct {
	Items  []model.ItemRep
	Total  int
	Limit  int
	Offset int
}

type UpdateItemOutput struct {
	Item model.ItemRep
}

type DeleteAllItemsOutput struct {
	Deleted int
}

type MoveItemOutput struct {
	Item model.ItemRep
	// OtherLists are the user's lists excluding the item's new list, for a
	// move UI to offer further destinations without a second round trip.
	OtherLists []model.ListRep
}

type ReceiveItemOutput struct {
	Item        model.ItemRep
	Reservation model.ReservationRep
}

type ArchiveItemOutput struct {
	Item model.ItemRep
}
