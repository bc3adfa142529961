package reservation

import "giftlist/internal/model"

// --- UseCase Inputs ---

// ReserveInput identifies the visitor's claim on an item. HolderID is the
// visitor's identification, not a user ID — anonymous visitors reserve too.
type ReserveInput struct {
	ListID   string
	ItemID   string
	HolderID model.Identification
}

// UnreserveInput undoes an open reservation; only its holder may do so.
type UnreserveInput struct {
	ReservationID string
	HolderID      model.Identification
}

// TransferInput repoints every reservation held by FromID onto ToID. Used
// when a previously anonymous holder authenticates. The caller must already
// have established that ToID belongs to the authenticated principal; no
// authorization is checked here.
type TransferInput struct {
	FromID model.Identification
	ToID   model.Identification
}

// --- UseCase Outputs ---

type ReserveOutput struct {
	Reservation model.ReservationRep
	Item        model.ItemRep
}

type TransferOutput struct {
	Transferred int
}
