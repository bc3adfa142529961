package model

import "time"

// Representations are read-only projections of entities, safe to serialize
// straight to a wire format. Use case outputs are built only from these,
// never from raw entities.

type UserRep struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewUserRep(u User) UserRep {
	return UserRep{ID: u.ID, Name: u.Name, Email: u.Email}
}

type ListRep struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func NewListRep(l List) ListRep {
	return ListRep{ID: l.ID, Title: l.Title}
}

type ReservationRep struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func NewReservationRep(r Reservation) ReservationRep {
	return ReservationRep{
		ID:        r.ID,
		ItemID:    r.ItemID,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

// ItemRep carries the lifecycle predicates computed at projection time.
type ItemRep struct {
	ID            string    `json:"id"`
	ListID        string    `json:"list_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Ordinal       int       `json:"ordinal"`
	URL           string    `json:"url,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	LocalImageURL string    `json:"local_image_url,omitempty"`
	Archived      bool      `json:"archived"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	IsReserved bool `json:"is_reserved"`
	IsReceived bool `json:"is_received"`
	Deletable  bool `json:"deletable"`
	Archivable bool `json:"archivable"`
	Movable    bool `json:"movable"`
	Receivable bool `json:"receivable"`
}

// NewItemRep projects an item together with its optional reservation.
func NewItemRep(item Item, res *Reservation) ItemRep {
	return ItemRep{
		ID:            item.ID,
		ListID:        item.ListID,
		Title:         item.Title,
		Description:   item.Description,
		Ordinal:       item.Ordinal,
		URL:           item.URL,
		ImageURL:      item.ImageURL,
		LocalImageURL: item.LocalImageURL,
		Archived:      item.Archived,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,

		IsReserved: IsReserved(res),
		IsReceived: IsReceived(res),
		Deletable:  Deletable(res),
		Archivable: Archivable(res),
		Movable:    Movable(res),
		Receivable: Receivable(res),
	}
}
