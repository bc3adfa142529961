package model

import "time"

// Environment names used across the service.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Identification is an opaque token identifying whoever holds a claim,
// independent of authentication state. A registered user has exactly one
// stable identification; an anonymous visitor is assigned one transiently.
type Identification = string

// User is referenced by this core only for ownership checks.
type User struct {
	ID               string
	Name             string
	Email            string
	IdentificationID Identification
	CreatedAt        time.Time
}

// List owns Items. Referenced here for ownership and authorization only.
type List struct {
	ID        string
	UserID    string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Item is the aggregate root of this core. Its ListID never changes except
// via an explicit, authorized move.
type Item struct {
	ID            string
	ListID        string
	Title         string
	Description   string
	Ordinal       int
	URL           string
	ImageURL      string // source image URL, optional
	LocalImageURL string // pointer into the local image store, optional
	Archived      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ReservationStatus is one-directional: open → closed, terminal at closed.
type ReservationStatus string

const (
	ReservationOpen   ReservationStatus = "open"
	ReservationClosed ReservationStatus = "closed"
)

// Reservation is owned by exactly one Item; at most one per item at a time.
// Ownership is by Identification, not by User, so reservations survive
// sign-up.
type Reservation struct {
	ID        string
	ItemID    string
	Status    ReservationStatus
	HolderID  Identification
	CreatedAt time.Time
}
