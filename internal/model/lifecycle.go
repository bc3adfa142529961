package model

// Lifecycle predicates over (item, reservation|nil). These are recomputed on
// every read and never stored as flags on the Item itself. This table is the
// single normative definition — every mutating use case consults these exact
// functions, never a local re-derivation.

// IsReserved reports whether a reservation exists for the item.
func IsReserved(res *Reservation) bool {
	return res != nil
}

// IsReceived reports whether the item's reservation has been closed.
func IsReceived(res *Reservation) bool {
	return res != nil && res.Status == ReservationClosed
}

// Deletable: an item can be deleted only while no reservation exists.
func Deletable(res *Reservation) bool {
	return res == nil
}

// Archivable: no reservation, or the reservation is already closed.
func Archivable(res *Reservation) bool {
	return res == nil || res.Status == ReservationClosed
}

// Movable: an item can change lists only while no reservation exists.
func Movable(res *Reservation) bool {
	return res == nil
}

// Receivable: an open reservation can be closed exactly once.
func Receivable(res *Reservation) bool {
	return res != nil && res.Status == ReservationOpen
}
