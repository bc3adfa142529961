package memory

import (
	"context"
	"sort"

	"giftlist/internal/model"
	"giftlist/internal/repository"
)

// CreateReservation inserts a new open Reservation. The one-reservation-per-
// item constraint is enforced here, mirroring a uniqueness constraint on
// item_id in a SQL store: a concurrent second reservation gets ErrDuplicate.
func (r *Repository) CreateReservation(ctx context.Context, opt repository.CreateReservationOptions) (model.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, res := range r.reservations {
		if res.ItemID == opt.ItemID {
			return model.Reservation{}, repository.ErrDuplicate
		}
	}

	res := model.Reservation{
		ID:        newID(),
		ItemID:    opt.ItemID,
		Status:    model.ReservationOpen,
		HolderID:  opt.HolderID,
		CreatedAt: now(),
	}
	r.reservations[res.ID] = res
	return res, nil
}

// GetOneReservation retrieves a single Reservation by the provided filters
// (AND condition). Returns zero-value Reservation (ID == "") when not found.
func (r *Repository) GetOneReservation(ctx context.Context, opt repository.GetOneReservationOptions) (model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, res := range r.reservations {
		if opt.ID != "" && res.ID != opt.ID {
			continue
		}
		if opt.ItemID != "" && res.ItemID != opt.ItemID {
			continue
		}
		return res, nil
	}
	return model.Reservation{}, nil
}

// ListReservations returns all reservations matching the filter, ordered by
// creation time.
func (r *Repository) ListReservations(ctx context.Context, opt repository.ListReservationsOptions) ([]model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Reservation
	for _, res := range r.reservations {
		if opt.HolderID != "" && res.HolderID != opt.HolderID {
			continue
		}
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// UpdateReservation applies status and holder changes.
func (r *Repository) UpdateReservation(ctx context.Context, opt repository.UpdateReservationOptions) (model.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.reservations[opt.ID]
	if !ok {
		return model.Reservation{}, repository.ErrFailedToUpdate
	}
	if opt.Status != "" {
		res.Status = opt.Status
	}
	if opt.HolderID != "" {
		res.HolderID = opt.HolderID
	}
	r.reservations[opt.ID] = res
	return res, nil
}

// DeleteReservation removes a Reservation by ID. Missing is a no-op.
func (r *Repository) DeleteReservation(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.reservations, id)
	return nil
}
