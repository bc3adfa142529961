package usecase

import (
	"context"
	"errors"

	"giftlist/internal/model"
	repo "giftlist/internal/repository"
	"giftlist/internal/reservation"
)

// Reserve creates an open reservation for the visitor identified by
// HolderID. The store's uniqueness constraint is the arbiter when two
// reservations race on the same item: the loser gets ErrItemReserved, never
// a silent retry.
func (uc *implUseCase) Reserve(ctx context.Context, input reservation.ReserveInput) (reservation.ReserveOutput, error) {
	if input.ItemID == "" || input.ListID == "" {
		return reservation.ReserveOutput{}, reservation.ErrInvalidItem
	}
	if input.HolderID == "" {
		return reservation.ReserveOutput{}, reservation.ErrInvalidHolder
	}

	it, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ItemID, ListID: input.ListID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reserve GetOneItem: %v", err)
		return reservation.ReserveOutput{}, err
	}
	if it.ID == "" {
		return reservation.ReserveOutput{}, reservation.ErrInvalidItem
	}
	if it.Archived {
		return reservation.ReserveOutput{}, reservation.ErrItemArchived
	}

	existing, err := uc.repo.GetOneReservation(ctx, repo.GetOneReservationOptions{ItemID: it.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reserve GetOneReservation: %v", err)
		return reservation.ReserveOutput{}, err
	}
	if existing.ID != "" {
		return reservation.ReserveOutput{}, reservation.ErrItemReserved
	}

	res, err := uc.repo.CreateReservation(ctx, repo.CreateReservationOptions{
		ItemID:   it.ID,
		HolderID: input.HolderID,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return reservation.ReserveOutput{}, reservation.ErrItemReserved
		}
		uc.l.Errorf(ctx, "uc.Reserve CreateReservation: %v", err)
		return reservation.ReserveOutput{}, err
	}

	return reservation.ReserveOutput{
		Reservation: model.NewReservationRep(res),
		Item:        model.NewItemRep(it, &res),
	}, nil
}

// Unreserve deletes an open reservation on behalf of its holder. Closed
// reservations are terminal and cannot be deleted.
func (uc *implUseCase) Unreserve(ctx context.Context, input reservation.UnreserveInput) error {
	if input.ReservationID == "" {
		return reservation.ErrInvalidReservation
	}
	if input.HolderID == "" {
		return reservation.ErrInvalidHolder
	}

	res, err := uc.repo.GetOneReservation(ctx, repo.GetOneReservationOptions{ID: input.ReservationID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Unreserve GetOneReservation: %v", err)
		return err
	}
	if res.ID == "" {
		return reservation.ErrInvalidReservation
	}
	if res.HolderID != input.HolderID {
		return reservation.ErrNotHolder
	}
	if res.Status != model.ReservationOpen {
		return reservation.ErrReservationClosed
	}

	if err := uc.repo.DeleteReservation(ctx, res.ID); err != nil {
		uc.l.Errorf(ctx, "uc.Unreserve DeleteReservation: %v", err)
		return err
	}
	return nil
}
