package usecase

import (
	"context"

	"giftlist/internal/item"
	"giftlist/internal/model"
	repo "giftlist/internal/repository"
)

// Receive closes the item's open reservation on behalf of the list owner.
// The transition is one-way: calling Receive again on the now-closed
// reservation fails with the same error, deliberately not idempotent.
func (uc *implUseCase) Receive(ctx context.Context, input item.ReceiveItemInput) (item.ReceiveItemOutput, error) {
	_, list, err := uc.resolveList(ctx, input.UserID, input.ListID)
	if err != nil {
		return item.ReceiveItemOutput{}, err
	}

	it, err := uc.resolveItem(ctx, list, input.ItemID)
	if err != nil {
		return item.ReceiveItemOutput{}, err
	}

	res, err := uc.reservationFor(ctx, it.ID)
	if err != nil {
		return item.ReceiveItemOutput{}, err
	}
	if !model.Receivable(res) {
		return item.ReceiveItemOutput{}, item.ErrItemNotReceivable
	}

	updated, err := uc.repo.UpdateReservation(ctx, repo.UpdateReservationOptions{
		ID:     res.ID,
		Status: model.ReservationClosed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Receive UpdateReservation: %v", err)
		return item.ReceiveItemOutput{}, err
	}

	return item.ReceiveItemOutput{
		Item:        model.NewItemRep(it, &updated),
		Reservation: model.NewReservationRep(updated),
	}, nil
}
