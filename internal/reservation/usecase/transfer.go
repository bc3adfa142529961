package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	repo "giftlist/internal/repository"
	"giftlist/internal/reservation"
)

// Transfer repoints every reservation held by the source identification onto
// the target one. Updates are issued concurrently and jointly awaited: every
// update is attempted even after one fails, and the first failure is
// surfaced naming the reservation it hit. Zero matches is a successful
// no-op, which also makes a re-run idempotent.
func (uc *implUseCase) Transfer(ctx context.Context, input reservation.TransferInput) (reservation.TransferOutput, error) {
	// An empty holder filter matches every stored reservation, so a missing
	// identification must fail here rather than fan out below.
	if input.FromID == "" || input.ToID == "" {
		return reservation.TransferOutput{}, reservation.ErrInvalidHolder
	}
	if input.FromID == input.ToID {
		return reservation.TransferOutput{}, nil
	}

	reservations, err := uc.repo.ListReservations(ctx, repo.ListReservationsOptions{HolderID: input.FromID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Transfer ListReservations: %v", err)
		return reservation.TransferOutput{}, err
	}
	if len(reservations) == 0 {
		return reservation.TransferOutput{}, nil
	}

	// Plain errgroup.Group, no shared context: a failure must not cancel
	// the sibling updates.
	var g errgroup.Group
	for _, res := range reservations {
		g.Go(func() error {
			_, uErr := uc.repo.UpdateReservation(ctx, repo.UpdateReservationOptions{
				ID:       res.ID,
				HolderID: input.ToID,
			})
			if uErr != nil {
				uc.l.Errorf(ctx, "uc.Transfer UpdateReservation %s: %v", res.ID, uErr)
				return fmt.Errorf("transfer reservation %s: %w", res.ID, uErr)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return reservation.TransferOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Transfer: moved %d reservations %s -> %s", len(reservations), input.FromID, input.ToID)
	return reservation.TransferOutput{Transferred: len(reservations)}, nil
}
