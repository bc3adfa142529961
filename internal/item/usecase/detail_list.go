package usecase

import (
	"context"

	"giftlist/internal/item"
	"giftlist/internal/model"
	repo "giftlist/internal/repository"
)

// Detail returns one item's representation with its reservation state.
func (uc *implUseCase) Detail(ctx context.Context, input item.DetailItemInput) (item.DetailItemOutput, error) {
	_, list, err := uc.resolveList(ctx, input.UserID, input.ListID)
	if err != nil {
		return item.DetailItemOutput{}, err
	}

	it, err := uc.resolveItem(ctx, list, input.ItemID)
	if err != nil {
		return item.DetailItemOutput{}, err
	}

	res, err := uc.reservationFor(ctx, it.ID)
	if err != nil {
		return item.DetailItemOutput{}, err
	}

	out := item.DetailItemOutput{Item: model.NewItemRep(it, res)}
	if res != nil {
		rep := model.NewReservationRep(*res)
		out.Reservation = &rep
	}
	return out, nil
}

// List returns a page of the list's items ordered by ordinal, each projected
// with its current reservation state.
func (uc *implUseCase) List(ctx context.Context, input item.ListItemsInput) (item.ListItemsOutput, error) {
	_, list, err := uc.resolveList(ctx, input.UserID, input.ListID)
	if err != nil {
		return item.ListItemsOutput{}, err
	}

	items, total, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		ListID:          list.ID,
		IncludeArchived: input.IncludeArchived,
		Limit:           input.Limit,
		Offset:          input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return item.ListItemsOutput{}, err
	}

	reps := make([]model.ItemRep, 0, len(items))
	for _, it := range items {
		res, rErr := uc.reservationFor(ctx, it.ID)
		if rErr != nil {
			return item.ListItemsOutput{}, rErr
		}
		reps = append(reps, model.NewItemRep(it, res))
	}

	return item.ListItemsOutput{
		Items:  reps,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
