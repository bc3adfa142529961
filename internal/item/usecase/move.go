package usecase

import (
	"context"
	"time"

	"giftlist/internal/item"
	"giftlist/internal/model"
	repo "giftlist/internal/repository"
)

// Move reassigns an Item to another of the user's lists. This is the only
// sanctioned way an item's parent list changes. Guarded by the movable
// predicate; the title is de-duplicated in the target list.
func (uc *implUseCase) Move(ctx context.Context, input item.MoveItemInput) (item.MoveItemOutput, error) {
	user, source, err := uc.resolveList(ctx, input.UserID, input.ListID)
	if err != nil {
		return item.MoveItemOutput{}, err
	}

	if input.TargetListID == "" {
		return item.MoveItemOutput{}, item.ErrInvalidList
	}
	target, err := uc.repo.GetOneList(ctx, repo.GetOneListOptions{ID: input.TargetListID, UserID: user.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Move GetOneList target: %v", err)
		return item.MoveItemOutput{}, err
	}
	if target.ID == "" {
		return item.MoveItemOutput{}, item.ErrInvalidList
	}

	it, err := uc.resolveItem(ctx, source, input.ItemID)
	if err != nil {
		return item.MoveItemOutput{}, err
	}

	res, err := uc.reservationFor(ctx, it.ID)
	if err != nil {
		return item.MoveItemOutput{}, err
	}
	if !model.Movable(res) {
		return item.MoveItemOutput{}, item.ErrItemNotMovable
	}

	title, err := uc.availableTitle(ctx, target.ID, it.Title)
	if err != nil {
		return item.MoveItemOutput{}, err
	}

	it.ListID = target.ID
	it.Title = title
	it.UpdatedAt = time.Now().UTC()

	it, err = uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{Item: it})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Move UpdateItem: %v", err)
		return item.MoveItemOutput{}, err
	}

	lists, _, err := uc.repo.ListLists(ctx, repo.ListListsOptions{UserID: user.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Move ListLists: %v", err)
		return item.MoveItemOutput{}, err
	}
	other := make([]model.ListRep, 0, len(lists))
	for _, l := range lists {
		if l.ID == target.ID {
			continue
		}
		other = append(other, model.NewListRep(l))
	}

	return item.MoveItemOutput{
		Item:       model.NewItemRep(it, res),
		OtherLists: other,
	}, nil
}
