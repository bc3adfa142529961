package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"giftlist/internal/item"
	"giftlist/internal/model"
	repo "giftlist/internal/repository"
)

// Delete removes an Item. Guarded by the deletable predicate: any existing
// reservation, open or closed, blocks deletion.
func (uc *implUseCase) Delete(ctx context.Context, input item.DeleteItemInput) error {
	_, list, err := uc.resolveList(ctx, input.UserID, input.ListID)
	if err != nil {
		return err
	}

	it, err := uc.resolveItem(ctx, list, input.ItemID)
	if err != nil {
		return err
	}

	res, err := uc.reservationFor(ctx, it.ID)
	if err != nil {
		return err
	}
	if !model.Deletable(res) {
		return item.ErrItemNotDeletable
	}

	uc.removeImage(ctx, it)

	if err := uc.repo.DeleteItem(ctx, it.ID); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	return nil
}

// DeleteAll removes every item of a list. All predicates are checked before
// the first write so the operation either deletes everything or nothing;
// the repo deletes themselves are issued concurrently and jointly awaited.
func (uc *implUseCase) DeleteAll(ctx context.Context, input item.DeleteAllItemsInput) (item.DeleteAllItemsOutput, error) {
	_, list, err := uc.resolveList(ctx, input.UserID, input.ListID)
	if err != nil {
		return item.DeleteAllItemsOutput{}, err
	}

	items, _, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		ListID:          list.ID,
		IncludeArchived: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteAll ListItems: %v", err)
		return item.DeleteAllItemsOutput{}, err
	}

	for _, it := range items {
		res, rErr := uc.reservationFor(ctx, it.ID)
		if rErr != nil {
			return item.DeleteAllItemsOutput{}, rErr
		}
		if !model.Deletable(res) {
			return item.DeleteAllItemsOutput{}, item.ErrItemNotDeletable
		}
	}

	var g errgroup.Group
	for _, it := range items {
		g.Go(func() error {
			uc.removeImage(ctx, it)
			if dErr := uc.repo.DeleteItem(ctx, it.ID); dErr != nil {
				uc.l.Errorf(ctx, "uc.DeleteAll DeleteItem %s: %v", it.ID, dErr)
				return dErr
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return item.DeleteAllItemsOutput{}, err
	}

	return item.DeleteAllItemsOutput{Deleted: len(items)}, nil
}

// removeImage drops the cached image, best-effort.
func (uc *implUseCase) removeImage(ctx context.Context, it model.Item) {
	if uc.images == nil || it.LocalImageURL == "" {
		return
	}
	if err := uc.images.Remove(ctx, it.ID); err != nil {
		uc.l.Warnf(ctx, "uc.removeImage item=%s (non-fatal): %v", it.ID, err)
	}
}
