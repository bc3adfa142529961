package usecase

import (
	"context"
	"time"

	"giftlist/internal/item"
	"giftlist/internal/model"
	repo "giftlist/internal/repository"
)

// Update modifies an existing Item (partial update). When the source image
// URL changes, the cached copy is replaced; when it is cleared, the cached
// copy is removed.
func (uc *implUseCase) Update(ctx context.Context, input item.UpdateItemInput) (item.UpdateItemOutput, error) {
	user, list, err := uc.resolveList(ctx, input.UserID, input.ListID)
	if err != nil {
		return item.UpdateItemOutput{}, err
	}

	it, err := uc.resolveItem(ctx, list, input.ItemID)
	if err != nil {
		return item.UpdateItemOutput{}, err
	}

	res, err := uc.reservationFor(ctx, it.ID)
	if err != nil {
		return item.UpdateItemOutput{}, err
	}

	prevImageURL := it.ImageURL

	it.Title = coalesce(input.Title, it.Title)
	it.Description = coalesce(input.Description, it.Description)
	if input.Ordinal != nil {
		it.Ordinal = *input.Ordinal
	}
	if input.URL != nil {
		it.URL = *input.URL
	}
	if input.ImageURL != nil {
		it.ImageURL = *input.ImageURL
	}
	it.UpdatedAt = time.Now().UTC()

	if err := it.Validate(); err != nil {
		rep := model.NewItemRep(it, res)
		return item.UpdateItemOutput{}, uc.translateValidation(err, user, list, &rep)
	}

	imageChanged := input.ImageURL != nil && *input.ImageURL != prevImageURL
	oldLocal := it.LocalImageURL
	if imageChanged {
		it = uc.refreshImage(ctx, it)
	}

	it, err = uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{Item: it})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return item.UpdateItemOutput{}, err
	}

	// The old cached file goes only after the row is persisted, so a failed
	// write never leaves LocalImageURL pointing at a deleted file. A fetch
	// with an unchanged extension overwrites in place; same path, no removal.
	if imageChanged && uc.images != nil && oldLocal != "" && oldLocal != it.LocalImageURL {
		if rmErr := uc.images.RemoveAt(ctx, oldLocal); rmErr != nil {
			uc.l.Warnf(ctx, "uc.Update RemoveAt item=%s (non-fatal): %v", it.ID, rmErr)
		}
	}

	return item.UpdateItemOutput{Item: model.NewItemRep(it, res)}, nil
}

// refreshImage fetches the new source image, if any. Best-effort; the item
// update itself never depends on it. The previous cached file is untouched,
// the caller removes it once the row is persisted.
func (uc *implUseCase) refreshImage(ctx context.Context, it model.Item) model.Item {
	if uc.images == nil {
		return it
	}

	it.LocalImageURL = ""
	if it.ImageURL == "" {
		return it
	}

	localURL, err := uc.images.Store(ctx, it.ID, it.ImageURL)
	if err != nil {
		uc.l.Warnf(ctx, "uc.refreshImage Store item=%s (non-fatal): %v", it.ID, err)
		return it
	}
	it.LocalImageURL = localURL
	return it
}
