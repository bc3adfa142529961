package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"giftlist/internal/item"
	"giftlist/internal/model"
	repo "giftlist/internal/repository"
)

// Create adds a new Item to the user's list. Authorization and the per-list
// limit are checked before any write; a validation failure surfaces as
// *item.ValidationError carrying the representations involved.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
	user, list, err := uc.resolveList(ctx, input.UserID, input.ListID)
	if err != nil {
		return item.CreateItemOutput{}, err
	}

	count, err := uc.repo.CountItems(ctx, repo.CountItemsOptions{ListID: list.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CountItems: %v", err)
		return item.CreateItemOutput{}, err
	}
	if uc.maxItemsPerList > 0 && count >= uc.maxItemsPerList {
		return item.CreateItemOutput{}, item.ErrItemLimitReached
	}

	now := time.Now().UTC()
	it := model.Item{
		ID:          uuid.NewString(),
		ListID:      list.ID,
		Title:       input.Title,
		Description: input.Description,
		Ordinal:     input.Ordinal,
		URL:         input.URL,
		ImageURL:    input.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := it.Validate(); err != nil {
		return item.CreateItemOutput{}, uc.translateValidation(err, user, list, nil)
	}

	it, err = uc.repo.CreateItem(ctx, repo.CreateItemOptions{Item: it})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return item.CreateItemOutput{}, err
	}

	it = uc.fetchImage(ctx, it)

	return item.CreateItemOutput{Item: model.NewItemRep(it, nil)}, nil
}

// fetchImage caches the source image locally and records the pointer on the
// item. Failure is non-fatal: the item stands, the image is retried on the
// next update of its source URL.
func (uc *implUseCase) fetchImage(ctx context.Context, it model.Item) model.Item {
	if uc.images == nil || it.ImageURL == "" {
		return it
	}

	localURL, err := uc.images.Store(ctx, it.ID, it.ImageURL)
	if err != nil {
		uc.l.Warnf(ctx, "uc.fetchImage Store item=%s (non-fatal): %v", it.ID, err)
		return it
	}

	it.LocalImageURL = localURL
	updated, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{Item: it})
	if err != nil {
		uc.l.Errorf(ctx, "uc.fetchImage UpdateItem: %v", err)
		return it
	}
	return updated
}
