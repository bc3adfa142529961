package usecase

import (
	"context"
	"time"

	"giftlist/internal/item"
	"giftlist/internal/model"
	repo "giftlist/internal/repository"
)

// Archive hides an item from the default listing. Gated by the archivable
// predicate: an open reservation blocks it.
func (uc *implUseCase) Archive(ctx context.Context, input item.ArchiveItemInput) (item.ArchiveItemOutput, error) {
	return uc.setArchived(ctx, input, true)
}

// Unarchive brings an archived item back, under the same gate.
func (uc *implUseCase) Unarchive(ctx context.Context, input item.ArchiveItemInput) (item.ArchiveItemOutput, error) {
	return uc.setArchived(ctx, input, false)
}

func (uc *implUseCase) setArchived(ctx context.Context, input item.ArchiveItemInput, archived bool) (item.ArchiveItemOutput, error) {
	_, list, err := uc.resolveList(ctx, input.UserID, input.ListID)
	if err != nil {
		return item.ArchiveItemOutput{}, err
	}

	it, err := uc.resolveItem(ctx, list, input.ItemID)
	if err != nil {
		return item.ArchiveItemOutput{}, err
	}

	res, err := uc.reservationFor(ctx, it.ID)
	if err != nil {
		return item.ArchiveItemOutput{}, err
	}
	if !model.Archivable(res) {
		return item.ArchiveItemOutput{}, item.ErrItemNotArchivable
	}

	it.Archived = archived
	it.UpdatedAt = time.Now().UTC()

	it, err = uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{Item: it})
	if err != nil {
		uc.l.Errorf(ctx, "uc.setArchived UpdateItem: %v", err)
		return item.ArchiveItemOutput{}, err
	}

	return item.ArchiveItemOutput{Item: model.NewItemRep(it, res)}, nil
}
