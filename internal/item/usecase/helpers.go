package usecase

import (
	"context"
	"errors"
	"fmt"

	"giftlist/internal/item"
	"giftlist/internal/model"
	repo "giftlist/internal/repository"
)

// resolveList walks the ownership chain user→list. Every mutating method
// calls this before touching anything, so authorization always precedes
// mutation. Empty identifiers are rejected up front: repository filters
// treat an empty field as "match anything", so passing one through would
// resolve an arbitrary row.
func (uc *implUseCase) resolveList(ctx context.Context, userID, listID string) (model.User, model.List, error) {
	if userID == "" {
		return model.User{}, model.List{}, item.ErrInvalidUser
	}
	if listID == "" {
		return model.User{}, model.List{}, item.ErrInvalidList
	}

	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.resolveList GetOneUser: %v", err)
		return model.User{}, model.List{}, err
	}
	if user.ID == "" {
		return model.User{}, model.List{}, item.ErrInvalidUser
	}

	list, err := uc.repo.GetOneList(ctx, repo.GetOneListOptions{ID: listID, UserID: user.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.resolveList GetOneList: %v", err)
		return model.User{}, model.List{}, err
	}
	if list.ID == "" {
		return model.User{}, model.List{}, item.ErrInvalidList
	}
	return user, list, nil
}

// resolveItem extends the chain to list→item.
func (uc *implUseCase) resolveItem(ctx context.Context, list model.List, itemID string) (model.Item, error) {
	if itemID == "" {
		return model.Item{}, item.ErrInvalidItem
	}

	it, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: itemID, ListID: list.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.resolveItem GetOneItem: %v", err)
		return model.Item{}, err
	}
	if it.ID == "" {
		return model.Item{}, item.ErrInvalidItem
	}
	return it, nil
}

// reservationFor loads the item's reservation, nil when none exists.
func (uc *implUseCase) reservationFor(ctx context.Context, itemID string) (*model.Reservation, error) {
	res, err := uc.repo.GetOneReservation(ctx, repo.GetOneReservationOptions{ItemID: itemID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.reservationFor GetOneReservation: %v", err)
		return nil, err
	}
	if res.ID == "" {
		return nil, nil
	}
	return &res, nil
}

// translateValidation turns a field-level *model.ValidationError into the
// orchestration kind, enriched with the representations at hand. Any other
// error passes through unchanged.
func (uc *implUseCase) translateValidation(err error, user model.User, list model.List, rep *model.ItemRep) error {
	var ve *model.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	return &item.ValidationError{
		User:   model.NewUserRep(user),
		List:   model.NewListRep(list),
		Item:   rep,
		Fields: ve.Fields,
	}
}

// maxTitleAttempts bounds the duplicate-title probe when moving an item into
// a list that already has one with the same title: "T", "T (2)", ... "T (99)".
const maxTitleAttempts = 99

// availableTitle finds a title not yet used in the list.
func (uc *implUseCase) availableTitle(ctx context.Context, listID, title string) (string, error) {
	for attempt := 1; attempt <= maxTitleAttempts; attempt++ {
		candidate := title
		if attempt > 1 {
			candidate = fmt.Sprintf("%s (%d)", title, attempt)
		}
		existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ListID: listID, Title: candidate})
		if err != nil {
			uc.l.Errorf(ctx, "uc.availableTitle GetOneItem: %v", err)
			return "", err
		}
		if existing.ID == "" {
			return candidate, nil
		}
	}
	return "", item.ErrNoAvailableTitle
}

// coalesce returns the first non-empty string — used for partial updates.
func coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
