package usecase_test

import (
	"context"
	"errors"
	"testing"

	"giftlist/internal/item"
	"giftlist/internal/item/usecase"
	"giftlist/internal/model"
	repo "giftlist/internal/repository"
)

func TestDelete(t *testing.T) {
	ctx := context.Background()
	r := seededRepo()
	images := newMockImages()
	uc := usecase.New(r, images, mockLogger{}, 0)

	created, err := uc.Create(ctx, item.CreateItemInput{
		UserID: testUserID, ListID: testListID, Title: "Puzzle box",
		ImageURL: "https://example.com/puzzle.png",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := uc.Delete(ctx, item.DeleteItemInput{
		UserID: testUserID, ListID: testListID, ItemID: created.Item.ID,
	}); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	got, err := r.GetOneItem(ctx, repo.GetOneItemOptions{ID: created.Item.ID})
	if err != nil {
		t.Fatalf("GetOneItem() error = %v", err)
	}
	if got.ID != "" {
		t.Error("item still present after Delete()")
	}
	if len(images.removed) != 1 || images.removed[0] != created.Item.ID {
		t.Errorf("cached image not removed, Remove calls = %v", images.removed)
	}
}

func TestDeleteBlockedByReservation(t *testing.T) {
	ctx := context.Background()
	r := seededRepo()
	uc := usecase.New(r, nil, mockLogger{}, 0)

	created, err := uc.Create(ctx, item.CreateItemInput{
		UserID: testUserID, ListID: testListID, Title: "Headphones",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	res, err := r.CreateReservation(ctx, repo.CreateReservationOptions{
		ItemID: created.Item.ID, HolderID: "visitor-7",
	})
	if err != nil {
		t.Fatalf("CreateReservation() error = %v", err)
	}

	input := item.DeleteItemInput{UserID: testUserID, ListID: testListID, ItemID: created.Item.ID}
	if err := uc.Delete(ctx, input); !errors.Is(err, item.ErrItemNotDeletable) {
		t.Fatalf("Delete() with open reservation error = %v, want ErrItemNotDeletable", err)
	}

	// Closed reservations block deletion too: the history survives.
	if _, err := r.UpdateReservation(ctx, repo.UpdateReservationOptions{
		ID: res.ID, Status: model.ReservationClosed,
	}); err != nil {
		t.Fatalf("UpdateReservation() error = %v", err)
	}
	if err := uc.Delete(ctx, input); !errors.Is(err, item.ErrItemNotDeletable) {
		t.Fatalf("Delete() with closed reservation error = %v, want ErrItemNotDeletable", err)
	}
}

func TestDeleteAll(t *testing.T) {
	ctx := context.Background()
	r := seededRepo()
	uc := usecase.New(r, nil, mockLogger{}, 0)

	for _, title := range []string{"Gift one", "Gift two", "Gift three"} {
		if _, err := uc.Create(ctx, item.CreateItemInput{
			UserID: testUserID, ListID: testListID, Title: title,
		}); err != nil {
			t.Fatalf("Create(%q) error = %v", title, err)
		}
	}

	out, err := uc.DeleteAll(ctx, item.DeleteAllItemsInput{UserID: testUserID, ListID: testListID})
	if err != nil {
		t.Fatalf("DeleteAll() error = %v", err)
	}
	if out.Deleted != 3 {
		t.Errorf("Deleted = %d, want 3", out.Deleted)
	}

	listed, err := uc.List(ctx, item.ListItemsInput{UserID: testUserID, ListID: testListID, IncludeArchived: true})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if listed.Total != 0 {
		t.Errorf("Total = %d after DeleteAll, want 0", listed.Total)
	}
}

func TestDeleteAllIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	r := seededRepo()
	uc := usecase.New(r, nil, mockLogger{}, 0)

	var reservedID string
	for i, title := range []string{"Gift one", "Gift two", "Gift three"} {
		created, err := uc.Create(ctx, item.CreateItemInput{
			UserID: testUserID, ListID: testListID, Title: title,
		})
		if err != nil {
			t.Fatalf("Create(%q) error = %v", title, err)
		}
		if i == 1 {
			reservedID = created.Item.ID
		}
	}
	if _, err := r.CreateReservation(ctx, repo.CreateReservationOptions{
		ItemID: reservedID, HolderID: "visitor-7",
	}); err != nil {
		t.Fatalf("CreateReservation() error = %v", err)
	}

	_, err := uc.DeleteAll(ctx, item.DeleteAllItemsInput{UserID: testUserID, ListID: testListID})
	if !errors.Is(err, item.ErrItemNotDeletable) {
		t.Fatalf("DeleteAll() error = %v, want ErrItemNotDeletable", err)
	}

	// One undeletable item means nothing was deleted, reserved or not.
	listed, err := uc.List(ctx, item.ListItemsInput{UserID: testUserID, ListID: testListID, IncludeArchived: true})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if listed.Total != 3 {
		t.Errorf("Total = %d after blocked DeleteAll, want all 3 intact", listed.Total)
	}
}
