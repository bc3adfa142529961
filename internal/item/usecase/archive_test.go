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

func TestArchiveRoundTrip(t *testing.T) {
	ctx := context.Background()
	r := seededRepo()
	uc := usecase.New(r, nil, mockLogger{}, 0)

	created, err := uc.Create(ctx, item.CreateItemInput{
		UserID: testUserID, ListID: testListID, Title: "Fountain pen",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	input := item.ArchiveItemInput{UserID: testUserID, ListID: testListID, ItemID: created.Item.ID}

	out, err := uc.Archive(ctx, input)
	if err != nil {
		t.Fatalf("Archive() error = %v", err)
	}
	if !out.Item.Archived {
		t.Error("item not archived")
	}

	// Archived items drop out of the default listing.
	listed, err := uc.List(ctx, item.ListItemsInput{UserID: testUserID, ListID: testListID})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if listed.Total != 0 {
		t.Errorf("default listing Total = %d, want 0", listed.Total)
	}
	listed, err = uc.List(ctx, item.ListItemsInput{UserID: testUserID, ListID: testListID, IncludeArchived: true})
	if err != nil {
		t.Fatalf("List(IncludeArchived) error = %v", err)
	}
	if listed.Total != 1 {
		t.Errorf("archived listing Total = %d, want 1", listed.Total)
	}

	out, err = uc.Unarchive(ctx, input)
	if err != nil {
		t.Fatalf("Unarchive() error = %v", err)
	}
	if out.Item.Archived {
		t.Error("item still archived after Unarchive()")
	}
}

func TestArchiveGatedByReservation(t *testing.T) {
	ctx := context.Background()
	r := seededRepo()
	uc := usecase.New(r, nil, mockLogger{}, 0)

	created, err := uc.Create(ctx, item.CreateItemInput{
		UserID: testUserID, ListID: testListID, Title: "Fountain pen",
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
	input := item.ArchiveItemInput{UserID: testUserID, ListID: testListID, ItemID: created.Item.ID}

	if _, err := uc.Archive(ctx, input); !errors.Is(err, item.ErrItemNotArchivable) {
		t.Fatalf("Archive() with open reservation error = %v, want ErrItemNotArchivable", err)
	}

	// A closed reservation releases the gate.
	if _, err := r.UpdateReservation(ctx, repo.UpdateReservationOptions{
		ID: res.ID, Status: model.ReservationClosed,
	}); err != nil {
		t.Fatalf("UpdateReservation() error = %v", err)
	}
	out, err := uc.Archive(ctx, input)
	if err != nil {
		t.Fatalf("Archive() with closed reservation error = %v", err)
	}
	if !out.Item.Archived {
		t.Error("item not archived")
	}
}
