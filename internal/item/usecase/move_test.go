package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"giftlist/internal/item"
	"giftlist/internal/item/usecase"
	"giftlist/internal/model"
	repo "giftlist/internal/repository"
)

const otherListID = "list-2"

func TestMove(t *testing.T) {
	ctx := context.Background()
	r := seededRepo()
	r.SeedList(model.List{ID: otherListID, UserID: testUserID, Title: "Christmas", CreatedAt: time.Now().UTC()})
	uc := usecase.New(r, nil, mockLogger{}, 0)

	created, err := uc.Create(ctx, item.CreateItemInput{
		UserID: testUserID, ListID: testListID, Title: "Sled",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	out, err := uc.Move(ctx, item.MoveItemInput{
		UserID: testUserID, ListID: testListID, ItemID: created.Item.ID, TargetListID: otherListID,
	})
	if err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	if out.Item.ListID != otherListID {
		t.Errorf("ListID = %q, want %q", out.Item.ListID, otherListID)
	}
	if out.Item.Title != "Sled" {
		t.Errorf("Title = %q, want unchanged when target has no clash", out.Item.Title)
	}
	for _, l := range out.OtherLists {
		if l.ID == otherListID {
			t.Error("OtherLists includes the target list")
		}
	}
}

func TestMoveDeduplicatesTitle(t *testing.T) {
	ctx := context.Background()
	r := seededRepo()
	r.SeedList(model.List{ID: otherListID, UserID: testUserID, Title: "Christmas", CreatedAt: time.Now().UTC()})
	uc := usecase.New(r, nil, mockLogger{}, 0)

	// Target already holds "Sled" and "Sled (2)".
	for _, title := range []string{"Sled", "Sled (2)"} {
		if _, err := uc.Create(ctx, item.CreateItemInput{
			UserID: testUserID, ListID: otherListID, Title: title,
		}); err != nil {
			t.Fatalf("Create(%q) error = %v", title, err)
		}
	}
	created, err := uc.Create(ctx, item.CreateItemInput{
		UserID: testUserID, ListID: testListID, Title: "Sled",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	out, err := uc.Move(ctx, item.MoveItemInput{
		UserID: testUserID, ListID: testListID, ItemID: created.Item.ID, TargetListID: otherListID,
	})
	if err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	if out.Item.Title != "Sled (3)" {
		t.Errorf("Title = %q, want %q", out.Item.Title, "Sled (3)")
	}
}

func TestMoveBlockedByReservation(t *testing.T) {
	ctx := context.Background()
	r := seededRepo()
	r.SeedList(model.List{ID: otherListID, UserID: testUserID, Title: "Christmas", CreatedAt: time.Now().UTC()})
	uc := usecase.New(r, nil, mockLogger{}, 0)

	created, err := uc.Create(ctx, item.CreateItemInput{
		UserID: testUserID, ListID: testListID, Title: "Camera",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := r.CreateReservation(ctx, repo.CreateReservationOptions{
		ItemID: created.Item.ID, HolderID: "visitor-7",
	}); err != nil {
		t.Fatalf("CreateReservation() error = %v", err)
	}

	_, err = uc.Move(ctx, item.MoveItemInput{
		UserID: testUserID, ListID: testListID, ItemID: created.Item.ID, TargetListID: otherListID,
	})
	if !errors.Is(err, item.ErrItemNotMovable) {
		t.Fatalf("Move() error = %v, want ErrItemNotMovable", err)
	}
}

func TestMoveToForeignListFails(t *testing.T) {
	ctx := context.Background()
	r := seededRepo()
	r.SeedUser(model.User{ID: "user-2", Name: "Bob", CreatedAt: time.Now().UTC()})
	r.SeedList(model.List{ID: "list-foreign", UserID: "user-2", Title: "Bob's", CreatedAt: time.Now().UTC()})
	uc := usecase.New(r, nil, mockLogger{}, 0)

	created, err := uc.Create(ctx, item.CreateItemInput{
		UserID: testUserID, ListID: testListID, Title: "Notebook",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err = uc.Move(ctx, item.MoveItemInput{
		UserID: testUserID, ListID: testListID, ItemID: created.Item.ID, TargetListID: "list-foreign",
	})
	if !errors.Is(err, item.ErrInvalidList) {
		t.Fatalf("Move() to another user's list error = %v, want ErrInvalidList", err)
	}

	// A missing target must not match an arbitrary list.
	_, err = uc.Move(ctx, item.MoveItemInput{
		UserID: testUserID, ListID: testListID, ItemID: created.Item.ID,
	})
	if !errors.Is(err, item.ErrInvalidList) {
		t.Fatalf("Move() without target error = %v, want ErrInvalidList", err)
	}
}
