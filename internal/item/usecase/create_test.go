package usecase_test

import (
	"context"
	"errors"
	"testing"

	"giftlist/internal/item"
	"giftlist/internal/item/usecase"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()
	images := newMockImages()
	uc := usecase.New(repo, images, mockLogger{}, 0)

	out, err := uc.Create(ctx, item.CreateItemInput{
		UserID:   testUserID,
		ListID:   testListID,
		Title:    "Chess board",
		Ordinal:  1,
		ImageURL: "https://example.com/chess.png",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if out.Item.ID == "" {
		t.Fatal("Create() returned item without ID")
	}
	if out.Item.Title != "Chess board" {
		t.Errorf("Title = %q, want %q", out.Item.Title, "Chess board")
	}
	if !out.Item.Deletable || !out.Item.Movable || !out.Item.Archivable {
		t.Errorf("fresh item predicates: Deletable=%v Movable=%v Archivable=%v, want all true",
			out.Item.Deletable, out.Item.Movable, out.Item.Archivable)
	}
	if got := images.stored[out.Item.ID]; got != "https://example.com/chess.png" {
		t.Errorf("image store called with %q, want source URL", got)
	}
	if out.Item.LocalImageURL == "" {
		t.Error("LocalImageURL not recorded after successful image fetch")
	}
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()
	uc := usecase.New(repo, nil, mockLogger{}, 0)

	_, err := uc.Create(ctx, item.CreateItemInput{
		UserID: testUserID,
		ListID: testListID,
		Title:  "abc", // one short of the minimum
	})

	var ve *item.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Create() error = %v, want *item.ValidationError", err)
	}
	if len(ve.Fields) != 1 || ve.Fields[0].Field != "title" {
		t.Errorf("Fields = %v, want single error on title", ve.Fields)
	}
	if ve.User.ID != testUserID || ve.List.ID != testListID {
		t.Errorf("error carries user=%q list=%q, want %q/%q", ve.User.ID, ve.List.ID, testUserID, testListID)
	}
	if ve.Item != nil {
		t.Error("Item rep should be nil when creation failed before the item existed")
	}

	// Nothing persisted.
	out, err := uc.List(ctx, item.ListItemsInput{UserID: testUserID, ListID: testListID})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if out.Total != 0 {
		t.Errorf("Total = %d after failed create, want 0", out.Total)
	}
}

func TestCreateLimit(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()
	uc := usecase.New(repo, nil, mockLogger{}, 1)

	if _, err := uc.Create(ctx, item.CreateItemInput{
		UserID: testUserID, ListID: testListID, Title: "First gift",
	}); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}

	_, err := uc.Create(ctx, item.CreateItemInput{
		UserID: testUserID, ListID: testListID, Title: "Second gift",
	})
	if !errors.Is(err, item.ErrItemLimitReached) {
		t.Fatalf("second Create() error = %v, want ErrItemLimitReached", err)
	}
}

func TestCreateAuthorization(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()
	uc := usecase.New(repo, nil, mockLogger{}, 0)

	tests := []struct {
		name    string
		userID  string
		listID  string
		wantErr error
	}{
		{"unknown user", "nobody", testListID, item.ErrInvalidUser},
		{"unknown list", testUserID, "no-such-list", item.ErrInvalidList},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(ctx, item.CreateItemInput{
				UserID: tt.userID, ListID: tt.listID, Title: "Some gift",
			})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateRejectsEmptyIdentifiers(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()
	uc := usecase.New(repo, nil, mockLogger{}, 0)

	// Repository filters treat empty fields as wildcards, so a blank ID must
	// never reach them: it would resolve an arbitrary row and authorize the
	// mutation against a user the caller never named.
	if _, err := uc.Create(ctx, item.CreateItemInput{
		ListID: testListID, Title: "Sneaky gift",
	}); !errors.Is(err, item.ErrInvalidUser) {
		t.Errorf("Create() without user error = %v, want ErrInvalidUser", err)
	}
	if _, err := uc.Create(ctx, item.CreateItemInput{
		UserID: testUserID, Title: "Sneaky gift",
	}); !errors.Is(err, item.ErrInvalidList) {
		t.Errorf("Create() without list error = %v, want ErrInvalidList", err)
	}
	if _, err := uc.Detail(ctx, item.DetailItemInput{
		UserID: testUserID, ListID: testListID,
	}); !errors.Is(err, item.ErrInvalidItem) {
		t.Errorf("Detail() without item error = %v, want ErrInvalidItem", err)
	}

	// Nothing persisted.
	out, err := uc.List(ctx, item.ListItemsInput{UserID: testUserID, ListID: testListID})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if out.Total != 0 {
		t.Errorf("Total = %d after rejected creates, want 0", out.Total)
	}
}

func TestCreateImageFetchFailureIsNonFatal(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()
	images := newMockImages()
	images.storeErr = errors.New("upstream down")
	uc := usecase.New(repo, images, mockLogger{}, 0)

	out, err := uc.Create(ctx, item.CreateItemInput{
		UserID:   testUserID,
		ListID:   testListID,
		Title:    "Wool socks",
		ImageURL: "https://example.com/socks.png",
	})
	if err != nil {
		t.Fatalf("Create() error = %v, want nil when only the image fetch fails", err)
	}
	if out.Item.LocalImageURL != "" {
		t.Errorf("LocalImageURL = %q, want empty after failed fetch", out.Item.LocalImageURL)
	}
}
