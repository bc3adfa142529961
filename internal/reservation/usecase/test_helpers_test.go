package usecase_test

import (
	"context"
	"time"

	"giftlist/internal/model"
	"giftlist/internal/repository"
	"giftlist/internal/repository/memory"
	"giftlist/pkg/log"
)

// mockLogger discards everything.
type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any) {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any) {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any) {}
func (mockLogger) Warn(ctx context.Context, args ...any) {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Error(ctx context.Context, args ...any) {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (mockLogger) DPanic(ctx context.Context, args ...any) {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any) {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Fatal(ctx context.Context, args ...any) {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}

var _ log.Logger = mockLogger{}

const (
	testUserID = "user-1"
	testListID = "list-1"
)

// seededRepo returns an in-memory repository with one user and list plus the
// given number of items, returning the item IDs in creation order.
func seededRepo(items int) (*memory.Repository, []string) {
	repo := memory.New(mockLogger{})
	repo.SeedUser(model.User{
		ID:        testUserID,
		Name:      "Ada",
		CreatedAt: time.Now().UTC(),
	})
	repo.SeedList(model.List{
		ID:        testListID,
		UserID:    testUserID,
		Title:     "Birthday",
		CreatedAt: time.Now().UTC(),
	})

	ids := make([]string, 0, items)
	for i := 0; i < items; i++ {
		it := model.Item{
			ID:        "item-" + string(rune('a'+i)),
			ListID:    testListID,
			Title:     "Gift number " + string(rune('a'+i)),
			Ordinal:   i,
			CreatedAt: time.Now().UTC(),
		}
		if _, err := repo.CreateItem(context.Background(), repository.CreateItemOptions{Item: it}); err != nil {
			panic(err)
		}
		ids = append(ids, it.ID)
	}
	return repo, ids
}
