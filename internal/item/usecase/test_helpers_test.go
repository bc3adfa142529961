package usecase_test

import (
	"context"
	"path"
	"sync"
	"time"

	"giftlist/internal/model"
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

// mockImages records calls instead of touching the filesystem.
type mockImages struct {
	mu        sync.Mutex
	stored    map[string]string // itemID -> sourceURL
	removed   []string          // item IDs passed to Remove
	removedAt []string          // local URLs passed to RemoveAt
	storeErr  error
}

func newMockImages() *mockImages {
	return &mockImages{stored: make(map[string]string)}
}

func (m *mockImages) Store(ctx context.Context, itemID, sourceURL string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.storeErr != nil {
		return "", m.storeErr
	}
	m.stored[itemID] = sourceURL
	// Mirror the real store's layout: the local path is keyed by the item
	// ID and carries the fetched image's extension.
	ext := path.Ext(sourceURL)
	if ext == "" {
		ext = ".png"
	}
	return "abc/def/" + itemID + ext, nil
}

func (m *mockImages) Remove(ctx context.Context, itemID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removed = append(m.removed, itemID)
	return nil
}

func (m *mockImages) RemoveAt(ctx context.Context, localURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removedAt = append(m.removedAt, localURL)
	return nil
}

const (
	testUserID = "user-1"
	testListID = "list-1"
)

// seededRepo returns an in-memory repository holding one user with one list.
func seededRepo() *memory.Repository {
	repo := memory.New(mockLogger{})
	repo.SeedUser(model.User{
		ID:               testUserID,
		Name:             "Ada",
		Email:            "ada@example.com",
		IdentificationID: "ident-1",
		CreatedAt:        time.Now().UTC(),
	})
	repo.SeedList(model.List{
		ID:        testListID,
		UserID:    testUserID,
		Title:     "Birthday",
		CreatedAt: time.Now().UTC(),
	})
	return repo
}
