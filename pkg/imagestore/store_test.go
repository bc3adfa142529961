package imagestore_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"giftlist/pkg/imagestore"
	"giftlist/pkg/log"
)

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

func newStore(t *testing.T, cfg imagestore.Config) *imagestore.FileStore {
	t.Helper()
	if cfg.Root == "" {
		cfg.Root = t.TempDir()
	}
	s, err := imagestore.NewFileStore(cfg, mockLogger{})
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	return s
}

func imageServer(t *testing.T, contentType string, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s := newStore(t, imagestore.Config{Root: root})
	srv := imageServer(t, "image/png", []byte("png-bytes"))

	itemID := "0f8a1c2d-3e4b-5a6c-7d8e-9f0a1b2c3d4e"
	localURL, err := s.Store(ctx, itemID, srv.URL+"/gift.png")
	if err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	// Hyphens are dropped before sharding, three characters per level.
	wantPrefix := "0f8/a1c/"
	if !strings.HasPrefix(localURL, wantPrefix) {
		t.Errorf("localURL = %q, want prefix %q", localURL, wantPrefix)
	}
	if !strings.HasSuffix(localURL, itemID+".png") {
		t.Errorf("localURL = %q, want suffix %q", localURL, itemID+".png")
	}

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(localURL)))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("stored bytes = %q, want body from source", data)
	}
}

func TestStoreRejectsUnsupportedContentType(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, imagestore.Config{Root: t.TempDir()})
	srv := imageServer(t, "text/html", []byte("<html>"))

	_, err := s.Store(ctx, "item-1", srv.URL)
	if !errors.Is(err, imagestore.ErrUnsupportedType) {
		t.Fatalf("Store() error = %v, want ErrUnsupportedType", err)
	}
}

func TestStoreRejectsOversizeImage(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s := newStore(t, imagestore.Config{Root: root, MaxBytes: 8})
	srv := imageServer(t, "image/png", []byte("more-than-eight-bytes"))

	_, err := s.Store(ctx, "item-1", srv.URL)
	if !errors.Is(err, imagestore.ErrImageTooLarge) {
		t.Fatalf("Store() error = %v, want ErrImageTooLarge", err)
	}

	// No truncated partial file is left behind.
	files, err := s.ListFiles(ctx)
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}
	if len(files) != 0 {
		t.Errorf("files after rejected store = %v, want none", files)
	}
}

func TestStoreFetchFailure(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, imagestore.Config{Root: t.TempDir()})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	_, err := s.Store(ctx, "item-1", srv.URL)
	if !errors.Is(err, imagestore.ErrFetchFailed) {
		t.Fatalf("Store() error = %v, want ErrFetchFailed", err)
	}
}

func TestStoreCacheSkipsRefetch(t *testing.T) {
	ctx := context.Background()
	fetches := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("jpg"))
	}))
	t.Cleanup(srv.Close)

	s := newStore(t, imagestore.Config{Root: t.TempDir(), CacheSize: 8})

	first, err := s.Store(ctx, "item-1", srv.URL)
	if err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	second, err := s.Store(ctx, "item-1", srv.URL)
	if err != nil {
		t.Fatalf("second Store() error = %v", err)
	}
	if first != second {
		t.Errorf("cached localURL = %q, want %q", second, first)
	}
	if fetches != 1 {
		t.Errorf("source fetched %d times, want 1", fetches)
	}
}

func TestRemoveAt(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s := newStore(t, imagestore.Config{Root: root})
	srv := imageServer(t, "image/png", []byte("png"))

	localURL, err := s.Store(ctx, "item-1", srv.URL)
	if err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	if err := s.RemoveAt(ctx, localURL); err != nil {
		t.Fatalf("RemoveAt() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(localURL))); !os.IsNotExist(err) {
		t.Error("file still present after RemoveAt()")
	}

	// Missing files are a no-op; escapes from the root are rejected.
	if err := s.RemoveAt(ctx, localURL); err != nil {
		t.Errorf("RemoveAt() on missing file error = %v, want nil", err)
	}
	for _, bad := range []string{"../outside.png", "/etc/passwd", "."} {
		if err := s.RemoveAt(ctx, bad); !errors.Is(err, imagestore.ErrInvalidLocalURL) {
			t.Errorf("RemoveAt(%q) error = %v, want ErrInvalidLocalURL", bad, err)
		}
	}
}

func TestListFilesMatchesStoredURLs(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, imagestore.Config{Root: t.TempDir()})
	srv := imageServer(t, "image/png", []byte("png"))

	stored := map[string]bool{}
	for _, id := range []string{"item-one", "item-two"} {
		localURL, err := s.Store(ctx, id, srv.URL)
		if err != nil {
			t.Fatalf("Store(%s) error = %v", id, err)
		}
		stored[localURL] = true
	}

	files, err := s.ListFiles(ctx)
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}
	if len(files) != len(stored) {
		t.Fatalf("ListFiles() returned %d files, want %d", len(files), len(stored))
	}
	for _, f := range files {
		if !stored[f.Path] {
			t.Errorf("listed path %q was never returned by Store", f.Path)
		}
		if f.ModTime.IsZero() {
			t.Errorf("listed path %q has zero ModTime", f.Path)
		}
	}
}

func TestPurgeEmptyDirs(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s := newStore(t, imagestore.Config{Root: root})
	srv := imageServer(t, "image/png", []byte("png"))

	localURL, err := s.Store(ctx, "item-1", srv.URL)
	if err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	if err := s.RemoveAt(ctx, localURL); err != nil {
		t.Fatalf("RemoveAt() error = %v", err)
	}

	if err := s.PurgeEmptyDirs(ctx); err != nil {
		t.Fatalf("PurgeEmptyDirs() error = %v", err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("ReadDir(root) error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("root still holds %d entries after purge, want 0", len(entries))
	}
	if _, err := os.Stat(root); err != nil {
		t.Errorf("root itself was removed: %v", err)
	}
}
