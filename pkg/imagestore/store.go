package imagestore

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"giftlist/pkg/log"
)

// FileStore implements Provider and Lister on the local filesystem. Files
// live under root/<aaa>/<bbb>/<itemID>.<ext> where aaa/bbb are the first six
// characters of the item ID, three per level, to bound directory fan-out.
type FileStore struct {
	root     string
	client   *http.Client
	limiter  *rate.Limiter
	cache    *lru.Cache[string, string]
	maxBytes int64
	l        log.Logger
}

var (
	_ Provider = (*FileStore)(nil)
	_ Lister   = (*FileStore)(nil)
)

// NewFileStore creates a filesystem-backed image store rooted at cfg.Root.
func NewFileStore(cfg Config, l log.Logger) (*FileStore, error) {
	if cfg.Root == "" {
		return nil, fmt.Errorf("image root is required")
	}
	if err := os.MkdirAll(cfg.Root, 0o755); err != nil {
		return nil, fmt.Errorf("create image root: %w", err)
	}

	s := &FileStore{
		root:     cfg.Root,
		client:   &http.Client{},
		maxBytes: cfg.MaxBytes,
		l:        l,
	}
	if s.maxBytes <= 0 {
		s.maxBytes = defaultMaxBytes
	}
	if cfg.FetchPerSecond > 0 {
		burst := cfg.FetchBurst
		if burst <= 0 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(cfg.FetchPerSecond), burst)
	}
	if cfg.CacheSize > 0 {
		cache, err := lru.New[string, string](cfg.CacheSize)
		if err != nil {
			return nil, err
		}
		s.cache = cache
	}
	return s, nil
}

// shardPath derives the two-level shard directory for an item ID.
func shardPath(itemID string) string {
	key := strings.ReplaceAll(itemID, "-", "")
	for len(key) < 6 {
		key += "0"
	}
	return path.Join(key[0:3], key[3:6])
}

// Store fetches sourceURL and writes it under the item's shard directory.
// A repeated call with the same item and source hits the LRU and skips the
// fetch entirely.
func (s *FileStore) Store(ctx context.Context, itemID, sourceURL string) (string, error) {
	cacheKey := itemID + "|" + sourceURL
	if s.cache != nil {
		if localURL, ok := s.cache.Get(cacheKey); ok {
			return localURL, nil
		}
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	ext, err := extensionFor(resp.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	localURL := path.Join(shardPath(itemID), itemID+ext)
	full := filepath.Join(s.root, filepath.FromSlash(localURL))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(full)
	if err != nil {
		return "", err
	}
	// Read one byte past the cap so an oversize body is detected and
	// rejected rather than silently truncated.
	n, err := io.Copy(f, io.LimitReader(resp.Body, s.maxBytes+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(full)
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if n > s.maxBytes {
		os.Remove(full)
		return "", fmt.Errorf("%w: more than %d bytes", ErrImageTooLarge, s.maxBytes)
	}

	if s.cache != nil {
		s.cache.Add(cacheKey, localURL)
	}
	return localURL, nil
}

// Remove deletes every stored file for the item, whatever its extension.
func (s *FileStore) Remove(ctx context.Context, itemID string) error {
	dir := filepath.Join(s.root, filepath.FromSlash(shardPath(itemID)))
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.TrimSuffix(name, filepath.Ext(name)) != itemID {
			continue
		}
		if rmErr := os.Remove(filepath.Join(dir, name)); rmErr != nil {
			return rmErr
		}
	}
	return nil
}

// RemoveAt deletes the file behind a local URL produced by Store.
func (s *FileStore) RemoveAt(ctx context.Context, localURL string) error {
	clean := path.Clean(localURL)
	if clean == "." || strings.HasPrefix(clean, "..") || path.IsAbs(clean) {
		return ErrInvalidLocalURL
	}
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(clean)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// ListFiles walks the shard tree and returns every stored file with its
// modification time. Paths match what Store returned.
func (s *FileStore) ListFiles(ctx context.Context) ([]FileInfo, error) {
	var out []FileInfo
	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		out = append(out, FileInfo{
			Path:    filepath.ToSlash(rel),
			ModTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PurgeEmptyDirs removes empty shard directories bottom-up, leaving the root
// in place.
func (s *FileStore) PurgeEmptyDirs(ctx context.Context) error {
	var dirs []string
	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && p != s.root {
			dirs = append(dirs, p)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Deepest first so a parent emptied by a child's removal goes too.
	for i := len(dirs) - 1; i >= 0; i-- {
		entries, err := os.ReadDir(dirs[i])
		if err != nil {
			continue
		}
		if len(entries) == 0 {
			if err := os.Remove(dirs[i]); err != nil {
				s.l.Warnf(ctx, "imagestore: purge %s: %v", dirs[i], err)
			}
		}
	}
	return nil
}

func extensionFor(contentType string) (string, error) {
	ct := contentType
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	switch strings.TrimSpace(ct) {
	case "image/jpeg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	case "image/gif":
		return ".gif", nil
	case "image/webp":
		return ".webp", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, contentType)
	}
}
