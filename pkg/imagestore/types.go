package imagestore

import "errors"

// Config holds filesystem store settings.
type Config struct {
	// Root is the directory holding the two-level shard tree.
	Root string
	// FetchPerSecond caps outbound image fetches; 0 means no limit.
	FetchPerSecond float64
	// FetchBurst is the rate limiter burst size.
	FetchBurst int
	// CacheSize bounds the itemID→localURL LRU; 0 disables the cache.
	CacheSize int
	// MaxBytes caps a single fetched image; 0 means the default (8 MiB).
	MaxBytes int64
}

var (
	ErrFetchFailed     = errors.New("image fetch failed")
	ErrUnsupportedType = errors.New("unsupported image content type")
	ErrImageTooLarge   = errors.New("image exceeds size limit")
	ErrInvalidLocalURL = errors.New("invalid local image url")
)

const defaultMaxBytes = 8 << 20
