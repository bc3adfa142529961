package imagestore

import (
	"context"
	"time"
)

// Provider is the image-store port consumed by the item use cases. All
// methods are safe for concurrent use by simultaneous invocations.
type Provider interface {
	// Store fetches the image at sourceURL and keeps a local copy keyed by
	// the item ID. Returns the local URL (a path relative to the image root).
	Store(ctx context.Context, itemID, sourceURL string) (string, error)
	// Remove deletes every stored image for the item.
	Remove(ctx context.Context, itemID string) error
	// RemoveAt deletes the file behind a specific local URL.
	RemoveAt(ctx context.Context, localURL string) error
}

// FileInfo describes one stored file for reconciliation.
type FileInfo struct {
	// Path is the local URL of the file, relative to the image root. It is
	// byte-identical to what Store returned for that file.
	Path    string
	ModTime time.Time
}

// Lister enumerates the stored files; consumed by the orphan collector.
type Lister interface {
	ListFiles(ctx context.Context) ([]FileInfo, error)
	// PurgeEmptyDirs removes shard directories left empty after deletions.
	PurgeEmptyDirs(ctx context.Context) error
}
