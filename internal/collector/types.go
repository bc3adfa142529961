package collector

import "time"

// Config tunes one collection run.
type Config struct {
	// PageSize is how many items are read per repository page.
	PageSize int
	// FalsePositiveRate tunes the bloom filter. A false positive only means
	// a file is kept one run longer; there are no false negatives, so a
	// deleted file is provably unreferenced at snapshot time.
	FalsePositiveRate float64
	// DeleteConcurrency bounds the parallel file deletions.
	DeleteConcurrency int
}

// Report summarizes one collection run.
type Report struct {
	StartedAt    time.Time
	Duration     time.Duration
	ItemsScanned int
	FilesScanned int
	FilesSkipped int // newer than the snapshot, never evaluated
	FilesKept    int // positive membership test
	FilesDeleted int
}

const (
	defaultPageSize          = 500
	defaultFalsePositiveRate = 0.01
	defaultDeleteConcurrency = 8
)
