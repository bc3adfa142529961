package collector

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/bits-and-blooms/bloom/v3"
	"golang.org/x/sync/errgroup"

	repo "giftlist/internal/repository"
	"giftlist/pkg/imagestore"
	pkgLog "giftlist/pkg/log"
)

// Files is the slice of the image store the collector needs.
type Files interface {
	imagestore.Lister
	RemoveAt(ctx context.Context, localURL string) error
}

type usecase struct {
	items repo.ItemRepository
	files Files
	l     pkgLog.Logger
	cfg   Config
}

var _ UseCase = (*usecase)(nil)

func New(items repo.ItemRepository, files Files, l pkgLog.Logger, cfg Config) UseCase {
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.FalsePositiveRate <= 0 || cfg.FalsePositiveRate >= 1 {
		cfg.FalsePositiveRate = defaultFalsePositiveRate
	}
	if cfg.DeleteConcurrency <= 0 {
		cfg.DeleteConcurrency = defaultDeleteConcurrency
	}
	return &usecase{items: items, files: files, l: l, cfg: cfg}
}

// Collect runs one reconciliation pass. The filter never holds a full set of
// URLs in memory; it is sized from the item count with the configured
// false-positive rate. Files modified at or after the snapshot are never
// evaluated, which closes the race with an upload whose item row has not
// committed yet.
func (uc *usecase) Collect(ctx context.Context) (Report, error) {
	snapshot := time.Now()
	report := Report{StartedAt: snapshot}

	filter, scanned, err := uc.buildFilter(ctx)
	if err != nil {
		return Report{}, err
	}
	report.ItemsScanned = scanned

	files, err := uc.files.ListFiles(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "collector: ListFiles: %v", err)
		return Report{}, err
	}
	report.FilesScanned = len(files)

	var deleted atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.DeleteConcurrency)
	for _, f := range files {
		if !f.ModTime.Before(snapshot) {
			report.FilesSkipped++
			continue
		}
		if filter.TestString(f.Path) {
			// Possible false positive. Kept; reclaimed next run if stale.
			report.FilesKept++
			continue
		}
		// Negative test is authoritative: no item referenced this file at
		// snapshot time.
		g.Go(func() error {
			if dErr := uc.files.RemoveAt(gctx, f.Path); dErr != nil {
				uc.l.Errorf(ctx, "collector: RemoveAt %s: %v", f.Path, dErr)
				return dErr
			}
			deleted.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	report.FilesDeleted = int(deleted.Load())

	if report.FilesDeleted > 0 {
		if err := uc.files.PurgeEmptyDirs(ctx); err != nil {
			uc.l.Warnf(ctx, "collector: PurgeEmptyDirs: %v", err)
		}
	}

	report.Duration = time.Since(snapshot)
	uc.l.Infof(ctx, "collector: items=%d files=%d deleted=%d kept=%d skipped=%d in %s",
		report.ItemsScanned, report.FilesScanned, report.FilesDeleted,
		report.FilesKept, report.FilesSkipped, report.Duration)
	return report, nil
}

// buildFilter streams all items page by page, inserting each local image
// pointer into a bloom filter sized for the table.
func (uc *usecase) buildFilter(ctx context.Context) (*bloom.BloomFilter, int, error) {
	total, err := uc.items.CountItems(ctx, repo.CountItemsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "collector: CountItems: %v", err)
		return nil, 0, err
	}
	capacity := total
	if capacity < 1 {
		capacity = 1
	}
	filter := bloom.NewWithEstimates(uint(capacity), uc.cfg.FalsePositiveRate)

	scanned := 0
	for offset := 0; ; offset += uc.cfg.PageSize {
		items, _, err := uc.items.ListItems(ctx, repo.ListItemsOptions{
			IncludeArchived: true,
			Limit:           uc.cfg.PageSize,
			Offset:          offset,
		})
		if err != nil {
			uc.l.Errorf(ctx, "collector: ListItems offset=%d: %v", offset, err)
			return nil, 0, err
		}
		for _, it := range items {
			scanned++
			if it.LocalImageURL != "" {
				filter.AddString(it.LocalImageURL)
			}
		}
		if len(items) < uc.cfg.PageSize {
			break
		}
	}
	return filter, scanned, nil
}
