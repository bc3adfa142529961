package memory

import (
	"context"
	"sort"

	"giftlist/internal/model"
	"giftlist/internal/repository"
)

// CreateItem inserts a new Item and returns the stored entity.
func (r *Repository) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[opt.Item.ID]; ok {
		return model.Item{}, repository.ErrDuplicate
	}
	r.items[opt.Item.ID] = opt.Item
	return opt.Item, nil
}

// GetOneItem retrieves a single Item by the provided filters (AND condition).
// Returns zero-value Item (ID == "") when not found — not an error.
func (r *Repository) GetOneItem(ctx context.Context, opt repository.GetOneItemOptions) (model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if opt.ID != "" && item.ID != opt.ID {
			continue
		}
		if opt.ListID != "" && item.ListID != opt.ListID {
			continue
		}
		if opt.Title != "" && item.Title != opt.Title {
			continue
		}
		return item, nil
	}
	return model.Item{}, nil
}

// ListItems returns a page of Items ordered by ordinal then creation time,
// plus the total count before pagination.
func (r *Repository) ListItems(ctx context.Context, opt repository.ListItemsOptions) ([]model.Item, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Item
	for _, item := range r.items {
		if opt.ListID != "" && item.ListID != opt.ListID {
			continue
		}
		if !opt.IncludeArchived && item.Archived {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Ordinal != out[j].Ordinal {
			return out[i].Ordinal < out[j].Ordinal
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	total := len(out)
	out = paginate(out, opt.Limit, opt.Offset)
	return out, total, nil
}

// UpdateItem overwrites the stored Item with the provided entity.
func (r *Repository) UpdateItem(ctx context.Context, opt repository.UpdateItemOptions) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[opt.Item.ID]; !ok {
		return model.Item{}, repository.ErrFailedToUpdate
	}
	r.items[opt.Item.ID] = opt.Item
	return opt.Item, nil
}

// DeleteItem removes an Item by ID. Deleting a missing item is a no-op.
func (r *Repository) DeleteItem(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

// CountItems counts Items matching the filter, archived included.
func (r *Repository) CountItems(ctx context.Context, opt repository.CountItemsOptions) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, item := range r.items {
		if opt.ListID != "" && item.ListID != opt.ListID {
			continue
		}
		n++
	}
	return n, nil
}
