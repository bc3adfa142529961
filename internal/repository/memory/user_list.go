package memory

import (
	"context"
	"sort"

	"giftlist/internal/model"
	"giftlist/internal/repository"
)

// GetOneUser retrieves a single User by the provided filters (AND condition).
// Returns zero-value User (ID == "") when not found.
func (r *Repository) GetOneUser(ctx context.Context, opt repository.GetOneUserOptions) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if opt.ID != "" && u.ID != opt.ID {
			continue
		}
		if opt.IdentificationID != "" && u.IdentificationID != opt.IdentificationID {
			continue
		}
		return u, nil
	}
	return model.User{}, nil
}

// GetOneList retrieves a single List by the provided filters (AND condition).
// Returns zero-value List (ID == "") when not found.
func (r *Repository) GetOneList(ctx context.Context, opt repository.GetOneListOptions) (model.List, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.lists {
		if opt.ID != "" && l.ID != opt.ID {
			continue
		}
		if opt.UserID != "" && l.UserID != opt.UserID {
			continue
		}
		return l, nil
	}
	return model.List{}, nil
}

// ListLists returns the lists matching the filters, ordered by creation time,
// plus the total count before pagination.
func (r *Repository) ListLists(ctx context.Context, opt repository.ListListsOptions) ([]model.List, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.List
	for _, l := range r.lists {
		if opt.UserID != "" && l.UserID != opt.UserID {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	total := len(out)
	out = paginate(out, opt.Limit, opt.Offset)
	return out, total, nil
}

func paginate[T any](in []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(in) {
		return nil
	}
	in = in[offset:]
	if limit > 0 && limit < len(in) {
		in = in[:limit]
	}
	return in
}
