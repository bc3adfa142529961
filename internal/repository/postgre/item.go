package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"giftlist/internal/model"
	repo "giftlist/internal/repository"
)

const itemColumns = `id, list_id, title, description, ordinal, url, image_url, local_image_url, archived, created_at, updated_at`

func scanItem(row interface{ Scan(...any) error }) (model.Item, error) {
	var it model.Item
	err := row.Scan(
		&it.ID, &it.ListID, &it.Title, &it.Description, &it.Ordinal,
		&it.URL, &it.ImageURL, &it.LocalImageURL, &it.Archived,
		&it.CreatedAt, &it.UpdatedAt,
	)
	return it, err
}

// CreateItem inserts a new Item row and returns the stored entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	query := fmt.Sprintf(`
		INSERT INTO items (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING %s`, itemColumns, itemColumns)

	it := opt.Item
	stored, err := scanItem(r.db.QueryRowContext(ctx, query,
		it.ID, it.ListID, it.Title, it.Description, it.Ordinal,
		it.URL, it.ImageURL, it.LocalImageURL, it.Archived,
		it.CreatedAt, it.UpdatedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return model.Item{}, repo.ErrDuplicate
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repo.ErrFailedToInsert
	}
	return stored, nil
}

// GetOneItem retrieves a single Item by the provided filters (AND condition).
// Returns zero-value Item (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (model.Item, error) {
	mods, args := buildGetOneItemQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM items WHERE %s LIMIT 1`, itemColumns, mods)

	it, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return model.Item{}, repo.ErrFailedToGet
	}
	return it, nil
}

// ListItems returns a paginated list of Items and the total count.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.Item, int, error) {
	countMods, countArgs := buildCountItemsWhere(opt)
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM items WHERE %s`, countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := buildListItemsQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM items %s`, itemColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return items, total, nil
}

// UpdateItem overwrites an Item by ID and returns the updated entity.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	query := fmt.Sprintf(`
		UPDATE items
		SET list_id = $2, title = $3, description = $4, ordinal = $5, url = $6,
		    image_url = $7, local_image_url = $8, archived = $9, updated_at = $10
		WHERE id = $1
		RETURNING %s`, itemColumns)

	it := opt.Item
	stored, err := scanItem(r.db.QueryRowContext(ctx, query,
		it.ID, it.ListID, it.Title, it.Description, it.Ordinal,
		it.URL, it.ImageURL, it.LocalImageURL, it.Archived, it.UpdatedAt,
	))
	if err == sql.ErrNoRows {
		return model.Item{}, repo.ErrFailedToUpdate
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return model.Item{}, repo.ErrFailedToUpdate
	}
	return stored, nil
}

// DeleteItem removes an Item by ID. Missing is a no-op.
func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	const query = `DELETE FROM items WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// CountItems counts Items matching the filter, archived included.
func (r *implRepository) CountItems(ctx context.Context, opt repo.CountItemsOptions) (int, error) {
	mods, args := buildCountItemsQuery(opt)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM items WHERE %s`, mods)

	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountItems"), err)
		return 0, repo.ErrFailedToCount
	}
	return total, nil
}
