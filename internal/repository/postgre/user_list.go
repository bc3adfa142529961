package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"giftlist/internal/model"
	repo "giftlist/internal/repository"
)

// GetOneUser retrieves a single User by the provided filters (AND condition).
// Returns zero-value User (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	mods, args := buildGetOneUserQuery(opt)
	query := fmt.Sprintf(
		`SELECT id, name, email, identification_id, created_at FROM users WHERE %s LIMIT 1`, mods)

	var u model.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&u.ID, &u.Name, &u.Email, &u.IdentificationID, &u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// GetOneList retrieves a single List by the provided filters (AND condition).
func (r *implRepository) GetOneList(ctx context.Context, opt repo.GetOneListOptions) (model.List, error) {
	mods, args := buildGetOneListQuery(opt)
	query := fmt.Sprintf(
		`SELECT id, user_id, title, created_at, updated_at FROM lists WHERE %s LIMIT 1`, mods)

	var l model.List
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&l.ID, &l.UserID, &l.Title, &l.CreatedAt, &l.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.List{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneList"), err)
		return model.List{}, repo.ErrFailedToGet
	}
	return l, nil
}

// ListLists returns a paginated list of the matching Lists and the total count.
func (r *implRepository) ListLists(ctx context.Context, opt repo.ListListsOptions) ([]model.List, int, error) {
	countMods, countArgs := buildCountListsQuery(opt)
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM lists WHERE %s`, countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListLists"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := buildListListsQuery(opt)
	query := fmt.Sprintf(
		`SELECT id, user_id, title, created_at, updated_at FROM lists %s`, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListLists"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var lists []model.List
	for rows.Next() {
		var l model.List
		if err := rows.Scan(&l.ID, &l.UserID, &l.Title, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		lists = append(lists, l)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListLists"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return lists, total, nil
}
