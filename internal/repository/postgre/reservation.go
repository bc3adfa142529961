package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"giftlist/internal/model"
	repo "giftlist/internal/repository"
)

const reservationColumns = `id, item_id, status, holder_id, created_at`

func scanReservation(row interface{ Scan(...any) error }) (model.Reservation, error) {
	var res model.Reservation
	err := row.Scan(&res.ID, &res.ItemID, &res.Status, &res.HolderID, &res.CreatedAt)
	return res, err
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// CreateReservation inserts a new open Reservation. The unique index on
// item_id is the arbiter for concurrent reservations racing on one item: the
// loser gets ErrDuplicate.
func (r *implRepository) CreateReservation(ctx context.Context, opt repo.CreateReservationOptions) (model.Reservation, error) {
	query := fmt.Sprintf(`
		INSERT INTO reservations (id, item_id, status, holder_id, created_at)
		VALUES (gen_random_uuid(), $1, 'open', $2, NOW())
		RETURNING %s`, reservationColumns)

	res, err := scanReservation(r.db.QueryRowContext(ctx, query, opt.ItemID, opt.HolderID))
	if err != nil {
		if isUniqueViolation(err) {
			return model.Reservation{}, repo.ErrDuplicate
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateReservation"), err)
		return model.Reservation{}, repo.ErrFailedToInsert
	}
	return res, nil
}

// GetOneReservation retrieves a single Reservation by the provided filters
// (AND condition). Returns zero-value Reservation (ID == "") when not found.
func (r *implRepository) GetOneReservation(ctx context.Context, opt repo.GetOneReservationOptions) (model.Reservation, error) {
	mods, args := buildGetOneReservationQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM reservations WHERE %s LIMIT 1`, reservationColumns, mods)

	res, err := scanReservation(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Reservation{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneReservation"), err)
		return model.Reservation{}, repo.ErrFailedToGet
	}
	return res, nil
}

// ListReservations returns all reservations matching the filter, ordered by
// creation time.
func (r *implRepository) ListReservations(ctx context.Context, opt repo.ListReservationsOptions) ([]model.Reservation, error) {
	mods, args := buildListReservationsQuery(opt)
	query := fmt.Sprintf(
		`SELECT %s FROM reservations WHERE %s ORDER BY created_at, id`, reservationColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListReservations"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []model.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListReservations"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

// UpdateReservation applies status and holder changes; empty fields keep the
// stored value.
func (r *implRepository) UpdateReservation(ctx context.Context, opt repo.UpdateReservationOptions) (model.Reservation, error) {
	query := fmt.Sprintf(`
		UPDATE reservations
		SET status = COALESCE(NULLIF($2, ''), status),
		    holder_id = COALESCE(NULLIF($3, ''), holder_id)
		WHERE id = $1
		RETURNING %s`, reservationColumns)

	res, err := scanReservation(r.db.QueryRowContext(ctx, query, opt.ID, string(opt.Status), opt.HolderID))
	if err == sql.ErrNoRows {
		return model.Reservation{}, repo.ErrFailedToUpdate
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateReservation"), err)
		return model.Reservation{}, repo.ErrFailedToUpdate
	}
	return res, nil
}

// DeleteReservation removes a Reservation by ID. Missing is a no-op.
func (r *implRepository) DeleteReservation(ctx context.Context, id string) error {
	const query = `DELETE FROM reservations WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteReservation"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
