package postgre

import (
	"database/sql"
	"fmt"

	"giftlist/internal/repository"
	"giftlist/pkg/log"
)

// implRepository is the PostgreSQL-backed implementation of
// repository.Repository. The one-reservation-per-item constraint lives in the
// schema as a unique index on reservations.item_id.
type implRepository struct {
	db *sql.DB
	l  log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a PostgreSQL-backed Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("repository/postgre.%s", method)
}
