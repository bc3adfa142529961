package memory

import (
	"sync"

	"giftlist/internal/model"
	"giftlist/internal/repository"
	"giftlist/pkg/log"
)

// Repository is a mutex-guarded in-memory implementation of
// repository.Repository. It backs the test suite and the dev/demo mode;
// a SQL-backed implementation plugs in behind the same interface.
type Repository struct {
	mu           sync.RWMutex
	l            log.Logger
	users        map[string]model.User
	lists        map[string]model.List
	items        map[string]model.Item
	reservations map[string]model.Reservation
}

var _ repository.Repository = (*Repository)(nil)

// New creates an empty in-memory repository.
func New(l log.Logger) *Repository {
	return &Repository{
		l:            l,
		users:        make(map[string]model.User),
		lists:        make(map[string]model.List),
		items:        make(map[string]model.Item),
		reservations: make(map[string]model.Reservation),
	}
}

// SeedUser and SeedList load fixtures; used by tests and demo bootstrap.

func (r *Repository) SeedUser(u model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
}

func (r *Repository) SeedList(l model.List) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists[l.ID] = l
}
