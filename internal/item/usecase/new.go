package usecase

import (
	"giftlist/internal/item"
	"giftlist/internal/repository"
	"giftlist/pkg/imagestore"
	"giftlist/pkg/log"
)

// implUseCase is the private implementation of item.UseCase. It is stateless:
// all references are fixed at construction, so one instance serves concurrent
// callers without locking.
type implUseCase struct {
	repo            repository.Repository
	images          imagestore.Provider // nil disables image handling
	l               log.Logger
	maxItemsPerList int
}

var _ item.UseCase = (*implUseCase)(nil)

// New creates a new item UseCase implementation.
func New(repo repository.Repository, images imagestore.Provider, l log.Logger, maxItemsPerList int) *implUseCase {
	return &implUseCase{
		repo:            repo,
		images:          images,
		l:               l,
		maxItemsPerList: maxItemsPerList,
	}
}
