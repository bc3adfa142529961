package usecase

import (
	"giftlist/internal/repository"
	"giftlist/internal/reservation"
	"giftlist/pkg/log"
)

// implUseCase is the private implementation of reservation.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ reservation.UseCase = (*implUseCase)(nil)

// New creates a new reservation UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
