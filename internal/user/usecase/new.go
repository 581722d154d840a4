package usecase

import (
	"personal-task-tracker/internal/user/repository"
	"personal-task-tracker/pkg/log"
	"personal-task-tracker/pkg/scope"
)

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo       repository.UserRepository
	jwtManager scope.Manager
	l          log.Logger
}

// New creates a new user UseCase implementation.
func New(repo repository.UserRepository, jwtManager scope.Manager, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		jwtManager: jwtManager,
		l:          l,
	}
}
