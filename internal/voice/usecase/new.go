package usecase

import (
	"personal-task-tracker/internal/voice/repository"
	"personal-task-tracker/pkg/datemath"
	"personal-task-tracker/pkg/hfinference"
	pkgLog "personal-task-tracker/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	llm      hfinference.IInference
	dates    *datemath.Resolver
	repo     repository.CommandRepository
	timezone string
}

// New creates a new voice UseCase instance. The inference client is injected
// here so tests can swap in a local double.
func New(
	l pkgLog.Logger,
	llm hfinference.IInference,
	dates *datemath.Resolver,
	repo repository.CommandRepository,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		dates:    dates,
		repo:     repo,
		timezone: timezone,
	}
}
