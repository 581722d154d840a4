package usecase

import (
	"personal-task-tracker/internal/sync"
	"personal-task-tracker/internal/task/repository"
	"personal-task-tracker/pkg/gcalendar"
	"personal-task-tracker/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo     repository.Repository
	hub      sync.Publisher
	calendar *gcalendar.Client // nil when calendar export is not configured
	timezone string
	l        log.Logger
}

// New creates a new task UseCase implementation. calendar may be nil.
func New(repo repository.Repository, hub sync.Publisher, calendar *gcalendar.Client, timezone string, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		hub:      hub,
		calendar: calendar,
		timezone: timezone,
		l:        l,
	}
}
