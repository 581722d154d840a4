package usecase

import (
	"context"
	"strings"
	"time"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/sync"
	"personal-task-tracker/internal/task"
	repo "personal-task-tracker/internal/task/repository"
	"personal-task-tracker/pkg/gcalendar"
)

// Create validates and persists a new Task, then notifies the user's open
// sessions and exports a calendar event when a due date is set.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return task.CreateOutput{}, task.ErrEmptyTitle
	}

	status := input.Status
	if status == "" {
		status = model.StatusToDo
	}
	if !status.Valid() {
		return task.CreateOutput{}, task.ErrInvalidStatus
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.Valid() {
		return task.CreateOutput{}, task.ErrInvalidPriority
	}

	createdVia := input.CreatedVia
	if createdVia == "" {
		createdVia = model.CreatedViaManual
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:      sc.UserID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     input.DueDate,
		DueTime:     input.DueTime,
		CreatedVia:  createdVia,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	uc.hub.Publish(sc.UserID, sync.Event{
		Type:   sync.EventTaskCreated,
		TaskID: created.ID,
		Task:   &created,
	})
	uc.exportCalendarEvent(ctx, created)

	return task.CreateOutput{Task: created}, nil
}

// exportCalendarEvent pushes a due task into the user's calendar. Export is
// best effort: failures are logged and never fail the create.
func (uc *implUseCase) exportCalendarEvent(ctx context.Context, t model.Task) {
	if uc.calendar == nil || t.DueDate == nil {
		return
	}

	start := *t.DueDate
	if t.DueTime != nil {
		if clock, err := time.Parse("15:04", *t.DueTime); err == nil {
			start = start.Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute)
		}
	}

	_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create calendar export for task %s: %v", t.ID, err)
	}
}
