package usecase

import (
	"context"
	"strings"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/sync"
	"personal-task-tracker/internal/task"
	repo "personal-task-tracker/internal/task/repository"
)

// Detail retrieves a single Task by ID. Returns ErrTaskNotFound when the task
// does not exist or belongs to another user.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.DetailOutput{}, err
	}
	if t.ID == "" {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}
	return task.DetailOutput{Task: t}, nil
}

// Update applies a partial update to an existing Task. Unset fields keep
// their current values; ClearDue removes the due date and time.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}

	opt := repo.UpdateTaskOptions{
		ID:          existing.ID,
		UserID:      sc.UserID,
		Title:       existing.Title,
		Description: existing.Description,
		Status:      existing.Status,
		Priority:    existing.Priority,
		DueDate:     existing.DueDate,
		DueTime:     existing.DueTime,
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return task.UpdateOutput{}, task.ErrEmptyTitle
		}
		opt.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		opt.Description = *input.Description
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return task.UpdateOutput{}, task.ErrInvalidStatus
		}
		opt.Status = *input.Status
	}
	if input.Priority != nil {
		if !input.Priority.Valid() {
			return task.UpdateOutput{}, task.ErrInvalidPriority
		}
		opt.Priority = *input.Priority
	}
	if input.ClearDue {
		opt.DueDate = nil
		opt.DueTime = nil
	} else {
		if input.DueDate != nil {
			opt.DueDate = input.DueDate
		}
		if input.DueTime != nil {
			opt.DueTime = input.DueTime
		}
	}

	updated, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}

	uc.hub.Publish(sc.UserID, sync.Event{
		Type:   sync.EventTaskUpdated,
		TaskID: updated.ID,
		Task:   &updated,
	})

	return task.UpdateOutput{Task: updated}, nil
}

// Delete removes a Task by ID. Returns ErrTaskNotFound when the task does
// not exist or belongs to another user.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}

	if err := uc.repo.DeleteTask(ctx, repo.DeleteTaskOptions{ID: id, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}

	uc.hub.Publish(sc.UserID, sync.Event{
		Type:   sync.EventTaskDeleted,
		TaskID: id,
	})
	return nil
}
