package usecase

import (
	"context"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/task"
	repo "personal-task-tracker/internal/task/repository"
)

// List returns a filtered, paginated list of the user's Tasks.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	if input.Status != "" && !input.Status.Valid() {
		return task.ListOutput{}, task.ErrInvalidStatus
	}
	if input.Priority != "" && !input.Priority.Valid() {
		return task.ListOutput{}, task.ErrInvalidPriority
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:   sc.UserID,
		Status:   input.Status,
		Priority: input.Priority,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
