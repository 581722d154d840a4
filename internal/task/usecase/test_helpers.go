package usecase

import (
	"context"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/sync"
	repo "personal-task-tracker/internal/task/repository"
)

// mockRepository is a hand-rolled in-memory Repository for tests.
type mockRepository struct {
	tasks map[string]model.Task

	createErr error
	getErr    error
	listErr   error
	updateErr error
	deleteErr error
}

func newMockRepository() *mockRepository {
	return &mockRepository{tasks: make(map[string]model.Task)}
}

func (m *mockRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	if m.createErr != nil {
		return model.Task{}, m.createErr
	}
	t := model.Task{
		ID:          "task-" + opt.Title,
		UserID:      opt.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		Status:      opt.Status,
		Priority:    opt.Priority,
		DueDate:     opt.DueDate,
		DueTime:     opt.DueTime,
		CreatedVia:  opt.CreatedVia,
	}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	if m.getErr != nil {
		return model.Task{}, m.getErr
	}
	t, ok := m.tasks[opt.ID]
	if !ok || (opt.UserID != "" && t.UserID != opt.UserID) {
		return model.Task{}, nil
	}
	return t, nil
}

func (m *mockRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	var out []model.Task
	for _, t := range m.tasks {
		if opt.UserID != "" && t.UserID != opt.UserID {
			continue
		}
		if opt.Status != "" && t.Status != opt.Status {
			continue
		}
		if opt.Priority != "" && t.Priority != opt.Priority {
			continue
		}
		out = append(out, t)
	}
	return out, len(out), nil
}

func (m *mockRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	if m.updateErr != nil {
		return model.Task{}, m.updateErr
	}
	t := m.tasks[opt.ID]
	t.Title = opt.Title
	t.Description = opt.Description
	t.Status = opt.Status
	t.Priority = opt.Priority
	t.DueDate = opt.DueDate
	t.DueTime = opt.DueTime
	m.tasks[opt.ID] = t
	return t, nil
}

func (m *mockRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.tasks, opt.ID)
	return nil
}

// mockPublisher records published events.
type mockPublisher struct {
	events []sync.Event
	users  []string
}

func (m *mockPublisher) Publish(userID string, event sync.Event) {
	m.users = append(m.users, userID)
	m.events = append(m.events, event)
}

// nopLogger satisfies log.Logger without output.
type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any) {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Info(ctx context.Context, args ...any) {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any) {}
func (nopLogger) Warn(ctx context.Context, args ...any) {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Error(ctx context.Context, args ...any) {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (nopLogger) DPanic(ctx context.Context, args ...any) {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any) {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Fatal(ctx context.Context, args ...any) {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any) {}
