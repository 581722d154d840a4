package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/store/sqlite"
	repo "personal-task-tracker/internal/task/repository"
)

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

func newTestRepository(t *testing.T) repo.Repository {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "tracker.db"))
	if err != nil {
		t.Fatalf("sqlite.Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(
		`INSERT INTO users (id, username, password_hash) VALUES ('user-1', 'alice', 'x'), ('user-2', 'bob', 'x')`,
	); err != nil {
		t.Fatalf("seed users: %v", err)
	}
	return New(db, nopLogger{})
}

func TestTaskRoundTrip(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	due := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	clock := "18:00"
	created, err := r.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:     "user-1",
		Title:      "Call mom",
		Status:     model.StatusToDo,
		Priority:   model.PriorityUrgent,
		DueDate:    &due,
		DueTime:    &clock,
		CreatedVia: model.CreatedViaVoice,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if created.ID == "" {
		t.Fatal("CreateTask returned empty ID")
	}

	got, err := r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: created.ID, UserID: "user-1"})
	if err != nil {
		t.Fatalf("GetOneTask: %v", err)
	}
	if got.Title != "Call mom" || got.Priority != model.PriorityUrgent {
		t.Errorf("got %+v", got)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Errorf("DueDate = %v, want %v", got.DueDate, due)
	}
	if got.DueTime == nil || *got.DueTime != "18:00" {
		t.Errorf("DueTime = %v, want 18:00", got.DueTime)
	}
	if got.CreatedVia != model.CreatedViaVoice {
		t.Errorf("CreatedVia = %s, want voice", got.CreatedVia)
	}
}

func TestGetOneTaskScopedToUser(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	created, err := r.CreateTask(ctx, repo.CreateTaskOptions{
		UserID: "user-1", Title: "Secret",
		Status: model.StatusToDo, Priority: model.PriorityMedium,
		CreatedVia: model.CreatedViaManual,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	got, err := r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: created.ID, UserID: "user-2"})
	if err != nil {
		t.Fatalf("GetOneTask: %v", err)
	}
	if got.ID != "" {
		t.Errorf("another user's task visible: %+v", got)
	}
}

func TestListTasksFilters(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	seed := []repo.CreateTaskOptions{
		{UserID: "user-1", Title: "a", Status: model.StatusToDo, Priority: model.PriorityLow, CreatedVia: model.CreatedViaManual},
		{UserID: "user-1", Title: "b", Status: model.StatusCompleted, Priority: model.PriorityHigh, CreatedVia: model.CreatedViaManual},
		{UserID: "user-2", Title: "c", Status: model.StatusToDo, Priority: model.PriorityLow, CreatedVia: model.CreatedViaManual},
	}
	for _, opt := range seed {
		if _, err := r.CreateTask(ctx, opt); err != nil {
			t.Fatalf("CreateTask %s: %v", opt.Title, err)
		}
	}

	tasks, total, err := r.ListTasks(ctx, repo.ListTasksOptions{UserID: "user-1"})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if total != 2 || len(tasks) != 2 {
		t.Errorf("user-1 tasks = %d (total %d), want 2", len(tasks), total)
	}

	tasks, total, err = r.ListTasks(ctx, repo.ListTasksOptions{UserID: "user-1", Status: model.StatusCompleted})
	if err != nil {
		t.Fatalf("ListTasks filtered: %v", err)
	}
	if total != 1 || len(tasks) != 1 || tasks[0].Title != "b" {
		t.Errorf("completed tasks = %+v (total %d), want only b", tasks, total)
	}
}

func TestUpdateAndDeleteTask(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	created, err := r.CreateTask(ctx, repo.CreateTaskOptions{
		UserID: "user-1", Title: "Draft",
		Status: model.StatusToDo, Priority: model.PriorityMedium,
		CreatedVia: model.CreatedViaManual,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	updated, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID: created.ID, UserID: "user-1",
		Title:    "Final",
		Status:   model.StatusInProgress,
		Priority: model.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.Title != "Final" || updated.Status != model.StatusInProgress {
		t.Errorf("updated = %+v", updated)
	}
	if updated.DueDate != nil {
		t.Errorf("DueDate = %v, want nil after full-state update", updated.DueDate)
	}

	if err := r.DeleteTask(ctx, repo.DeleteTaskOptions{ID: created.ID, UserID: "user-1"}); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	got, err := r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: created.ID})
	if err != nil {
		t.Fatalf("GetOneTask after delete: %v", err)
	}
	if got.ID != "" {
		t.Errorf("task still present after delete: %+v", got)
	}
}
