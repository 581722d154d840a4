package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/store/sqlite"
	repo "personal-task-tracker/internal/voice/repository"
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

func newTestRepository(t *testing.T) repo.CommandRepository {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "tracker.db"))
	if err != nil {
		t.Fatalf("sqlite.Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(
		`INSERT INTO users (id, username, password_hash) VALUES ('user-1', 'alice', 'x')`,
	); err != nil {
		t.Fatalf("seed users: %v", err)
	}
	return New(db, nopLogger{})
}

func TestCommandRoundTrip(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	due := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	clock := "18:00"
	created, err := r.CreateCommand(ctx, repo.CreateCommandOptions{
		UserID:     "user-1",
		Transcript: "Add a task to call mom tomorrow evening, it's urgent",
		Parsed: model.ParsedTaskData{
			Title:    "Call mom",
			Priority: model.PriorityUrgent,
			DueDate:  &due,
			DueTime:  &clock,
			Status:   model.StatusToDo,
		},
		Success: true,
	})
	if err != nil {
		t.Fatalf("CreateCommand: %v", err)
	}
	if created.ID == "" {
		t.Fatal("CreateCommand returned empty ID")
	}

	commands, err := r.ListCommands(ctx, repo.ListCommandsOptions{UserID: "user-1"})
	if err != nil {
		t.Fatalf("ListCommands: %v", err)
	}
	if len(commands) != 1 {
		t.Fatalf("len(commands) = %d, want 1", len(commands))
	}

	got := commands[0]
	if got.Transcript != created.Transcript {
		t.Errorf("Transcript = %q", got.Transcript)
	}
	if !got.Success {
		t.Error("Success = false, want true")
	}
	if got.Parsed.Title != "Call mom" || got.Parsed.Priority != model.PriorityUrgent {
		t.Errorf("Parsed = %+v", got.Parsed)
	}
	if got.Parsed.DueDate == nil || !got.Parsed.DueDate.Equal(due) {
		t.Errorf("Parsed.DueDate = %v, want %v", got.Parsed.DueDate, due)
	}
	if got.Parsed.DueTime == nil || *got.Parsed.DueTime != "18:00" {
		t.Errorf("Parsed.DueTime = %v, want 18:00", got.Parsed.DueTime)
	}
}

func TestListCommandsNewestFirstWithLimit(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	for _, transcript := range []string{"first", "second", "third"} {
		if _, err := r.CreateCommand(ctx, repo.CreateCommandOptions{
			UserID:     "user-1",
			Transcript: transcript,
			Parsed:     model.ParsedTaskData{Title: transcript, Priority: model.PriorityMedium, Status: model.StatusToDo},
			Success:    true,
		}); err != nil {
			t.Fatalf("CreateCommand %s: %v", transcript, err)
		}
		time.Sleep(5 * time.Millisecond) // created_at must differ for ordering
	}

	commands, err := r.ListCommands(ctx, repo.ListCommandsOptions{UserID: "user-1", Limit: 2})
	if err != nil {
		t.Fatalf("ListCommands: %v", err)
	}
	if len(commands) != 2 {
		t.Fatalf("len(commands) = %d, want 2", len(commands))
	}
	if commands[0].Transcript != "third" || commands[1].Transcript != "second" {
		t.Errorf("order = [%s, %s], want newest first", commands[0].Transcript, commands[1].Transcript)
	}
}
