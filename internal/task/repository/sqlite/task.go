package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"personal-task-tracker/internal/model"
	repo "personal-task-tracker/internal/task/repository"
)

const taskColumns = `id, user_id, title, description, status, priority, due_date, due_time, created_via, created_at, updated_at`

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (id, user_id, title, description, status, priority, due_date, due_time, created_via, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC()
	task := model.Task{
		ID:          uuid.NewString(),
		UserID:      opt.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		Status:      opt.Status,
		Priority:    opt.Priority,
		DueDate:     opt.DueDate,
		DueTime:     opt.DueTime,
		CreatedVia:  opt.CreatedVia,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.UserID, task.Title, task.Description,
		string(task.Status), string(task.Priority),
		nullDate(task.DueDate), nullString(task.DueTime),
		string(task.CreatedVia), task.CreatedAt, task.UpdatedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return task, nil
}

// GetOneTask retrieves a single Task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found, no error.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1", taskColumns, mods)

	task, err := r.scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return task, nil
}

// ListTasks returns a filtered, paginated list of Tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks %s", taskColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := r.scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// UpdateTask replaces the mutable fields of a Task and returns the updated
// entity. The WHERE clause is scoped to the owning user.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	const query = `
		UPDATE tasks
		SET title = ?, description = ?, status = ?, priority = ?, due_date = ?, due_time = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`

	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query,
		opt.Title, opt.Description,
		string(opt.Status), string(opt.Priority),
		nullDate(opt.DueDate), nullString(opt.DueTime),
		now, opt.ID, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.ID, UserID: opt.UserID})
}

// DeleteTask removes a Task scoped to the owning user.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	const query = `DELETE FROM tasks WHERE id = ? AND user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanTask.
type scanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanTask(s scanner) (model.Task, error) {
	var (
		task       model.Task
		status     string
		priority   string
		dueDate    sql.NullString
		dueTime    sql.NullString
		createdVia string
	)
	err := s.Scan(&task.ID, &task.UserID, &task.Title, &task.Description,
		&status, &priority, &dueDate, &dueTime, &createdVia,
		&task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return model.Task{}, err
	}

	task.Status = model.TaskStatus(status)
	task.Priority = model.Priority(priority)
	if dueDate.Valid {
		if t, err := time.Parse("2006-01-02", dueDate.String); err == nil {
			task.DueDate = &t
		}
	}
	if dueTime.Valid {
		task.DueTime = &dueTime.String
	}
	task.CreatedVia = model.CreatedVia(createdVia)
	return task, nil
}

func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format("2006-01-02")
}
