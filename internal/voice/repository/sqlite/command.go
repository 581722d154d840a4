package sqlite

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"personal-task-tracker/internal/model"
	repo "personal-task-tracker/internal/voice/repository"
)

// parsedDataJSON is the stored wire form of model.ParsedTaskData.
type parsedDataJSON struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"dueDate"`
	DueTime     *string `json:"dueTime"`
	Status      string  `json:"status"`
}

func encodeParsedData(p model.ParsedTaskData) ([]byte, error) {
	out := parsedDataJSON{
		Title:       p.Title,
		Description: p.Description,
		Priority:    string(p.Priority),
		DueTime:     p.DueTime,
		Status:      string(p.Status),
	}
	if p.DueDate != nil {
		s := p.DueDate.Format("2006-01-02")
		out.DueDate = &s
	}
	return json.Marshal(out)
}

func decodeParsedData(raw []byte) (model.ParsedTaskData, error) {
	var in parsedDataJSON
	if err := json.Unmarshal(raw, &in); err != nil {
		return model.ParsedTaskData{}, err
	}
	p := model.ParsedTaskData{
		Title:       in.Title,
		Description: in.Description,
		Priority:    model.Priority(in.Priority),
		DueTime:     in.DueTime,
		Status:      model.TaskStatus(in.Status),
	}
	if in.DueDate != nil {
		if t, err := time.Parse("2006-01-02", *in.DueDate); err == nil {
			p.DueDate = &t
		}
	}
	return p, nil
}

// CreateCommand inserts a new voice command audit record.
func (r *implRepository) CreateCommand(ctx context.Context, opt repo.CreateCommandOptions) (model.VoiceCommand, error) {
	parsed, err := encodeParsedData(opt.Parsed)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("CreateCommand"), err)
		return model.VoiceCommand{}, repo.ErrFailedToInsert
	}

	const query = `
		INSERT INTO voice_commands (id, user_id, transcript, parsed_data, success, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	cmd := model.VoiceCommand{
		ID:         uuid.NewString(),
		UserID:     opt.UserID,
		Transcript: opt.Transcript,
		Parsed:     opt.Parsed,
		Success:    opt.Success,
		CreatedAt:  time.Now().UTC(),
	}

	_, err = r.db.ExecContext(ctx, query,
		cmd.ID, cmd.UserID, cmd.Transcript, string(parsed), cmd.Success, cmd.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCommand"), err)
		return model.VoiceCommand{}, repo.ErrFailedToInsert
	}
	return cmd, nil
}

// ListCommands returns the user's voice commands, newest first.
func (r *implRepository) ListCommands(ctx context.Context, opt repo.ListCommandsOptions) ([]model.VoiceCommand, error) {
	const query = `
		SELECT id, user_id, transcript, parsed_data, success, created_at
		FROM voice_commands
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?`

	limit := opt.Limit
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx, query, opt.UserID, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCommands"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var commands []model.VoiceCommand
	for rows.Next() {
		var (
			cmd    model.VoiceCommand
			parsed string
		)
		if err := rows.Scan(&cmd.ID, &cmd.UserID, &cmd.Transcript, &parsed, &cmd.Success, &cmd.CreatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListCommands"), err)
			return nil, repo.ErrFailedToList
		}
		if cmd.Parsed, err = decodeParsedData([]byte(parsed)); err != nil {
			r.l.Errorf(ctx, "%s decode: %v", r.dsn("ListCommands"), err)
			return nil, repo.ErrFailedToList
		}
		commands = append(commands, cmd)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListCommands"), err)
		return nil, repo.ErrFailedToList
	}
	return commands, nil
}
