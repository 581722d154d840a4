package http

import (
	"time"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/voice"
	"personal-task-tracker/pkg/response"
)

// --- Request DTOs ---

type parseReq struct {
	Transcript string `json:"transcript" binding:"required,min=1,max=2000"`
}

func (r parseReq) toInput() voice.ParseInput {
	return voice.ParseInput{
		Transcript: r.Transcript,
	}
}

// ---

type historyReq struct {
	Limit int `form:"limit"`
}

func (r historyReq) toInput() voice.HistoryInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return voice.HistoryInput{
		Limit: limit,
	}
}

// --- Response DTOs ---

type parsedTaskResp struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"dueDate"`
	DueTime     *string `json:"dueTime"`
	Status      string  `json:"status"`
}

func newParsedTaskResp(data model.ParsedTaskData) parsedTaskResp {
	resp := parsedTaskResp{
		Title:       data.Title,
		Description: data.Description,
		Priority:    string(data.Priority),
		DueTime:     data.DueTime,
		Status:      string(data.Status),
	}
	if data.DueDate != nil {
		date := data.DueDate.Format(response.DateFormat)
		resp.DueDate = &date
	}
	return resp
}

type parseResp struct {
	Transcript string         `json:"transcript"`
	Parsed     parsedTaskResp `json:"parsed"`
	Confidence string         `json:"confidence"`
}

func (h *handler) newParseResp(result model.VoiceParseResult) parseResp {
	return parseResp{
		Transcript: result.Transcript,
		Parsed:     newParsedTaskResp(result.Parsed),
		Confidence: string(result.Confidence),
	}
}

type commandResp struct {
	ID         string         `json:"id"`
	Transcript string         `json:"transcript"`
	Parsed     parsedTaskResp `json:"parsed"`
	Success    bool           `json:"success"`
	CreatedAt  time.Time      `json:"createdAt"`
}

type historyResp struct {
	Commands []commandResp `json:"commands"`
	Count    int           `json:"count"`
}

func (h *handler) newHistoryResp(output voice.HistoryOutput) historyResp {
	commands := make([]commandResp, 0, len(output.Commands))
	for _, cmd := range output.Commands {
		commands = append(commands, commandResp{
			ID:         cmd.ID,
			Transcript: cmd.Transcript,
			Parsed:     newParsedTaskResp(cmd.Parsed),
			Success:    cmd.Success,
			CreatedAt:  cmd.CreatedAt,
		})
	}
	return historyResp{
		Commands: commands,
		Count:    output.Count,
	}
}
