package http

import (
	"time"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/task"
	"personal-task-tracker/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title       string  `json:"title"       binding:"required,min=1,max=255"`
	Description string  `json:"description" binding:"max=2000"`
	Status      string  `json:"status"      binding:"omitempty,oneof='To Do' 'In Progress' 'Completed'"`
	Priority    string  `json:"priority"    binding:"omitempty,oneof=Low Medium High Urgent"`
	DueDate     *string `json:"dueDate"     binding:"omitempty,datetime=2006-01-02"`
	DueTime     *string `json:"dueTime"     binding:"omitempty,datetime=15:04"`
	CreatedVia  string  `json:"createdVia"  binding:"omitempty,oneof=manual voice"`
}

func (r createReq) toInput() (task.CreateInput, error) {
	input := task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Status:      model.TaskStatus(r.Status),
		Priority:    model.Priority(r.Priority),
		DueTime:     r.DueTime,
		CreatedVia:  model.CreatedVia(r.CreatedVia),
	}
	if r.DueDate != nil {
		date, err := time.Parse(response.DateFormat, *r.DueDate)
		if err != nil {
			return task.CreateInput{}, err
		}
		input.DueDate = &date
	}
	return input, nil
}

// ---

type listReq struct {
	Status   string `form:"status"   binding:"omitempty,oneof='To Do' 'In Progress' 'Completed'"`
	Priority string `form:"priority" binding:"omitempty,oneof=Low Medium High Urgent"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r listReq) toInput() task.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return task.ListInput{
		Status:   model.TaskStatus(r.Status),
		Priority: model.Priority(r.Priority),
		Limit:    limit,
		Offset:   offset,
	}
}

// ---

type updateReq struct {
	ID          string  `json:"-"` // populated from URI param
	Title       *string `json:"title"       binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Status      *string `json:"status"      binding:"omitempty,oneof='To Do' 'In Progress' 'Completed'"`
	Priority    *string `json:"priority"    binding:"omitempty,oneof=Low Medium High Urgent"`
	DueDate     *string `json:"dueDate"     binding:"omitempty,datetime=2006-01-02"`
	DueTime     *string `json:"dueTime"     binding:"omitempty,datetime=15:04"`
	ClearDue    bool    `json:"clearDue"`
}

func (r updateReq) toInput() (task.UpdateInput, error) {
	input := task.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueTime:     r.DueTime,
		ClearDue:    r.ClearDue,
	}
	if r.Status != nil {
		status := model.TaskStatus(*r.Status)
		input.Status = &status
	}
	if r.Priority != nil {
		priority := model.Priority(*r.Priority)
		input.Priority = &priority
	}
	if r.DueDate != nil {
		date, err := time.Parse(response.DateFormat, *r.DueDate)
		if err != nil {
			return task.UpdateInput{}, err
		}
		input.DueDate = &date
	}
	return input, nil
}

// --- Response DTOs ---

type taskResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	DueDate     *string   `json:"dueDate"`
	DueTime     *string   `json:"dueTime"`
	CreatedVia  string    `json:"createdVia"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		DueTime:     t.DueTime,
		CreatedVia:  string(t.CreatedVia),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.DueDate != nil {
		date := t.DueDate.Format(response.DateFormat)
		resp.DueDate = &date
	}
	return resp
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(output task.CreateOutput) createResp {
	return createResp{Task: newTaskResp(output.Task)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(output task.ListOutput) listResp {
	tasks := make([]taskResp, 0, len(output.Tasks))
	for _, t := range output.Tasks {
		tasks = append(tasks, newTaskResp(t))
	}
	return listResp{
		Tasks:  tasks,
		Total:  output.Total,
		Limit:  output.Limit,
		Offset: output.Offset,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(output task.DetailOutput) detailResp {
	return detailResp{Task: newTaskResp(output.Task)}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(output task.UpdateOutput) updateResp {
	return updateResp{Task: newTaskResp(output.Task)}
}
