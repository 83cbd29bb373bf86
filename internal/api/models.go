package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskio-api/internal/domain"
)

// TaskRequest is the body of POST /tasks and PUT /tasks/{id}.
type TaskRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description *string `json:"description"`
}

// TaskLogRequest is the body of POST /tasks/{id}/logs and PUT /logs/{id}.
// Every field is optional.
type TaskLogRequest struct {
	StartAt *time.Time `json:"start_at"`
	EndAt   *time.Time `json:"end_at"`
	Memo    *string    `json:"memo"`
}

// params converts the request into domain update parameters.
func (r TaskLogRequest) params() domain.TaskLogParams {
	return domain.TaskLogParams{
		StartAt: r.StartAt,
		EndAt:   r.EndAt,
		Memo:    r.Memo,
	}
}

// TaskResponse represents the response data for a task
type TaskResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskLogResponse represents the response data for a task log
type TaskLogResponse struct {
	ID            uuid.UUID  `json:"id"`
	TaskID        uuid.UUID  `json:"task_id"`
	StartAt       time.Time  `json:"start_at"`
	EndAt         *time.Time `json:"end_at"`
	DurationMin   *int64     `json:"duration_min"`
	DurationLabel *string    `json:"duration_label"`
	Memo          *string    `json:"memo"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		IsActive:    task.IsActive,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}

func taskLogToResponse(entry *domain.TaskLog) TaskLogResponse {
	resp := TaskLogResponse{
		ID:          entry.ID,
		TaskID:      entry.TaskID,
		StartAt:     entry.StartAt,
		EndAt:       entry.EndAt,
		DurationMin: entry.DurationMin,
		Memo:        entry.Memo,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
	if entry.DurationMin != nil {
		label := domain.FormatDuration(*entry.DurationMin)
		resp.DurationLabel = &label
	}
	return resp
}

func taskLogsToResponse(entries []*domain.TaskLog) []TaskLogResponse {
	out := make([]TaskLogResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, taskLogToResponse(entry))
	}
	return out
}
