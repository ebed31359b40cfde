package task

type CreateTaskRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	StartAt     string   `json:"start_at" binding:"required"`
	EndAt       string   `json:"end_at" binding:"required"`
	Assignees   []string `json:"assignees"`
}

type UpdateTaskRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	StartAt     string   `json:"start_at" binding:"required"`
	EndAt       string   `json:"end_at" binding:"required"`
	Assignees   []string `json:"assignees"`
}

type TaskResponse struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	StartAt     string   `json:"start_at"`
	EndAt       string   `json:"end_at"`
	Assignees   []string `json:"assignees"`
	Status      string   `json:"status"`
}
