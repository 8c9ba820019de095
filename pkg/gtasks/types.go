package gtasks

import "time"

// TaskList is a simplified representation of a Google Tasks list.
type TaskList struct {
	ID    string
	Title string
}

// Task is a simplified representation of a Google Tasks item. Google Tasks
// stores due dates with day precision only; the time of day is discarded by
// the API.
type Task struct {
	ID        string
	ListID    string
	Title     string
	Notes     string
	Due       *time.Time
	Completed bool
}

// CreateTaskRequest is the input for creating a task.
type CreateTaskRequest struct {
	ListID string
	Title  string
	Notes  string
	Due    *time.Time
}

// ListTasksRequest is the input for listing tasks.
type ListTasksRequest struct {
	ListID        string
	ShowCompleted bool
	MaxResults    int64
}
