package gtasks

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/tasks/v1"
)

const defaultListID = "@default"

// Client wraps the Google Tasks API service.
type Client struct {
	service *tasks.Service
}

// NewClientFromCredentialsFile creates a Tasks client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Tasks client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, tasks.TasksScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	svc, err := tasks.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Tasks client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := tasks.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListTaskLists returns the account's task lists.
func (c *Client) ListTaskLists(ctx context.Context) ([]TaskList, error) {
	result, err := c.service.Tasklists.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list task lists: %w", err)
	}

	lists := make([]TaskList, 0, len(result.Items))
	for _, item := range result.Items {
		lists = append(lists, TaskList{ID: item.Id, Title: item.Title})
	}
	return lists, nil
}

// ListTasks returns tasks from a list, the default list when none is given.
func (c *Client) ListTasks(ctx context.Context, req ListTasksRequest) ([]Task, error) {
	listID := req.ListID
	if listID == "" {
		listID = defaultListID
	}

	call := c.service.Tasks.List(listID).
		ShowCompleted(req.ShowCompleted).
		ShowHidden(req.ShowCompleted).
		Context(ctx)
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	result, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	items := make([]Task, 0, len(result.Items))
	for _, item := range result.Items {
		task := Task{
			ID:        item.Id,
			ListID:    listID,
			Title:     item.Title,
			Notes:     item.Notes,
			Completed: item.Status == "completed",
		}
		if item.Due != "" {
			if due, parseErr := time.Parse(time.RFC3339, item.Due); parseErr == nil {
				task.Due = &due
			}
		}
		items = append(items, task)
	}
	return items, nil
}

// CreateTask creates a task in a list, the default list when none is given.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	listID := req.ListID
	if listID == "" {
		listID = defaultListID
	}

	task := &tasks.Task{
		Title: req.Title,
		Notes: req.Notes,
	}
	if req.Due != nil {
		task.Due = req.Due.Format(time.RFC3339)
	}

	created, err := c.service.Tasks.Insert(listID, task).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	out := &Task{
		ID:     created.Id,
		ListID: listID,
		Title:  created.Title,
		Notes:  created.Notes,
	}
	if created.Due != "" {
		if due, parseErr := time.Parse(time.RFC3339, created.Due); parseErr == nil {
			out.Due = &due
		}
	}
	return out, nil
}

// DeleteTask removes a task from a list.
func (c *Client) DeleteTask(ctx context.Context, listID, taskID string) error {
	if listID == "" {
		listID = defaultListID
	}
	if err := c.service.Tasks.Delete(listID, taskID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
