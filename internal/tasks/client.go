// Package tasks fetches the task feed that backs the Kanban board.
package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/masterroofing/sales-insights-service/internal/config"
	"github.com/masterroofing/sales-insights-service/internal/domain"
)

const dueOnLayout = "2006-01-02"

// taskItem mirrors the task-tracker JSON. due_on is date-only and optional.
type taskItem struct {
	GID       string `json:"gid"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	DueOn     string `json:"due_on"`
}

type taskList struct {
	Tasks []taskItem `json:"tasks"`
}

// Client fetches tasks from the task-tracking collaborator
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// NewClient creates a new task source client
func NewClient(cfg config.Tasks, log *zap.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: time.Duration(cfg.TimeoutSec) * time.Second},
		log:     log,
	}
}

// ListTasks fetches the current task feed. Tasks with an unparseable due_on
// keep a nil DueOn and default to the lowest-urgency bucket downstream.
func (c *Client) ListTasks(ctx context.Context) ([]domain.Task, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/tasks", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build task request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Error("Failed to close task response body", zap.Error(err))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("task source returned status %d", resp.StatusCode)
	}

	var list taskList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode task list: %w", err)
	}

	tasks := make([]domain.Task, 0, len(list.Tasks))
	for _, item := range list.Tasks {
		task := domain.Task{
			ID:        item.GID,
			Name:      item.Name,
			Completed: item.Completed,
		}
		if item.DueOn != "" {
			due, err := time.Parse(dueOnLayout, item.DueOn)
			if err != nil {
				c.log.Warn("Ignoring unparseable due_on",
					zap.String("task_id", item.GID),
					zap.String("due_on", item.DueOn))
			} else {
				task.DueOn = &due
			}
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}
