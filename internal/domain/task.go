package domain

import "time"

// Task is a task-tracker item classified onto the Kanban board. DueOn is
// date-only; a nil DueOn means the task has no deadline.
type Task struct {
	ID        string     `json:"id"`
	Name      string     `json:"name,omitempty"`
	Completed bool       `json:"completed"`
	DueOn     *time.Time `json:"due_on,omitempty"`
}

// Board groups tasks into fixed relative-time buckets. Overdue incomplete
// tasks land in Today so they never disappear from the board.
type Board struct {
	Today     []Task `json:"today"`
	Upcoming  []Task `json:"upcoming"`
	Later     []Task `json:"later"`
	Completed []Task `json:"completed"`
}
