package entity

import (
	"context"
	"time"
)

const (
	DefaultTaskPriority = "medium"
	DefaultTaskStatus   = "pending"
)

type Task struct {
	ID          int64      `json:"id"`
	RepID       *int64     `json:"repId"`
	LeadID      *int64     `json:"leadId"`
	ProjectID   *int64     `json:"projectId"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (t *Task) ApplyDefaults() {
	if t.Priority == "" {
		t.Priority = DefaultTaskPriority
	}
	if t.Status == "" {
		t.Status = DefaultTaskStatus
	}
}

type TaskPatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Priority    *string    `json:"priority"`
	Status      *string    `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
}

func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.DueDate != nil {
		t.DueDate = p.DueDate
	}
}

type TaskRepositoryInterface interface {
	Create(ctx context.Context, t *Task) error
	ListByRepID(ctx context.Context, repID int64) ([]*Task, error)
	Update(ctx context.Context, id int64, patch TaskPatch) (*Task, error)
}
