package entity

import (
	"context"
	"time"
)

// InstallationUpdate is a progress note posted against a project.
type InstallationUpdate struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"projectId"`
	Status    string    `json:"status"`
	Progress  int       `json:"progress"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}

type InstallationUpdateRepositoryInterface interface {
	Create(ctx context.Context, u *InstallationUpdate) error
	ListByProjectID(ctx context.Context, projectID int64) ([]*InstallationUpdate, error)
}
