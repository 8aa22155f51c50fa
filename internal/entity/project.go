package entity

import (
	"context"
	"time"
)

const (
	ProjectStatusPending   = "pending"
	ProjectStatusCompleted = "completed"
)

type Project struct {
	ID                     int64      `json:"id"`
	LeadID                 *int64     `json:"leadId"`
	ClientID               *int64     `json:"clientId"`
	RepID                  *int64     `json:"repId"`
	ProjectName            string     `json:"projectName"`
	EstimatedValue         *string    `json:"estimatedValue"`
	InstallationStatus     string     `json:"installationStatus"`
	InstallationProgress   int        `json:"installationProgress"`
	ExpectedCompletionDate *time.Time `json:"expectedCompletionDate"`
	ActualCompletionDate   *time.Time `json:"actualCompletionDate"`
	OpenSolarProjectID     *string    `json:"openSolarProjectId"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}

func (p *Project) ApplyDefaults() {
	if p.InstallationStatus == "" {
		p.InstallationStatus = ProjectStatusPending
	}
}

type ProjectPatch struct {
	ProjectName            *string    `json:"projectName"`
	EstimatedValue         *string    `json:"estimatedValue"`
	InstallationStatus     *string    `json:"installationStatus"`
	InstallationProgress   *int       `json:"installationProgress"`
	ExpectedCompletionDate *time.Time `json:"expectedCompletionDate"`
	ActualCompletionDate   *time.Time `json:"actualCompletionDate"`
	OpenSolarProjectID     *string    `json:"openSolarProjectId"`
	RepID                  *int64     `json:"repId"`
	ClientID               *int64     `json:"clientId"`
}

func (p ProjectPatch) Apply(pr *Project) {
	if p.ProjectName != nil {
		pr.ProjectName = *p.ProjectName
	}
	if p.EstimatedValue != nil {
		pr.EstimatedValue = p.EstimatedValue
	}
	if p.InstallationStatus != nil {
		pr.InstallationStatus = *p.InstallationStatus
	}
	if p.InstallationProgress != nil {
		pr.InstallationProgress = *p.InstallationProgress
	}
	if p.ExpectedCompletionDate != nil {
		pr.ExpectedCompletionDate = p.ExpectedCompletionDate
	}
	if p.ActualCompletionDate != nil {
		pr.ActualCompletionDate = p.ActualCompletionDate
	}
	if p.OpenSolarProjectID != nil {
		pr.OpenSolarProjectID = p.OpenSolarProjectID
	}
	if p.RepID != nil {
		pr.RepID = p.RepID
	}
	if p.ClientID != nil {
		pr.ClientID = p.ClientID
	}
}

type ProjectRepositoryInterface interface {
	Create(ctx context.Context, p *Project) error
	FindByID(ctx context.Context, id int64) (*Project, error)
	List(ctx context.Context) ([]*Project, error)
	ListByClientID(ctx context.Context, clientID int64) ([]*Project, error)
	ListByRepID(ctx context.Context, repID int64) ([]*Project, error)
	Update(ctx context.Context, id int64, patch ProjectPatch) (*Project, error)
}
