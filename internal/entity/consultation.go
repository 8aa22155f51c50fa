package entity

import (
	"context"
	"time"
)

const DefaultConsultationStatus = "scheduled"

type Consultation struct {
	ID            int64      `json:"id"`
	LeadID        *int64     `json:"leadId"`
	ScheduledDate *time.Time `json:"scheduledDate"`
	Status        string     `json:"status"`
	Notes         *string    `json:"notes"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func (c *Consultation) ApplyDefaults() {
	if c.Status == "" {
		c.Status = DefaultConsultationStatus
	}
}

type ConsultationRepositoryInterface interface {
	Create(ctx context.Context, c *Consultation) error
	FindByID(ctx context.Context, id int64) (*Consultation, error)
	List(ctx context.Context) ([]*Consultation, error)
	ListByLeadID(ctx context.Context, leadID int64) ([]*Consultation, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*Consultation, error)
}
