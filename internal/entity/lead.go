package entity

import (
	"context"
	"time"
)

const (
	DefaultLeadSource = "website"
	DefaultLeadStatus = "new"
)

type Lead struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     *string   `json:"address"`
	MonthlyBill *string   `json:"monthlyBill"` // decimal as string, e.g. "150.00"
	HomeSize    *int      `json:"homeSize"`    // sq ft
	RoofType    *string   `json:"roofType"`
	EnergyGoals *string   `json:"energyGoals"`
	LeadSource  string    `json:"leadSource"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (l *Lead) FullName() string {
	return l.FirstName + " " + l.LastName
}

// ApplyDefaults fills the fields a submission may omit.
func (l *Lead) ApplyDefaults() {
	if l.LeadSource == "" {
		l.LeadSource = DefaultLeadSource
	}
	if l.Status == "" {
		l.Status = DefaultLeadStatus
	}
}

// LeadRepositoryInterface stores leads. FindByID returns (nil, nil) when no
// lead has the given id.
type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, id int64) (*Lead, error)
	List(ctx context.Context) ([]*Lead, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*Lead, error)
}
