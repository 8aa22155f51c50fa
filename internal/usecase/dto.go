package usecase

import (
	"encoding/json"
	"time"

	"github.com/liv8solar/solar-leads/internal/entity"
)

type CreateLeadInput struct {
	FirstName   string  `json:"firstName" validate:"required,max=100"`
	LastName    string  `json:"lastName" validate:"required,max=100"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       string  `json:"phone" validate:"required,max=40"`
	Address     *string `json:"address"`
	MonthlyBill *string `json:"monthlyBill" validate:"omitempty,money"`
	HomeSize    *int    `json:"homeSize" validate:"omitempty,gte=0"`
	RoofType    *string `json:"roofType"`
	EnergyGoals *string `json:"energyGoals"`
	LeadSource  *string `json:"leadSource"`

	// AffiliateID is resolved from the request, not the body.
	AffiliateID string `json:"-"`
}

// CreateLeadOutput is the stored lead plus the design-platform project id
// when one was created.
type CreateLeadOutput struct {
	*entity.Lead
	OpenSolarProjectID string `json:"openSolarProjectId,omitempty"`

	Report *FanOutReport `json:"-"`
}

type CreateCalculationInput struct {
	LeadID      *int64 `json:"leadId"`
	MonthlyBill string `json:"monthlyBill" validate:"required,money"`
	HomeSize    *int   `json:"homeSize" validate:"required,gte=0"`
	RoofType    string `json:"roofType" validate:"required"`
}

type CreateCalculationOutput struct {
	*entity.SolarCalculation

	Report *FanOutReport `json:"-"`
}

type CreateConsultationInput struct {
	LeadID        *int64     `json:"leadId"`
	ScheduledDate *time.Time `json:"scheduledDate"`
	Status        *string    `json:"status"`
	Notes         *string    `json:"notes" validate:"omitempty,max=5000"`
}

type CreateConsultationOutput struct {
	*entity.Consultation

	Report *FanOutReport `json:"-"`
}

type CreateProspectInput struct {
	LeadID int64 `json:"leadId" validate:"required,gt=0"`
}

type CreateProspectOutput struct {
	OpenSolarProjectID  int64  `json:"openSolarProjectId"`
	OpenSolarIdentifier string `json:"openSolarIdentifier"`
	LeadID              int64  `json:"leadId"`
}

type ExportLeadInput struct {
	LeadID int64 `json:"leadId" validate:"required,gt=0"`
}

type ExportLeadOutput struct {
	Message string `json:"message"`
}

type CompleteProjectInput struct {
	ProjectID  int64   `json:"-"`
	TotalValue float64 `json:"totalValue" validate:"gte=0"`
}

type CompleteProjectOutput struct {
	Message string          `json:"message"`
	Project *entity.Project `json:"project"`
}

type SolarInsightsInput struct {
	Address string `json:"address" validate:"required"`
}

type BillMatchInput struct {
	Address     string      `json:"address" validate:"required"`
	MonthlyBill json.Number `json:"monthlyBill" validate:"required,money"`
}

// OpenSolarEvent is an inbound design-platform webhook. Only the fields
// that select project updates are typed.
type OpenSolarEvent struct {
	ModelName string `json:"model_name"`
	EventType string `json:"event_type"`
	ModelPK   any    `json:"model_pk"`
}

type LeadWithDetails struct {
	*entity.Lead
	Calculations  []*entity.SolarCalculation `json:"calculations"`
	Consultations []*entity.Consultation     `json:"consultations"`
}

type AdminStats struct {
	TotalLeads       int   `json:"totalLeads"`
	LeadsThisMonth   int   `json:"leadsThisMonth"`
	TotalRevenue     int64 `json:"totalRevenue"`
	ActiveProjects   int   `json:"activeProjects"`
	ConversionRate   int   `json:"conversionRate"`
	RevenueThisMonth int64 `json:"revenueThisMonth"`
}
