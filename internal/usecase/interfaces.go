package usecase

import (
	"context"

	"github.com/liv8solar/solar-leads/internal/entity"
	"github.com/liv8solar/solar-leads/internal/infra/integration/googlesolar"
	"github.com/liv8solar/solar-leads/internal/infra/integration/opensolar"
	"github.com/liv8solar/solar-leads/internal/infra/integration/pushlap"
)

// Each port reports whether its adapter has credentials. Fan-out steps on
// an unconfigured port are skipped, and manual endpoints return
// ErrNotConfigured.

type EmailNotifier interface {
	Configured() bool
	NotifyLead(ctx context.Context, lead *entity.Lead) error
	NotifyCalculation(ctx context.Context, calc *entity.SolarCalculation) error
	NotifyConsultation(ctx context.Context, consultation *entity.Consultation, lead *entity.Lead) error
}

type ReferralTracker interface {
	Configured() bool
	TrackReferral(ctx context.Context, in pushlap.ReferralInput) (*pushlap.Result, error)
	TrackProjectSale(ctx context.Context, leadEmail string, projectValue float64, projectID string) error
}

type SheetsExporter interface {
	Configured() bool
	ExportLead(ctx context.Context, lead *entity.Lead, calc *entity.SolarCalculation) error
}

type AutomationWebhook interface {
	Configured() bool
	SendLead(ctx context.Context, formType string, lead *entity.Lead, calc *entity.SolarCalculation) error
	SendProjectUpdate(ctx context.Context, openSolarProjectID string) error
}

type RoofInsights interface {
	Configured() bool
	InsightsForAddress(ctx context.Context, address string) (*googlesolar.Summary, error)
	InsightsForBill(ctx context.Context, address string, monthlyBill float64) (*googlesolar.Summary, error)
}

// DesignPlatform is the solar-design CRM where prospects become projects.
type DesignPlatform interface {
	Configured() bool
	CreateProspect(ctx context.Context, in opensolar.ProspectInput) (*opensolar.Project, error)
	GetProject(ctx context.Context, id int64) (*opensolar.Project, error)
	UpdateProject(ctx context.Context, id int64, updates opensolar.ProjectCreate) (*opensolar.Project, error)
	ListProjects(ctx context.Context) ([]opensolar.Project, error)
	GetSystemDetails(ctx context.Context, projectID int64) ([]opensolar.SystemDetails, error)
	ProjectSummary(ctx context.Context, projectID int64) (*opensolar.ProjectOverview, error)
	CreateWebhook(ctx context.Context, endpoint string, triggerFields, payloadFields []string) (*opensolar.Webhook, error)
}

type NotificationPublisher interface {
	PublishNotification(ctx context.Context, job entity.NotificationJob) error
}
