package usecase

import (
	"context"

	"github.com/liv8solar/solar-leads/internal/infra/integration/opensolar"
	"github.com/liv8solar/solar-leads/internal/infra/logger"
)

// OpenSolarProjects exposes read and update calls on the design platform.
// Every method returns ErrNotConfigured when it has no credentials and an
// integration TechnicalError when the platform call fails.
type OpenSolarProjects struct {
	Platform DesignPlatform
	Logger   *logger.Logger
}

func NewOpenSolarProjects(platform DesignPlatform, log *logger.Logger) *OpenSolarProjects {
	if log == nil {
		log = logger.Nop()
	}
	return &OpenSolarProjects{Platform: platform, Logger: log}
}

func (uc *OpenSolarProjects) Configured() bool {
	return configured(uc.Platform)
}

func (uc *OpenSolarProjects) Get(ctx context.Context, id int64) (*opensolar.Project, error) {
	return callPlatform(ctx, uc, "get project", func() (*opensolar.Project, error) {
		return uc.Platform.GetProject(ctx, id)
	})
}

func (uc *OpenSolarProjects) Update(ctx context.Context, id int64, updates opensolar.ProjectCreate) (*opensolar.Project, error) {
	return callPlatform(ctx, uc, "update project", func() (*opensolar.Project, error) {
		return uc.Platform.UpdateProject(ctx, id, updates)
	})
}

func (uc *OpenSolarProjects) List(ctx context.Context) ([]opensolar.Project, error) {
	return callPlatform(ctx, uc, "list projects", func() ([]opensolar.Project, error) {
		return uc.Platform.ListProjects(ctx)
	})
}

func (uc *OpenSolarProjects) Systems(ctx context.Context, id int64) ([]opensolar.SystemDetails, error) {
	return callPlatform(ctx, uc, "get system details", func() ([]opensolar.SystemDetails, error) {
		return uc.Platform.GetSystemDetails(ctx, id)
	})
}

func (uc *OpenSolarProjects) Summary(ctx context.Context, id int64) (*opensolar.ProjectOverview, error) {
	return callPlatform(ctx, uc, "get project summary", func() (*opensolar.ProjectOverview, error) {
		return uc.Platform.ProjectSummary(ctx, id)
	})
}

type CreateWebhookInput struct {
	Endpoint      string   `json:"endpoint" validate:"required,url"`
	TriggerFields []string `json:"triggerFields"`
	PayloadFields []string `json:"payloadFields"`
}

func (uc *OpenSolarProjects) CreateWebhook(ctx context.Context, input CreateWebhookInput) (*opensolar.Webhook, error) {
	if !uc.Configured() {
		return nil, ErrNotConfigured
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	return callPlatform(ctx, uc, "create webhook", func() (*opensolar.Webhook, error) {
		return uc.Platform.CreateWebhook(ctx, input.Endpoint, input.TriggerFields, input.PayloadFields)
	})
}

func callPlatform[T any](ctx context.Context, uc *OpenSolarProjects, op string, fn func() (T, error)) (T, error) {
	var zero T
	if !uc.Configured() {
		return zero, ErrNotConfigured
	}
	v, err := fn()
	if err != nil {
		uc.Logger.WithContext(ctx).IntegrationError(StepOpenSolar, op, err)
		return zero, integrationError(StepOpenSolar, op, err)
	}
	return v, nil
}
