package usecase

import (
	"context"

	"github.com/liv8solar/solar-leads/internal/entity"
	"github.com/liv8solar/solar-leads/internal/infra/logger"
)

// CreateProspectUseCase creates a design-platform project for an existing
// lead on request. Unlike the intake fan-out, failures are returned.
type CreateProspectUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
	Platform DesignPlatform
	Logger   *logger.Logger
}

func NewCreateProspectUseCase(leadRepo entity.LeadRepositoryInterface, platform DesignPlatform, log *logger.Logger) *CreateProspectUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CreateProspectUseCase{LeadRepo: leadRepo, Platform: platform, Logger: log}
}

func (uc *CreateProspectUseCase) Execute(ctx context.Context, input CreateProspectInput) (*CreateProspectOutput, error) {
	if !configured(uc.Platform) {
		return nil, ErrNotConfigured
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	lead, err := uc.LeadRepo.FindByID(ctx, input.LeadID)
	if err != nil {
		return nil, persistenceError("find lead", err)
	}
	if lead == nil {
		return nil, notFound("lead")
	}

	project, err := uc.Platform.CreateProspect(ctx, prospectFromLead(lead))
	if err != nil {
		uc.Logger.WithContext(ctx).IntegrationError(StepOpenSolar, "create prospect", err)
		return nil, integrationError(StepOpenSolar, "create prospect", err)
	}

	return &CreateProspectOutput{
		OpenSolarProjectID:  project.ID,
		OpenSolarIdentifier: project.Identifier,
		LeadID:              lead.ID,
	}, nil
}
