package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/liv8solar/solar-leads/internal/entity"
	"github.com/liv8solar/solar-leads/internal/infra/logger"
)

type CompleteProjectUseCase struct {
	ProjectRepo entity.ProjectRepositoryInterface
	LeadRepo    entity.LeadRepositoryInterface
	Referral    ReferralTracker
	Logger      *logger.Logger
	now         func() time.Time
}

func NewCompleteProjectUseCase(
	projectRepo entity.ProjectRepositoryInterface,
	leadRepo entity.LeadRepositoryInterface,
	referral ReferralTracker,
	log *logger.Logger,
) *CompleteProjectUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CompleteProjectUseCase{
		ProjectRepo: projectRepo,
		LeadRepo:    leadRepo,
		Referral:    referral,
		Logger:      log,
		now:         time.Now,
	}
}

// Execute marks the project installed. When the project's lead is known
// and a value is given, the affiliate sale is tracked best-effort.
func (uc *CompleteProjectUseCase) Execute(ctx context.Context, input CompleteProjectInput) (*CompleteProjectOutput, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	status := entity.ProjectStatusCompleted
	progress := 100
	completedAt := uc.now()
	project, err := uc.ProjectRepo.Update(ctx, input.ProjectID, entity.ProjectPatch{
		InstallationStatus:   &status,
		InstallationProgress: &progress,
		ActualCompletionDate: &completedAt,
	})
	if err != nil {
		return nil, persistenceError("complete project", err)
	}
	if project == nil {
		return nil, notFound("project")
	}

	if input.TotalValue > 0 {
		lead := findLinkedLead(ctx, uc.LeadRepo, uc.Logger, project.LeadID)
		if lead != nil && configured(uc.Referral) {
			projectID := strconv.FormatInt(project.ID, 10)
			if err := uc.Referral.TrackProjectSale(ctx, lead.Email, input.TotalValue, projectID); err != nil {
				uc.Logger.WithContext(ctx).IntegrationError(StepReferral, "track sale", err)
			}
		}
	}

	return &CompleteProjectOutput{Message: "Project marked as complete", Project: project}, nil
}
