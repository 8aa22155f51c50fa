package usecase

import (
	"context"

	"github.com/liv8solar/solar-leads/internal/entity"
	"github.com/liv8solar/solar-leads/internal/infra/logger"
)

type CreateConsultationUseCase struct {
	Repo       entity.ConsultationRepositoryInterface
	LeadRepo   entity.LeadRepositoryInterface
	Dispatcher *Dispatcher
	Logger     *logger.Logger
}

func NewCreateConsultationUseCase(
	repo entity.ConsultationRepositoryInterface,
	leadRepo entity.LeadRepositoryInterface,
	dispatcher *Dispatcher,
	log *logger.Logger,
) *CreateConsultationUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CreateConsultationUseCase{
		Repo:       repo,
		LeadRepo:   leadRepo,
		Dispatcher: dispatcher,
		Logger:     log,
	}
}

// Execute stores the consultation whether or not its lead exists. The
// notifications are skipped when the lead cannot be found.
func (uc *CreateConsultationUseCase) Execute(ctx context.Context, input CreateConsultationInput) (*CreateConsultationOutput, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	consultation := &entity.Consultation{
		LeadID:        input.LeadID,
		ScheduledDate: input.ScheduledDate,
		Notes:         input.Notes,
	}
	if input.Status != nil {
		consultation.Status = *input.Status
	}
	consultation.ApplyDefaults()

	if err := uc.Repo.Create(ctx, consultation); err != nil {
		uc.Logger.WithContext(ctx).DatabaseError("create consultation", err)
		return nil, persistenceError("create consultation", err)
	}
	uc.Logger.WithContext(ctx).Info("consultation scheduled",
		"consultation_id", consultation.ID, "status", consultation.Status)

	out := &CreateConsultationOutput{Consultation: consultation}
	if uc.Dispatcher != nil {
		out.Report = uc.Dispatcher.Dispatch(ctx, entity.NotificationJob{
			Kind:         entity.KindConsultationScheduled,
			Lead:         findLinkedLead(ctx, uc.LeadRepo, uc.Logger, consultation.LeadID),
			Consultation: consultation,
		})
	}
	return out, nil
}
