package usecase

import (
	"context"

	"github.com/liv8solar/solar-leads/internal/entity"
	"github.com/liv8solar/solar-leads/internal/infra/logger"
)

type CreateCalculationUseCase struct {
	Repo       entity.SolarCalculationRepositoryInterface
	LeadRepo   entity.LeadRepositoryInterface
	Dispatcher *Dispatcher
	Logger     *logger.Logger
}

func NewCreateCalculationUseCase(
	repo entity.SolarCalculationRepositoryInterface,
	leadRepo entity.LeadRepositoryInterface,
	dispatcher *Dispatcher,
	log *logger.Logger,
) *CreateCalculationUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CreateCalculationUseCase{
		Repo:       repo,
		LeadRepo:   leadRepo,
		Dispatcher: dispatcher,
		Logger:     log,
	}
}

func (uc *CreateCalculationUseCase) Execute(ctx context.Context, input CreateCalculationInput) (*CreateCalculationOutput, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	bill, err := ParseMonthlyBill(input.MonthlyBill)
	if err != nil {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: "invalid fields: monthlyBill",
			Fields:  []ValidationError{{Field: "monthlyBill", Message: msgMoney}},
		}
	}
	estimate := CalculateSavings(bill)

	calc := &entity.SolarCalculation{
		LeadID:            input.LeadID,
		MonthlyBill:       bill.String(),
		HomeSize:          *input.HomeSize,
		RoofType:          input.RoofType,
		MonthlySavings:    estimate.MonthlySavings.String(),
		YearOneSavings:    estimate.YearOneSavings.String(),
		TwentyYearSavings: estimate.TwentyYearSavings.String(),
		SystemSize:        estimate.SystemSize(),
	}
	if err := uc.Repo.Create(ctx, calc); err != nil {
		uc.Logger.WithContext(ctx).DatabaseError("create solar calculation", err)
		return nil, persistenceError("create solar calculation", err)
	}
	uc.Logger.WithContext(ctx).Info("solar calculation created",
		"calculation_id", calc.ID, "monthly_bill", calc.MonthlyBill,
		"monthly_savings", calc.MonthlySavings, "system_size", calc.SystemSize)

	out := &CreateCalculationOutput{SolarCalculation: calc}
	if uc.Dispatcher != nil {
		out.Report = uc.Dispatcher.Dispatch(ctx, entity.NotificationJob{
			Kind:        entity.KindSolarCalculation,
			Lead:        findLinkedLead(ctx, uc.LeadRepo, uc.Logger, calc.LeadID),
			Calculation: calc,
		})
	}
	return out, nil
}

// findLinkedLead resolves a weak lead reference. A missing lead or a
// lookup error yields nil, since the link is advisory.
func findLinkedLead(ctx context.Context, repo entity.LeadRepositoryInterface, log *logger.Logger, leadID *int64) *entity.Lead {
	if leadID == nil || repo == nil {
		return nil
	}
	lead, err := repo.FindByID(ctx, *leadID)
	if err != nil {
		log.WithContext(ctx).DatabaseError("find linked lead", err)
		return nil
	}
	return lead
}
