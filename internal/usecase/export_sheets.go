package usecase

import (
	"context"

	"github.com/liv8solar/solar-leads/internal/entity"
	"github.com/liv8solar/solar-leads/internal/infra/logger"
)

// ExportLeadUseCase pushes one stored lead, with its latest calculation,
// to the spreadsheet webhook on request.
type ExportLeadUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
	CalcRepo entity.SolarCalculationRepositoryInterface
	Sheets   SheetsExporter
	Logger   *logger.Logger
}

func NewExportLeadUseCase(
	leadRepo entity.LeadRepositoryInterface,
	calcRepo entity.SolarCalculationRepositoryInterface,
	sheets SheetsExporter,
	log *logger.Logger,
) *ExportLeadUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ExportLeadUseCase{LeadRepo: leadRepo, CalcRepo: calcRepo, Sheets: sheets, Logger: log}
}

func (uc *ExportLeadUseCase) Execute(ctx context.Context, input ExportLeadInput) (*ExportLeadOutput, error) {
	if !configured(uc.Sheets) {
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

	calcs, err := uc.CalcRepo.ListByLeadID(ctx, lead.ID)
	if err != nil {
		return nil, persistenceError("list calculations", err)
	}
	var latest *entity.SolarCalculation
	if len(calcs) > 0 {
		latest = calcs[len(calcs)-1]
	}

	if err := uc.Sheets.ExportLead(ctx, lead, latest); err != nil {
		uc.Logger.WithContext(ctx).IntegrationError(StepSheets, "export lead", err)
		return nil, integrationError(StepSheets, "export lead", err)
	}
	return &ExportLeadOutput{Message: "Exported successfully"}, nil
}
