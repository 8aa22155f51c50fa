package usecase

import (
	"context"

	"github.com/liv8solar/solar-leads/internal/infra/integration/googlesolar"
	"github.com/liv8solar/solar-leads/internal/infra/logger"
)

const serviceRoofInsights = "googlesolar"

type SolarInsightsUseCase struct {
	Insights RoofInsights
	Logger   *logger.Logger
}

func NewSolarInsightsUseCase(insights RoofInsights, log *logger.Logger) *SolarInsightsUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &SolarInsightsUseCase{Insights: insights, Logger: log}
}

func (uc *SolarInsightsUseCase) Configured() bool {
	return configured(uc.Insights)
}

// ForAddress validates before checking configuration, so a missing
// address is a 400 even when the adapter is off.
func (uc *SolarInsightsUseCase) ForAddress(ctx context.Context, input SolarInsightsInput) (*googlesolar.Summary, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	if !uc.Configured() {
		return nil, ErrNotConfigured
	}

	summary, err := uc.Insights.InsightsForAddress(ctx, input.Address)
	if err != nil {
		uc.Logger.WithContext(ctx).IntegrationError(serviceRoofInsights, "insights for address", err)
		return nil, integrationError(serviceRoofInsights, "get solar insights", err)
	}
	return summary, nil
}

func (uc *SolarInsightsUseCase) ForBill(ctx context.Context, input BillMatchInput) (*googlesolar.Summary, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	bill, err := ParseMonthlyBill(input.MonthlyBill.String())
	if err != nil {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: "Valid monthly bill required",
			Fields:  []ValidationError{{Field: "monthlyBill", Message: msgMoney}},
		}
	}
	if !uc.Configured() {
		return nil, ErrNotConfigured
	}

	target, _ := bill.Float64()
	summary, err := uc.Insights.InsightsForBill(ctx, input.Address, target)
	if err != nil {
		uc.Logger.WithContext(ctx).IntegrationError(serviceRoofInsights, "insights for bill", err)
		return nil, integrationError(serviceRoofInsights, "get solar insights", err)
	}
	return summary, nil
}
