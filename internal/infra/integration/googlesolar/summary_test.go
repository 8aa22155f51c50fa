package googlesolar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analysis(bill string, configIndex int) FinancialAnalysis {
	return FinancialAnalysis{
		MonthlyBill:      &Money{CurrencyCode: "USD", Units: bill},
		PanelConfigIndex: configIndex,
	}
}

func TestClosestAnalysisPicksNearestBill(t *testing.T) {
	analyses := []FinancialAnalysis{analysis("80", 0), analysis("120", 1), analysis("160", 2)}

	got := ClosestAnalysis(analyses, 130)
	require.NotNil(t, got)
	assert.Equal(t, "120", got.MonthlyBill.Units)
}

func TestClosestAnalysisFirstWinsOnTie(t *testing.T) {
	analyses := []FinancialAnalysis{analysis("100", 0), analysis("140", 1)}

	got := ClosestAnalysis(analyses, 120)
	require.NotNil(t, got)
	assert.Equal(t, "100", got.MonthlyBill.Units)
}

func TestClosestAnalysisEmpty(t *testing.T) {
	assert.Nil(t, ClosestAnalysis(nil, 100))
}

func building() *BuildingInsights {
	return &BuildingInsights{
		ImageryQuality: "HIGH",
		SolarPotential: SolarPotential{
			MaxArrayPanelsCount:     40,
			MaxArrayAreaMeters2:     100,
			MaxSunshineHoursPerYear: 1711.6,
			PanelCapacityWatts:      400,
			RoofSegmentStats:        make([]RoofSegmentStats, 3),
			SolarPanelConfigs: []SolarPanelConfig{
				{PanelsCount: 10, YearlyEnergyDcKwh: 5000.4},
				{PanelsCount: 20, YearlyEnergyDcKwh: 10000.6},
				{PanelsCount: 27, YearlyEnergyDcKwh: 13500.5},
			},
			FinancialAnalyses: []FinancialAnalysis{
				analysis("80", 0),
				{
					MonthlyBill:      &Money{Units: "120"},
					PanelConfigIndex: 1,
					DefaultBill:      true,
					FinancialDetails: &FinancialDetails{
						FederalIncentive:   &Money{Units: "7000"},
						NetMeteringAllowed: true,
						SolarPercentage:    92.5,
					},
					CashPurchaseSavings: &CashPurchaseSavings{
						UpfrontCost:  &Money{Units: "22000"},
						PaybackYears: 8.5,
						Savings:      &Savings{SavingsYear1: &Money{Units: "1500"}},
					},
				},
				analysis("160", 7),
			},
		},
	}
}

func TestSummarizeUsesLargestConfigAndDefaultAnalysis(t *testing.T) {
	geo := GeocodeResult{Lat: 33.5, Lng: -112.25, FormattedAddress: "1 Main St"}

	s := Summarize(geo, building())

	assert.Equal(t, "1 Main St", s.Address)
	assert.Equal(t, int64(1076), s.MaxArrayAreaSqFt)
	assert.Equal(t, int64(1712), s.MaxSunshineHoursPerYear)
	assert.Equal(t, 3, s.RoofSegments)
	assert.Equal(t, 10.8, s.RecommendedSystemSizeKw)
	assert.Equal(t, int64(13501), s.YearlyEnergyProductionKwh)
	require.NotNil(t, s.FinancialAnalysis)
	assert.Equal(t, int64(120), s.FinancialAnalysis.MonthlyBillAmount)
	assert.Equal(t, int64(7000), s.FinancialAnalysis.FederalIncentive)
	require.NotNil(t, s.FinancialAnalysis.CashPurchase)
	assert.Equal(t, int64(22000), s.FinancialAnalysis.CashPurchase.UpfrontCost)
	assert.Equal(t, int64(1500), s.FinancialAnalysis.CashPurchase.SavingsYear1)
	assert.Nil(t, s.FinancialAnalysis.Leasing)
	assert.Equal(t, "https://sunroof.withgoogle.com/building/33.5/-112.25", s.SunroofURL)
}

func TestMatchBillUsesAnalysisConfigWithFallback(t *testing.T) {
	geo := GeocodeResult{Lat: 1, Lng: 2}

	s := MatchBill(geo, building(), 115)
	assert.Equal(t, int64(120), s.FinancialAnalysis.MonthlyBillAmount)
	assert.Equal(t, 8.0, s.RecommendedSystemSizeKw)

	// panelConfigIndex 7 is out of range, so the last config is used.
	s = MatchBill(geo, building(), 170)
	assert.Equal(t, int64(160), s.FinancialAnalysis.MonthlyBillAmount)
	assert.Equal(t, 10.8, s.RecommendedSystemSizeKw)
}

func TestSummarizeDefaultsPanelWattage(t *testing.T) {
	b := &BuildingInsights{}
	s := Summarize(GeocodeResult{}, b)
	assert.Equal(t, float64(400), s.PanelCapacityWatts)
	assert.Nil(t, s.FinancialAnalysis)
	assert.Zero(t, s.RecommendedSystemSizeKw)
}

func TestMoneyUnits(t *testing.T) {
	assert.Equal(t, int64(0), MoneyUnits(nil))
	assert.Equal(t, int64(42), MoneyUnits(&Money{Units: "42"}))
	assert.Equal(t, int64(0), MoneyUnits(&Money{Units: "abc"}))
}
