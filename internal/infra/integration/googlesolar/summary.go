package googlesolar

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	sqFtPerM2           = 10.7639
	defaultPanelWattage = 400
)

// MoneyUnits reads the whole-currency part of m, or 0.
func MoneyUnits(m *Money) int64 {
	if m == nil || m.Units == "" {
		return 0
	}
	d, err := decimal.NewFromString(m.Units)
	if err != nil {
		return 0
	}
	return d.IntPart()
}

// roundHalfUp matches the rounding used for every derived figure.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func roundTenth(v float64) float64 {
	return roundHalfUp(v*10) / 10
}

// Summarize reduces insights for the address geo resolved to. The
// recommended size uses the largest panel configuration and the financial
// view uses the analysis flagged as default, or the first one.
func Summarize(geo GeocodeResult, b *BuildingInsights) Summary {
	sp := b.SolarPotential

	var config *SolarPanelConfig
	if n := len(sp.SolarPanelConfigs); n > 0 {
		config = &sp.SolarPanelConfigs[n-1]
	}

	var analysis *FinancialAnalysis
	for i := range sp.FinancialAnalyses {
		if sp.FinancialAnalyses[i].DefaultBill {
			analysis = &sp.FinancialAnalyses[i]
			break
		}
	}
	if analysis == nil && len(sp.FinancialAnalyses) > 0 {
		analysis = &sp.FinancialAnalyses[0]
	}

	return buildSummary(geo, b, config, analysis)
}

// MatchBill picks the financial analysis whose monthly bill is closest to
// monthlyBill (first one wins on a tie) and sizes the system from the panel
// configuration that analysis points at.
func MatchBill(geo GeocodeResult, b *BuildingInsights, monthlyBill float64) Summary {
	sp := b.SolarPotential

	analysis := ClosestAnalysis(sp.FinancialAnalyses, monthlyBill)

	var config *SolarPanelConfig
	n := len(sp.SolarPanelConfigs)
	switch {
	case n == 0:
	case analysis != nil && analysis.PanelConfigIndex >= 0 && analysis.PanelConfigIndex < n:
		config = &sp.SolarPanelConfigs[analysis.PanelConfigIndex]
	default:
		config = &sp.SolarPanelConfigs[n-1]
	}

	return buildSummary(geo, b, config, analysis)
}

func ClosestAnalysis(analyses []FinancialAnalysis, monthlyBill float64) *FinancialAnalysis {
	var best *FinancialAnalysis
	closest := math.Inf(1)
	for i := range analyses {
		diff := math.Abs(float64(MoneyUnits(analyses[i].MonthlyBill)) - monthlyBill)
		if diff < closest {
			closest = diff
			best = &analyses[i]
		}
	}
	return best
}

func buildSummary(geo GeocodeResult, b *BuildingInsights, config *SolarPanelConfig, analysis *FinancialAnalysis) Summary {
	sp := b.SolarPotential

	watts := sp.PanelCapacityWatts
	if watts == 0 {
		watts = defaultPanelWattage
	}

	s := Summary{
		Address:                    geo.FormattedAddress,
		Latitude:                   geo.Lat,
		Longitude:                  geo.Lng,
		ImageryQuality:             b.ImageryQuality,
		MaxPanelCount:              sp.MaxArrayPanelsCount,
		MaxArrayAreaSqFt:           int64(roundHalfUp(sp.MaxArrayAreaMeters2 * sqFtPerM2)),
		MaxSunshineHoursPerYear:    int64(roundHalfUp(sp.MaxSunshineHoursPerYear)),
		PanelCapacityWatts:         watts,
		CarbonOffsetFactorKgPerMwh: sp.CarbonOffsetFactorKgPerMwh,
		RoofSegments:               len(sp.RoofSegmentStats),
		FinancialAnalysis:          summarizeFinancials(analysis),
		SunroofURL:                 SunroofURL(geo.Lat, geo.Lng),
	}
	if config != nil {
		s.RecommendedSystemSizeKw = roundTenth(float64(config.PanelsCount) * watts / 1000)
		s.YearlyEnergyProductionKwh = int64(roundHalfUp(config.YearlyEnergyDcKwh))
	}
	return s
}

func summarizeFinancials(fa *FinancialAnalysis) *FinancialSummary {
	if fa == nil {
		return nil
	}

	out := &FinancialSummary{MonthlyBillAmount: MoneyUnits(fa.MonthlyBill)}
	if d := fa.FinancialDetails; d != nil {
		out.FederalIncentive = MoneyUnits(d.FederalIncentive)
		out.StateIncentive = MoneyUnits(d.StateIncentive)
		out.SolarPercentage = d.SolarPercentage
		out.NetMeteringAllowed = d.NetMeteringAllowed
	}

	if c := fa.CashPurchaseSavings; c != nil {
		y1, y20, life := savingsUnits(c.Savings)
		out.CashPurchase = &CashPurchase{
			UpfrontCost:     MoneyUnits(c.UpfrontCost),
			PaybackYears:    c.PaybackYears,
			SavingsYear1:    y1,
			SavingsYear20:   y20,
			SavingsLifetime: life,
		}
	}
	if f := fa.FinancedPurchaseSavings; f != nil {
		y1, y20, life := savingsUnits(f.Savings)
		out.Financing = &Financing{
			AnnualLoanPayment: MoneyUnits(f.AnnualLoanPayment),
			LoanInterestRate:  f.LoanInterestRate,
			SavingsYear1:      y1,
			SavingsYear20:     y20,
			SavingsLifetime:   life,
		}
	}
	if l := fa.LeasingSavings; l != nil {
		y1, y20, life := savingsUnits(l.Savings)
		out.Leasing = &Leasing{
			AnnualLeasingCost: MoneyUnits(l.AnnualLeasingCost),
			SavingsYear1:      y1,
			SavingsYear20:     y20,
			SavingsLifetime:   life,
		}
	}
	return out
}

func savingsUnits(s *Savings) (int64, int64, int64) {
	if s == nil {
		return 0, 0, 0
	}
	return MoneyUnits(s.SavingsYear1), MoneyUnits(s.SavingsYear20), MoneyUnits(s.SavingsLifetime)
}

func SunroofURL(lat, lng float64) string {
	return fmt.Sprintf("https://sunroof.withgoogle.com/building/%s/%s",
		strconv.FormatFloat(lat, 'f', -1, 64), strconv.FormatFloat(lng, 'f', -1, 64))
}
