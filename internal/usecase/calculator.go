package usecase

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	savingsRate     = decimal.RequireFromString("0.85")
	monthsPerYear   = decimal.NewFromInt(12)
	projectionYears = decimal.NewFromInt(18) // business multiplier, not a 20-year sum
	pricePerKwh     = decimal.RequireFromString("0.12")
	kwhPerKwPerYear = decimal.NewFromInt(1400)
	ten             = decimal.NewFromInt(10)

	// MaxMonthlyBill bounds what ParseMonthlyBill accepts.
	MaxMonthlyBill = decimal.NewFromInt(100000)
	// MaxAmount bounds any other money field, e.g. a project value.
	MaxAmount = decimal.NewFromInt(999999999)
)

var (
	ErrInvalidAmount = errors.New("amount must be plain digits with at most 2 decimals")
	ErrAmountTooHigh = errors.New("amount exceeds the accepted maximum")

	plainAmount = regexp.MustCompile(`^\d{1,9}(\.\d{1,2})?$`)
)

type SavingsEstimate struct {
	MonthlySavings    decimal.Decimal
	YearOneSavings    decimal.Decimal
	TwentyYearSavings decimal.Decimal
	AnnualKwh         decimal.Decimal
	SystemSizeKw      decimal.Decimal
}

// SystemSize formats the size as "<kw>kW", e.g. "10.7kW" or "0kW".
func (e SavingsEstimate) SystemSize() string {
	return e.SystemSizeKw.String() + "kW"
}

// CalculateSavings is pure. Rounding is half-up, which decimal.Round gives
// for the non-negative values seen here. A non-positive bill yields zeros.
func CalculateSavings(monthlyBill decimal.Decimal) SavingsEstimate {
	if !monthlyBill.IsPositive() {
		return SavingsEstimate{}
	}

	monthly := monthlyBill.Mul(savingsRate).Round(0)
	yearOne := monthly.Mul(monthsPerYear)
	twenty := yearOne.Mul(projectionYears)

	annualKwh := monthlyBill.Mul(monthsPerYear).Div(pricePerKwh)
	systemKw := annualKwh.Div(kwhPerKwPerYear).Mul(ten).Round(0).Div(ten)

	return SavingsEstimate{
		MonthlySavings:    monthly,
		YearOneSavings:    yearOne,
		TwentyYearSavings: twenty,
		AnnualKwh:         annualKwh,
		SystemSizeKw:      systemKw,
	}
}

// ParseMonthlyBill accepts "150", "150.00" or "$1,250.50". Empty input is
// a zero bill. Exponents, signs and more than 2 decimals are rejected, as
// is anything above MaxMonthlyBill.
func ParseMonthlyBill(raw string) (decimal.Decimal, error) {
	return ParseAmount(raw, MaxMonthlyBill)
}

// ParseAmount is ParseMonthlyBill with a caller-chosen ceiling.
func ParseAmount(raw string, ceiling decimal.Decimal) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero, nil
	}
	if !plainAmount.MatchString(s) {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if d.GreaterThan(ceiling) {
		return decimal.Zero, ErrAmountTooHigh
	}
	return d, nil
}
