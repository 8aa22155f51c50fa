package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSavings(t *testing.T) {
	tests := []struct {
		name       string
		bill       string
		monthly    string
		yearOne    string
		twenty     string
		systemSize string
	}{
		{"typical bill", "150", "128", "1536", "27648", "10.7kW"},
		{"half rounds up", "10", "9", "108", "1944", "0.7kW"},
		{"cents", "199.99", "170", "2040", "36720", "14.3kW"},
		{"zero bill", "0", "0", "0", "0", "0kW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est := CalculateSavings(decimal.RequireFromString(tt.bill))
			assert.Equal(t, tt.monthly, est.MonthlySavings.String())
			assert.Equal(t, tt.yearOne, est.YearOneSavings.String())
			assert.Equal(t, tt.twenty, est.TwentyYearSavings.String())
			assert.Equal(t, tt.systemSize, est.SystemSize())
		})
	}
}

func TestCalculateSavingsAnnualKwh(t *testing.T) {
	est := CalculateSavings(decimal.NewFromInt(150))
	assert.Equal(t, "15000", est.AnnualKwh.String())
}

func TestCalculateSavingsIsDeterministic(t *testing.T) {
	bill := decimal.RequireFromString("237.45")
	a, b := CalculateSavings(bill), CalculateSavings(bill)
	assert.True(t, a.MonthlySavings.Equal(b.MonthlySavings))
	assert.True(t, a.TwentyYearSavings.Equal(b.TwentyYearSavings))
	assert.Equal(t, a.SystemSize(), b.SystemSize())
}

func TestParseMonthlyBill(t *testing.T) {
	d, err := ParseMonthlyBill(" $1,250.50 ")
	require.NoError(t, err)
	assert.Equal(t, "1250.5", d.String())

	d, err = ParseMonthlyBill("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = ParseMonthlyBill("lots")
	assert.Error(t, err)
}

func TestParseMonthlyBillRejectsUnboundedInput(t *testing.T) {
	tests := []struct {
		raw  string
		want error
	}{
		{"1e5", ErrInvalidAmount},
		{"1e2000000", ErrInvalidAmount},
		{"1E3", ErrInvalidAmount},
		{"-20", ErrInvalidAmount},
		{"150.555", ErrInvalidAmount},
		{"0x10", ErrInvalidAmount},
		{"1234567890", ErrInvalidAmount},
		{"100000.01", ErrAmountTooHigh},
		{"$250,000", ErrAmountTooHigh},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, err := ParseMonthlyBill(tt.raw)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	d, err := ParseMonthlyBill("100000")
	require.NoError(t, err)
	assert.True(t, d.Equal(MaxMonthlyBill))
}

func TestParseAmountUsesCeiling(t *testing.T) {
	_, err := ParseAmount("250000", MaxAmount)
	assert.NoError(t, err)

	_, err = ParseAmount("1e9", MaxAmount)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
