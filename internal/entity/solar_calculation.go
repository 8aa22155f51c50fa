package entity

import (
	"context"
	"time"
)

// SolarCalculation is immutable once stored. The savings fields are derived
// from MonthlyBill at creation.
type SolarCalculation struct {
	ID                int64     `json:"id"`
	LeadID            *int64    `json:"leadId"`
	MonthlyBill       string    `json:"monthlyBill"`
	HomeSize          int       `json:"homeSize"`
	RoofType          string    `json:"roofType"`
	MonthlySavings    string    `json:"monthlySavings"`
	YearOneSavings    string    `json:"yearOneSavings"`
	TwentyYearSavings string    `json:"twentyYearSavings"`
	SystemSize        string    `json:"systemSize"`
	CreatedAt         time.Time `json:"createdAt"`
}

type SolarCalculationRepositoryInterface interface {
	Create(ctx context.Context, calc *SolarCalculation) error
	FindByID(ctx context.Context, id int64) (*SolarCalculation, error)
	List(ctx context.Context) ([]*SolarCalculation, error)
	ListByLeadID(ctx context.Context, leadID int64) ([]*SolarCalculation, error)
}
