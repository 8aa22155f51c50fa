package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/liv8solar/solar-leads/internal/entity"
)

type SolarCalculationRepository struct {
	DB *sql.DB
}

func NewSolarCalculationRepository(db *sql.DB) *SolarCalculationRepository {
	return &SolarCalculationRepository{DB: db}
}

const calculationColumns = `id, lead_id, monthly_bill::TEXT, home_size, roof_type,
	monthly_savings::TEXT, year_one_savings::TEXT, twenty_year_savings::TEXT, system_size, created_at`

func (r *SolarCalculationRepository) Create(ctx context.Context, calc *entity.SolarCalculation) error {
	query := `
		INSERT INTO solar_calculations (lead_id, monthly_bill, home_size, roof_type,
			monthly_savings, year_one_savings, twenty_year_savings, system_size)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	return r.DB.QueryRowContext(ctx, query,
		calc.LeadID,
		calc.MonthlyBill,
		calc.HomeSize,
		calc.RoofType,
		calc.MonthlySavings,
		calc.YearOneSavings,
		calc.TwentyYearSavings,
		calc.SystemSize,
	).Scan(&calc.ID, &calc.CreatedAt)
}

func (r *SolarCalculationRepository) FindByID(ctx context.Context, id int64) (*entity.SolarCalculation, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+calculationColumns+` FROM solar_calculations WHERE id = $1`, id)
	calc, err := scanCalculation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return calc, err
}

func (r *SolarCalculationRepository) List(ctx context.Context) ([]*entity.SolarCalculation, error) {
	return r.query(ctx, `SELECT `+calculationColumns+` FROM solar_calculations ORDER BY id`)
}

func (r *SolarCalculationRepository) ListByLeadID(ctx context.Context, leadID int64) ([]*entity.SolarCalculation, error) {
	return r.query(ctx, `SELECT `+calculationColumns+` FROM solar_calculations WHERE lead_id = $1 ORDER BY id`, leadID)
}

func (r *SolarCalculationRepository) query(ctx context.Context, q string, args ...any) ([]*entity.SolarCalculation, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*entity.SolarCalculation{}
	for rows.Next() {
		calc, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, calc)
	}
	return out, rows.Err()
}

func scanCalculation(s scanner) (*entity.SolarCalculation, error) {
	var c entity.SolarCalculation
	err := s.Scan(
		&c.ID,
		&c.LeadID,
		&c.MonthlyBill,
		&c.HomeSize,
		&c.RoofType,
		&c.MonthlySavings,
		&c.YearOneSavings,
		&c.TwentyYearSavings,
		&c.SystemSize,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
