package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/liv8solar/solar-leads/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `id, first_name, last_name, email, phone, address, monthly_bill::TEXT,
	home_size, roof_type, energy_goals, lead_source, status, created_at`

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	lead.ApplyDefaults()

	query := `
		INSERT INTO leads (first_name, last_name, email, phone, address, monthly_bill,
			home_size, roof_type, energy_goals, lead_source, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		lead.FirstName,
		lead.LastName,
		lead.Email,
		lead.Phone,
		lead.Address,
		lead.MonthlyBill,
		lead.HomeSize,
		lead.RoofType,
		lead.EnergyGoals,
		lead.LeadSource,
		lead.Status,
	).Scan(&lead.ID, &lead.CreatedAt)
}

func (r *LeadRepository) FindByID(ctx context.Context, id int64) (*entity.Lead, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id)

	lead, err := scanLead(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

func (r *LeadRepository) List(ctx context.Context) ([]*entity.Lead, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+leadColumns+` FROM leads ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []*entity.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id int64, status string) (*entity.Lead, error) {
	row := r.DB.QueryRowContext(ctx,
		`UPDATE leads SET status = $2 WHERE id = $1 RETURNING `+leadColumns, id, status)

	lead, err := scanLead(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return lead, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLead(s scanner) (*entity.Lead, error) {
	var lead entity.Lead
	err := s.Scan(
		&lead.ID,
		&lead.FirstName,
		&lead.LastName,
		&lead.Email,
		&lead.Phone,
		&lead.Address,
		&lead.MonthlyBill,
		&lead.HomeSize,
		&lead.RoofType,
		&lead.EnergyGoals,
		&lead.LeadSource,
		&lead.Status,
		&lead.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &lead, nil
}
