package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/liv8solar/solar-leads/internal/entity"
)

type ConsultationRepository struct {
	DB *sql.DB
}

func NewConsultationRepository(db *sql.DB) *ConsultationRepository {
	return &ConsultationRepository{DB: db}
}

const consultationColumns = `id, lead_id, scheduled_date, status, notes, created_at`

func (r *ConsultationRepository) Create(ctx context.Context, c *entity.Consultation) error {
	c.ApplyDefaults()

	query := `
		INSERT INTO consultations (lead_id, scheduled_date, status, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.DB.QueryRowContext(ctx, query, c.LeadID, c.ScheduledDate, c.Status, c.Notes).
		Scan(&c.ID, &c.CreatedAt)
}

func (r *ConsultationRepository) FindByID(ctx context.Context, id int64) (*entity.Consultation, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+consultationColumns+` FROM consultations WHERE id = $1`, id)
	c, err := scanConsultation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return c, err
}

func (r *ConsultationRepository) List(ctx context.Context) ([]*entity.Consultation, error) {
	return r.query(ctx, `SELECT `+consultationColumns+` FROM consultations ORDER BY id`)
}

func (r *ConsultationRepository) ListByLeadID(ctx context.Context, leadID int64) ([]*entity.Consultation, error) {
	return r.query(ctx, `SELECT `+consultationColumns+` FROM consultations WHERE lead_id = $1 ORDER BY id`, leadID)
}

func (r *ConsultationRepository) UpdateStatus(ctx context.Context, id int64, status string) (*entity.Consultation, error) {
	row := r.DB.QueryRowContext(ctx,
		`UPDATE consultations SET status = $2 WHERE id = $1 RETURNING `+consultationColumns, id, status)
	c, err := scanConsultation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return c, err
}

func (r *ConsultationRepository) query(ctx context.Context, q string, args ...any) ([]*entity.Consultation, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*entity.Consultation{}
	for rows.Next() {
		c, err := scanConsultation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanConsultation(s scanner) (*entity.Consultation, error) {
	var c entity.Consultation
	if err := s.Scan(&c.ID, &c.LeadID, &c.ScheduledDate, &c.Status, &c.Notes, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
