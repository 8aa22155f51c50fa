package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Tables are created idempotently at startup. Ids come from BIGSERIAL
// sequences; lead_id columns are plain values with no foreign key.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS leads (
		id BIGSERIAL PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		address TEXT,
		monthly_bill NUMERIC(12,2),
		home_size INTEGER,
		roof_type TEXT,
		energy_goals TEXT,
		lead_source TEXT NOT NULL DEFAULT 'website',
		status TEXT NOT NULL DEFAULT 'new',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS solar_calculations (
		id BIGSERIAL PRIMARY KEY,
		lead_id BIGINT,
		monthly_bill NUMERIC(12,2) NOT NULL,
		home_size INTEGER NOT NULL,
		roof_type TEXT NOT NULL,
		monthly_savings NUMERIC(12,2) NOT NULL,
		year_one_savings NUMERIC(12,2) NOT NULL,
		twenty_year_savings NUMERIC(14,2) NOT NULL,
		system_size TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_solar_calculations_lead ON solar_calculations (lead_id)`,
	`CREATE TABLE IF NOT EXISTS consultations (
		id BIGSERIAL PRIMARY KEY,
		lead_id BIGINT,
		scheduled_date TIMESTAMPTZ,
		status TEXT NOT NULL DEFAULT 'scheduled',
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_consultations_lead ON consultations (lead_id)`,
}

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
