package usecase

import (
	"context"
	"time"

	"github.com/liv8solar/solar-leads/internal/entity"
)

const revenuePerLead = 25000

// LeadQueries serves the read side of leads: lookups, the admin listing
// and the dashboard figures, plus lead and consultation status changes.
type LeadQueries struct {
	Leads         entity.LeadRepositoryInterface
	Calculations  entity.SolarCalculationRepositoryInterface
	Consultations entity.ConsultationRepositoryInterface
	now           func() time.Time
}

func NewLeadQueries(
	leads entity.LeadRepositoryInterface,
	calcs entity.SolarCalculationRepositoryInterface,
	consultations entity.ConsultationRepositoryInterface,
) *LeadQueries {
	return &LeadQueries{Leads: leads, Calculations: calcs, Consultations: consultations, now: time.Now}
}

func (q *LeadQueries) Get(ctx context.Context, id int64) (*entity.Lead, error) {
	lead, err := q.Leads.FindByID(ctx, id)
	if err != nil {
		return nil, persistenceError("fetch lead", err)
	}
	if lead == nil {
		return nil, notFound("lead")
	}
	return lead, nil
}

// ListWithDetails returns every lead with its calculations and
// consultations, in insertion order.
func (q *LeadQueries) ListWithDetails(ctx context.Context) ([]LeadWithDetails, error) {
	leads, err := q.Leads.List(ctx)
	if err != nil {
		return nil, persistenceError("fetch leads", err)
	}

	out := make([]LeadWithDetails, 0, len(leads))
	for _, lead := range leads {
		calcs, err := q.Calculations.ListByLeadID(ctx, lead.ID)
		if err != nil {
			return nil, persistenceError("fetch calculations", err)
		}
		consultations, err := q.Consultations.ListByLeadID(ctx, lead.ID)
		if err != nil {
			return nil, persistenceError("fetch consultations", err)
		}
		if calcs == nil {
			calcs = []*entity.SolarCalculation{}
		}
		if consultations == nil {
			consultations = []*entity.Consultation{}
		}
		out = append(out, LeadWithDetails{Lead: lead, Calculations: calcs, Consultations: consultations})
	}
	return out, nil
}

// Stats derives the dashboard figures from the lead count. Revenue and
// projects are placeholder ratios until real project data feeds them.
func (q *LeadQueries) Stats(ctx context.Context) (*AdminStats, error) {
	leads, err := q.Leads.List(ctx)
	if err != nil {
		return nil, persistenceError("fetch leads", err)
	}

	now := q.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	thisMonth := 0
	for _, l := range leads {
		if !l.CreatedAt.Before(monthStart) {
			thisMonth++
		}
	}

	total := len(leads)
	stats := &AdminStats{
		TotalLeads:       total,
		LeadsThisMonth:   thisMonth,
		TotalRevenue:     int64(total) * revenuePerLead,
		ActiveProjects:   total * 3 / 10,
		RevenueThisMonth: int64(thisMonth) * revenuePerLead,
	}
	if total > 0 {
		stats.ConversionRate = 30
	}
	return stats, nil
}

type UpdateStatusInput struct {
	Status string `json:"status" validate:"required,max=50"`
}

func (q *LeadQueries) UpdateLeadStatus(ctx context.Context, id int64, input UpdateStatusInput) (*entity.Lead, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	lead, err := q.Leads.UpdateStatus(ctx, id, input.Status)
	if err != nil {
		return nil, persistenceError("update lead", err)
	}
	if lead == nil {
		return nil, notFound("lead")
	}
	return lead, nil
}

func (q *LeadQueries) UpdateConsultationStatus(ctx context.Context, id int64, input UpdateStatusInput) (*entity.Consultation, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	c, err := q.Consultations.UpdateStatus(ctx, id, input.Status)
	if err != nil {
		return nil, persistenceError("update consultation", err)
	}
	if c == nil {
		return nil, notFound("consultation")
	}
	return c, nil
}
