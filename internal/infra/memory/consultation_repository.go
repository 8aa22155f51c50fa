package memory

import (
	"context"
	"time"

	"github.com/liv8solar/solar-leads/internal/entity"
)

type ConsultationRepository struct {
	t *table[entity.Consultation]
}

func NewConsultationRepository() *ConsultationRepository {
	return &ConsultationRepository{t: newTable(cloneConsultation)}
}

func (r *ConsultationRepository) Create(ctx context.Context, c *entity.Consultation) error {
	r.t.insert(c, func(row *entity.Consultation, id int64, now time.Time) {
		row.ID = id
		row.CreatedAt = now
		row.ApplyDefaults()
	})
	return nil
}

func (r *ConsultationRepository) FindByID(ctx context.Context, id int64) (*entity.Consultation, error) {
	c, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *ConsultationRepository) List(ctx context.Context) ([]*entity.Consultation, error) {
	return r.t.filter(nil), nil
}

func (r *ConsultationRepository) ListByLeadID(ctx context.Context, leadID int64) ([]*entity.Consultation, error) {
	return r.t.filter(func(c *entity.Consultation) bool {
		return sameID(c.LeadID, leadID)
	}), nil
}

func (r *ConsultationRepository) UpdateStatus(ctx context.Context, id int64, status string) (*entity.Consultation, error) {
	c, ok := r.t.update(id, func(row *entity.Consultation, _ time.Time) {
		row.Status = status
	})
	if !ok {
		return nil, nil
	}
	return c, nil
}
