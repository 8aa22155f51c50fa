package memory

import (
	"context"
	"time"

	"github.com/liv8solar/solar-leads/internal/entity"
)

type LeadRepository struct {
	t *table[entity.Lead]
}

func NewLeadRepository() *LeadRepository {
	return &LeadRepository{t: newTable(cloneLead)}
}

// Create stores lead and writes the assigned id, defaults and creation time
// back into it.
func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	r.t.insert(lead, func(l *entity.Lead, id int64, now time.Time) {
		l.ID = id
		l.CreatedAt = now
		l.ApplyDefaults()
	})
	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id int64) (*entity.Lead, error) {
	lead, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	return lead, nil
}

func (r *LeadRepository) List(ctx context.Context) ([]*entity.Lead, error) {
	return r.t.filter(nil), nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id int64, status string) (*entity.Lead, error) {
	lead, ok := r.t.update(id, func(l *entity.Lead, _ time.Time) {
		l.Status = status
	})
	if !ok {
		return nil, nil
	}
	return lead, nil
}

func (r *LeadRepository) Count() int {
	return r.t.count()
}
