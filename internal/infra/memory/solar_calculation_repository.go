package memory

import (
	"context"
	"time"

	"github.com/liv8solar/solar-leads/internal/entity"
)

type SolarCalculationRepository struct {
	t *table[entity.SolarCalculation]
}

func NewSolarCalculationRepository() *SolarCalculationRepository {
	return &SolarCalculationRepository{t: newTable(cloneCalculation)}
}

func (r *SolarCalculationRepository) Create(ctx context.Context, calc *entity.SolarCalculation) error {
	r.t.insert(calc, func(c *entity.SolarCalculation, id int64, now time.Time) {
		c.ID = id
		c.CreatedAt = now
	})
	return nil
}

func (r *SolarCalculationRepository) FindByID(ctx context.Context, id int64) (*entity.SolarCalculation, error) {
	calc, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	return calc, nil
}

func (r *SolarCalculationRepository) List(ctx context.Context) ([]*entity.SolarCalculation, error) {
	return r.t.filter(nil), nil
}

func (r *SolarCalculationRepository) ListByLeadID(ctx context.Context, leadID int64) ([]*entity.SolarCalculation, error) {
	return r.t.filter(func(c *entity.SolarCalculation) bool {
		return sameID(c.LeadID, leadID)
	}), nil
}
