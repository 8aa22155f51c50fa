package opensolar

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
)

const (
	systemImageWidth  = 800
	systemImageHeight = 600
)

// ProjectSummary fetches the project and its systems concurrently and
// totals the systems for the client portal.
func (c *Client) ProjectSummary(ctx context.Context, projectID int64) (*ProjectOverview, error) {
	var (
		project *Project
		systems []SystemDetails
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := c.GetProject(gctx, projectID)
		project = p
		return err
	})
	g.Go(func() error {
		s, err := c.GetSystemDetails(gctx, projectID)
		systems = s
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for i := range systems {
		if systems[i].UUID != "" {
			systems[i].ImageURL = c.SystemImageURL(projectID, systems[i].UUID, systemImageWidth, systemImageHeight)
		}
	}

	return &ProjectOverview{
		Project: project,
		Systems: systems,
		Summary: Summarize(project, systems),
	}, nil
}

// Summarize totals systems. Manufacturer lists keep first-seen order.
func Summarize(project *Project, systems []SystemDetails) ProjectSummary {
	var (
		capacity, battery, output, price float64
		panels                           int
	)
	panelMakers := newOrderedSet()
	inverterMakers := newOrderedSet()
	batteryMakers := newOrderedSet()

	for _, s := range systems {
		capacity += s.KwStc
		panels += s.ModuleQuantity
		battery += s.BatteryTotalKwh
		output += s.OutputAnnualKwh
		price += s.PriceIncludingTax

		for _, m := range s.Modules {
			panelMakers.add(m.ManufacturerName)
		}
		for _, inv := range s.Inverters {
			inverterMakers.add(inv.ManufacturerName)
		}
		for _, b := range s.Batteries {
			batteryMakers.add(b.ManufacturerName)
		}
	}

	summary := ProjectSummary{
		SystemCount:           len(systems),
		TotalCapacityKw:       math.Floor(capacity*10+0.5) / 10,
		TotalPanels:           panels,
		TotalBatteryKwh:       math.Floor(battery*10+0.5) / 10,
		EstimatedAnnualOutput: int64(math.Floor(output + 0.5)),
		EstimatedPrice:        int64(math.Floor(price + 0.5)),
		PanelManufacturers:    panelMakers.items,
		InverterManufacturers: inverterMakers.items,
		BatteryManufacturers:  batteryMakers.items,
	}
	if project != nil {
		summary.Address = project.Address
		summary.Stage = project.Stage
	}
	return summary
}

type orderedSet struct {
	seen  map[string]bool
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: map[string]bool{}, items: []string{}}
}

func (s *orderedSet) add(v string) {
	if v == "" || s.seen[v] {
		return
	}
	s.seen[v] = true
	s.items = append(s.items, v)
}
