package calculation

import (
	"fmt"
	"math"

	"github.com/rgehrsitz/fitsizer/internal/domain"
)

// DemandCalculator apportions occupied slots across subscription types and
// converts each share into the number of clients required to fill it
type DemandCalculator struct {
	Capacity domain.CapacityFacts
	Usage    domain.UsageAssumptions
	Catalog  *domain.SubscriptionCatalog
}

// NewDemandCalculator creates a demand calculator from the engine configuration
func NewDemandCalculator(cfg domain.EngineConfig) *DemandCalculator {
	return &DemandCalculator{
		Capacity: cfg.Capacity,
		Usage:    cfg.Usage,
		Catalog:  cfg.Catalog,
	}
}

// Apportion splits occupiedSlots by the normalized distribution. One row is
// returned per catalog type, in canonical order; types with no weight get zeros.
func (dc *DemandCalculator) Apportion(occupiedSlots int, normalized domain.DistributionMap) ([]domain.SubscriptionDemand, error) {
	for k := range normalized {
		if _, ok := dc.Catalog.Get(k); !ok {
			return nil, fmt.Errorf("%w: %s is not in the catalog", domain.ErrUnknownSubscription, k)
		}
	}

	rows := make([]domain.SubscriptionDemand, 0, dc.Catalog.Len())
	for _, sub := range dc.Catalog.List() {
		w := normalized.Weight(sub.Kind)
		row := domain.SubscriptionDemand{
			Kind:        sub.Kind,
			DisplayName: sub.DisplayName,
			Weight:      w,
		}
		if w > 0 {
			row.Slots = float64(occupiedSlots) * w
			row.Sessions = int(math.Round(row.Slots))
			row.Clients = dc.clientsFor(sub, row.Slots, row.Sessions)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (dc *DemandCalculator) clientsFor(sub domain.SubscriptionType, slots float64, sessions int) int {
	switch {
	case sub.IsSessionBased():
		return ceilInt(float64(sessions) / dc.Usage.AvgSessionsPerClient)
	case sub.HasQuota():
		return ceilInt(slots / float64(*sub.SessionQuota))
	default:
		weekly := slots / dc.Capacity.WeeksPerMonth
		return ceilInt(weekly / dc.Usage.AvgVisitsPerWeek)
	}
}

// TotalClients sums the client counts of all rows
func TotalClients(rows []domain.SubscriptionDemand) int {
	total := 0
	for _, r := range rows {
		total += r.Clients
	}
	return total
}
