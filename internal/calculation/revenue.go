package calculation

import (
	"github.com/rgehrsitz/fitsizer/internal/domain"
	"github.com/shopspring/decimal"
)

// RevenueCalculator prices the demand rows against the catalog
type RevenueCalculator struct {
	Catalog *domain.SubscriptionCatalog
}

// NewRevenueCalculator creates a revenue calculator
func NewRevenueCalculator(catalog *domain.SubscriptionCatalog) *RevenueCalculator {
	return &RevenueCalculator{Catalog: catalog}
}

// Apply fills in the revenue of each row and returns the monthly total.
// Session-based types earn per session, subscriptions earn per client.
func (rc *RevenueCalculator) Apply(rows []domain.SubscriptionDemand) decimal.Decimal {
	total := decimal.Zero
	for i := range rows {
		sub, ok := rc.Catalog.Get(rows[i].Kind)
		if !ok || rows[i].Weight <= 0 {
			rows[i].Revenue = decimal.Zero
			continue
		}
		units := rows[i].Clients
		if sub.IsSessionBased() {
			units = rows[i].Sessions
		}
		rows[i].Revenue = sub.Price.Mul(decimal.NewFromInt(int64(units)))
		total = total.Add(rows[i].Revenue)
	}
	return total
}

// RevenueGap returns revenue minus target; a non-negative gap meets the target
func RevenueGap(revenue, target decimal.Decimal) (decimal.Decimal, bool) {
	gap := revenue.Sub(target)
	return gap, !gap.IsNegative()
}
