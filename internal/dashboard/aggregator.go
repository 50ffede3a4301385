// Package dashboard computes the read-only views shown on the admin
// dashboard. Stats and the category breakdown are derived from the store;
// growth figures, the activity feed and the monthly series are fixed
// sample content (see placeholders.go).
package dashboard

import (
	"context"
	"dashboard-service/internal/models"
	"dashboard-service/internal/repository"
	"slices"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Aggregator struct {
	customers repository.CustomerRepository
	products  repository.ProductRepository
	orders    repository.OrderRepository
	logger    *zap.Logger
}

func NewAggregator(
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	orders repository.OrderRepository,
	logger *zap.Logger,
) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{
		customers: customers,
		products:  products,
		orders:    orders,
		logger:    logger,
	}
}

func (a *Aggregator) Stats(ctx context.Context) models.DashboardStats {
	pending := 0
	revenue := decimal.Zero

	for _, o := range a.orders.GetAll(ctx) {
		switch o.Status {
		case models.OrderPending:
			pending++
		case models.OrderCompleted:
			total, err := decimal.NewFromString(o.Total)
			if err != nil {
				a.logger.Warn("skipping order with unparseable total",
					zap.Int("order_id", o.ID),
					zap.String("total", o.Total),
					zap.Error(err),
				)
				continue
			}
			revenue = revenue.Add(total)
		}
	}

	return models.DashboardStats{
		TotalCustomers: a.customers.Count(ctx),
		TotalProducts:  a.products.Count(ctx),
		MonthlyRevenue: revenue.InexactFloat64(),
		PendingOrders:  pending,
		SalesGrowth:    placeholderSalesGrowth,
		ProductsGrowth: placeholderProductsGrowth,
		RevenueGrowth:  placeholderRevenueGrowth,
	}
}

// CategoryBreakdown counts products per category, in the order each
// category first shows up in the product listing.
func (a *Aggregator) CategoryBreakdown(ctx context.Context) []models.CategoryCount {
	index := make(map[string]int)
	out := []models.CategoryCount{}

	for _, p := range a.products.GetAll(ctx) {
		i, ok := index[p.Category]
		if !ok {
			i = len(out)
			index[p.Category] = i
			out = append(out, models.CategoryCount{Category: p.Category})
		}
		out[i].Count++
	}

	return out
}

func (a *Aggregator) RecentActivity(ctx context.Context) []models.RecentActivity {
	return slices.Clone(sampleActivity)
}

func (a *Aggregator) Sales(ctx context.Context) []models.SalesPoint {
	return slices.Clone(sampleSales)
}

func (a *Aggregator) Financial(ctx context.Context) []models.FinancialPoint {
	return slices.Clone(sampleFinancial)
}
