package repository

import (
	"context"
	"dashboard-service/internal/models"
)

type orderRepo struct {
	rows *table[models.Order]
}

func NewOrderRepository() OrderRepository {
	return newOrderRepo()
}

func newOrderRepo() *orderRepo {
	return &orderRepo{rows: newTable[models.Order]()}
}

func (r *orderRepo) GetAll(ctx context.Context) []models.Order {
	return r.rows.all()
}

func (r *orderRepo) GetByID(ctx context.Context, id int) (models.Order, bool) {
	return r.rows.get(id)
}

func (r *orderRepo) Create(ctx context.Context, in models.OrderInput) models.Order {
	status := in.Status
	if status == "" {
		status = models.OrderPending
	}

	return r.rows.insert(func(id int) models.Order {
		return models.Order{
			ID:           id,
			CustomerID:   in.CustomerID,
			CustomerName: in.CustomerName,
			Total:        in.Total,
			Status:       status,
			Date:         in.Date,
		}
	})
}

func (r *orderRepo) Update(ctx context.Context, id int, patch models.OrderPatch) (models.Order, bool) {
	return r.rows.update(id, func(o models.Order) models.Order {
		return o.Apply(patch)
	})
}

func (r *orderRepo) Delete(ctx context.Context, id int) bool {
	return r.rows.remove(id)
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id int, status models.OrderStatus) (models.Order, bool) {
	return r.Update(ctx, id, models.OrderPatch{Status: &status})
}

// GetByCustomerID matches on the stored customer id only; the customer row
// itself may not exist.
func (r *orderRepo) GetByCustomerID(ctx context.Context, customerID int) []models.Order {
	return r.rows.filter(func(o models.Order) bool {
		return o.CustomerID == customerID
	})
}
