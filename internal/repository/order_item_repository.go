package repository

import (
	"context"
	"dashboard-service/internal/models"
)

type orderItemRepo struct {
	rows *table[models.OrderItem]
}

func NewOrderItemRepository() OrderItemRepository {
	return newOrderItemRepo()
}

func newOrderItemRepo() *orderItemRepo {
	return &orderItemRepo{rows: newTable[models.OrderItem]()}
}

func (r *orderItemRepo) GetAll(ctx context.Context) []models.OrderItem {
	return r.rows.all()
}

func (r *orderItemRepo) GetByID(ctx context.Context, id int) (models.OrderItem, bool) {
	return r.rows.get(id)
}

func (r *orderItemRepo) Create(ctx context.Context, in models.OrderItemInput) models.OrderItem {
	return r.rows.insert(func(id int) models.OrderItem {
		return models.OrderItem{
			ID:          id,
			OrderID:     in.OrderID,
			ProductID:   in.ProductID,
			ProductName: in.ProductName,
			Quantity:    in.Quantity,
			Price:       in.Price,
			Total:       in.Total,
		}
	})
}

func (r *orderItemRepo) Update(ctx context.Context, id int, patch models.OrderItemPatch) (models.OrderItem, bool) {
	return r.rows.update(id, func(i models.OrderItem) models.OrderItem {
		return i.Apply(patch)
	})
}

func (r *orderItemRepo) Delete(ctx context.Context, id int) bool {
	return r.rows.remove(id)
}

func (r *orderItemRepo) ListByOrder(ctx context.Context, orderID int) []models.OrderItem {
	return r.rows.filter(func(i models.OrderItem) bool {
		return i.OrderID == orderID
	})
}
