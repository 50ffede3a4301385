package repository

import (
	"context"
	"dashboard-service/internal/models"
)

// Lookups report a missing row with a false second return value; none of
// these methods fail for well-formed input.

type CustomerRepository interface {
	GetAll(ctx context.Context) []models.Customer
	GetByID(ctx context.Context, id int) (models.Customer, bool)
	Create(ctx context.Context, in models.CustomerInput) models.Customer
	Update(ctx context.Context, id int, patch models.CustomerPatch) (models.Customer, bool)
	Delete(ctx context.Context, id int) bool
	Count(ctx context.Context) int
}

type ProductRepository interface {
	GetAll(ctx context.Context) []models.Product
	GetByID(ctx context.Context, id int) (models.Product, bool)
	Create(ctx context.Context, in models.ProductInput) models.Product
	Update(ctx context.Context, id int, patch models.ProductPatch) (models.Product, bool)
	Delete(ctx context.Context, id int) bool
	Count(ctx context.Context) int

	GetByCategory(ctx context.Context, category string) []models.Product
}

type OrderRepository interface {
	GetAll(ctx context.Context) []models.Order
	GetByID(ctx context.Context, id int) (models.Order, bool)
	Create(ctx context.Context, in models.OrderInput) models.Order
	Update(ctx context.Context, id int, patch models.OrderPatch) (models.Order, bool)
	Delete(ctx context.Context, id int) bool

	UpdateStatus(ctx context.Context, id int, status models.OrderStatus) (models.Order, bool)
	GetByCustomerID(ctx context.Context, customerID int) []models.Order
}

type OrderItemRepository interface {
	GetAll(ctx context.Context) []models.OrderItem
	GetByID(ctx context.Context, id int) (models.OrderItem, bool)
	Create(ctx context.Context, in models.OrderItemInput) models.OrderItem
	Update(ctx context.Context, id int, patch models.OrderItemPatch) (models.OrderItem, bool)
	Delete(ctx context.Context, id int) bool

	ListByOrder(ctx context.Context, orderID int) []models.OrderItem
}
