package repository

import (
	"context"
	"testing"

	"dashboard-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_CreateDefaultsToPending(t *testing.T) {
	o := NewOrderRepository().Create(context.Background(), models.OrderInput{
		CustomerID:   42,
		CustomerName: "Cliente Sem Cadastro",
		Total:        "10.00",
		Date:         "2024-01-02",
	})

	assert.Equal(t, models.OrderPending, o.Status)
	assert.Equal(t, 42, o.CustomerID)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()
	o := repo.Create(ctx, models.OrderInput{CustomerID: 1, Total: "99.90", Date: "2024-01-02"})

	updated, ok := repo.UpdateStatus(ctx, o.ID, models.OrderCompleted)
	require.True(t, ok)
	assert.Equal(t, models.OrderCompleted, updated.Status)
	assert.Equal(t, "99.90", updated.Total)
	assert.Equal(t, "2024-01-02", updated.Date)

	_, ok = repo.UpdateStatus(ctx, o.ID+1, models.OrderCancelled)
	assert.False(t, ok)
}

func TestOrderRepository_GetByCustomerID(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()
	repo.Create(ctx, models.OrderInput{CustomerID: 1})
	repo.Create(ctx, models.OrderInput{CustomerID: 2})
	repo.Create(ctx, models.OrderInput{CustomerID: 1})

	got := repo.GetByCustomerID(ctx, 1)
	require.Len(t, got, 2)
	for _, o := range got {
		assert.Equal(t, 1, o.CustomerID)
	}
	assert.Empty(t, repo.GetByCustomerID(ctx, 3))
}

func TestOrderItemRepository_ListByOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderItemRepository()

	assert.Empty(t, repo.ListByOrder(ctx, 1))

	a := repo.Create(ctx, models.OrderItemInput{OrderID: 1, ProductID: 2, ProductName: "Mouse Wireless", Quantity: 2, Price: "89.90", Total: "179.80"})
	repo.Create(ctx, models.OrderItemInput{OrderID: 2, ProductID: 1, Quantity: 1})
	c := repo.Create(ctx, models.OrderItemInput{OrderID: 1, ProductID: 3, Quantity: 1})

	assert.Equal(t, []models.OrderItem{a, c}, repo.ListByOrder(ctx, 1))
	assert.Empty(t, repo.ListByOrder(ctx, 99))

	repo.Delete(ctx, a.ID)
	assert.Equal(t, []models.OrderItem{c}, repo.ListByOrder(ctx, 1))
}

func TestOrderItemRepository_UpdatePreservesFields(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderItemRepository()
	item := repo.Create(ctx, models.OrderItemInput{OrderID: 1, ProductID: 2, Quantity: 2, Price: "89.90", Total: "179.80"})

	updated, ok := repo.Update(ctx, item.ID, models.OrderItemPatch{Quantity: ptr(3), Total: ptr("269.70")})
	require.True(t, ok)
	assert.Equal(t, 1, updated.OrderID)
	assert.Equal(t, "89.90", updated.Price)
	assert.Equal(t, 3, updated.Quantity)
}
