package repository

import (
	"context"
	"sync"
	"testing"

	"dashboard-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_Seeds(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	assert.Len(t, s.Customers.GetAll(ctx), 3)
	assert.Len(t, s.Products.GetAll(ctx), 4)
	assert.Len(t, s.Orders.GetAll(ctx), 2)
	assert.Empty(t, s.OrderItems.GetAll(ctx))

	mouse, ok := s.Products.GetByID(ctx, 2)
	require.True(t, ok)
	assert.Equal(t, models.ProductLowStock, mouse.Status)

	monitor, _ := s.Products.GetByID(ctx, 4)
	assert.Equal(t, models.ProductOutOfStock, monitor.Status)
}

func TestNewStore_CountersStartPastSeed(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	assert.Equal(t, 4, s.Customers.Create(ctx, models.CustomerInput{Name: "Ana"}).ID)
	assert.Equal(t, 5, s.Products.Create(ctx, models.ProductInput{Name: "Webcam"}).ID)
	assert.Equal(t, 3, s.Orders.Create(ctx, models.OrderInput{CustomerID: 4}).ID)
	assert.Equal(t, 1, s.OrderItems.Create(ctx, models.OrderItemInput{OrderID: 3}).ID)
}

func TestNewEmptyStore(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStore()

	assert.Empty(t, s.Customers.GetAll(ctx))
	assert.Equal(t, 1, s.Customers.Create(ctx, models.CustomerInput{Name: "Ana"}).ID)
}

func TestStore_ConcurrentCreatesGetDistinctIDs(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStore()

	const workers = 8
	const perWorker = 50

	var wg sync.WaitGroup
	ids := make(chan int, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				ids <- s.Products.Create(ctx, models.ProductInput{Stock: i}).ID
				s.Products.GetAll(ctx)
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "id %d handed out twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers*perWorker)
}
