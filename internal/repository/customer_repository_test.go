package repository

import (
	"context"
	"testing"

	"dashboard-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestCustomerRepository_CreateAssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository()

	var last int
	for i := 0; i < 5; i++ {
		c := repo.Create(ctx, models.CustomerInput{Name: "Ana", Email: "ana@email.com"})
		assert.Greater(t, c.ID, last)
		last = c.ID
	}
}

func TestCustomerRepository_IDsNotReusedAfterDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository()

	first := repo.Create(ctx, models.CustomerInput{Name: "Ana"})
	require.True(t, repo.Delete(ctx, first.ID))

	second := repo.Create(ctx, models.CustomerInput{Name: "Bia"})
	assert.Equal(t, first.ID+1, second.ID)
}

func TestCustomerRepository_GetReturnsCreatedRow(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository()

	created := repo.Create(ctx, models.CustomerInput{
		Name:   "Ana Lima",
		Email:  "ana@email.com",
		Phone:  "(21) 99999-0000",
		City:   "Niterói",
		Status: models.CustomerInactive,
	})

	got, ok := repo.GetByID(ctx, created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)
	assert.Equal(t, models.CustomerInactive, got.Status)
}

func TestCustomerRepository_CreateDefaultsStatus(t *testing.T) {
	c := NewCustomerRepository().Create(context.Background(), models.CustomerInput{Name: "Ana"})
	assert.Equal(t, models.CustomerActive, c.Status)
}

func TestCustomerRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository()
	c := repo.Create(ctx, models.CustomerInput{Name: "Ana"})

	assert.True(t, repo.Delete(ctx, c.ID))
	assert.False(t, repo.Delete(ctx, c.ID))
	assert.False(t, repo.Delete(ctx, 999))

	_, ok := repo.GetByID(ctx, c.ID)
	assert.False(t, ok)
	assert.Empty(t, repo.GetAll(ctx))
}

func TestCustomerRepository_UpdatePreservesUnmentionedFields(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository()
	c := repo.Create(ctx, models.CustomerInput{
		Name:  "Ana",
		Email: "ana@email.com",
		Phone: "(21) 99999-0000",
		City:  "Niterói",
	})

	updated, ok := repo.Update(ctx, c.ID, models.CustomerPatch{City: ptr("Recife")})
	require.True(t, ok)

	want := c
	want.City = "Recife"
	assert.Equal(t, want, updated)

	stored, _ := repo.GetByID(ctx, c.ID)
	assert.Equal(t, want, stored)
}

func TestCustomerRepository_UpdateUnknownID(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository()
	c := repo.Create(ctx, models.CustomerInput{Name: "Ana"})

	_, ok := repo.Update(ctx, c.ID+1, models.CustomerPatch{Name: ptr("Bia")})
	assert.False(t, ok)
	assert.Equal(t, []models.Customer{c}, repo.GetAll(ctx))
	assert.Equal(t, 1, repo.Count(ctx))
}

func TestCustomerRepository_GetAllInInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository()

	names := []string{"Ana", "Bia", "Caio", "Davi"}
	for _, n := range names {
		repo.Create(ctx, models.CustomerInput{Name: n})
	}
	repo.Delete(ctx, 2)

	var got []string
	for _, c := range repo.GetAll(ctx) {
		got = append(got, c.Name)
	}
	assert.Equal(t, []string{"Ana", "Caio", "Davi"}, got)
}
