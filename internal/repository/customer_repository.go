package repository

import (
	"context"
	"dashboard-service/internal/models"
)

type customerRepo struct {
	rows *table[models.Customer]
}

func NewCustomerRepository() CustomerRepository {
	return newCustomerRepo()
}

func newCustomerRepo() *customerRepo {
	return &customerRepo{rows: newTable[models.Customer]()}
}

func (r *customerRepo) GetAll(ctx context.Context) []models.Customer {
	return r.rows.all()
}

func (r *customerRepo) GetByID(ctx context.Context, id int) (models.Customer, bool) {
	return r.rows.get(id)
}

func (r *customerRepo) Create(ctx context.Context, in models.CustomerInput) models.Customer {
	status := in.Status
	if status == "" {
		status = models.CustomerActive
	}

	return r.rows.insert(func(id int) models.Customer {
		return models.Customer{
			ID:     id,
			Name:   in.Name,
			Email:  in.Email,
			Phone:  in.Phone,
			City:   in.City,
			Status: status,
		}
	})
}

func (r *customerRepo) Update(ctx context.Context, id int, patch models.CustomerPatch) (models.Customer, bool) {
	return r.rows.update(id, func(c models.Customer) models.Customer {
		return c.Apply(patch)
	})
}

func (r *customerRepo) Delete(ctx context.Context, id int) bool {
	return r.rows.remove(id)
}

func (r *customerRepo) Count(ctx context.Context) int {
	return r.rows.count()
}
