package repository

import (
	"context"
	"dashboard-service/internal/models"
)

type productRepo struct {
	rows *table[models.Product]
}

func NewProductRepository() ProductRepository {
	return newProductRepo()
}

func newProductRepo() *productRepo {
	return &productRepo{rows: newTable[models.Product]()}
}

func (r *productRepo) GetAll(ctx context.Context) []models.Product {
	return r.rows.all()
}

func (r *productRepo) GetByID(ctx context.Context, id int) (models.Product, bool) {
	return r.rows.get(id)
}

// Create stores the product with a status derived from its stock; any
// status in the input is ignored.
func (r *productRepo) Create(ctx context.Context, in models.ProductInput) models.Product {
	return r.rows.insert(func(id int) models.Product {
		return withDerivedStatus(models.Product{
			ID:       id,
			Name:     in.Name,
			SKU:      in.SKU,
			Category: in.Category,
			Price:    in.Price,
			Stock:    in.Stock,
		})
	})
}

// Update merges the patch and then re-derives the status, so a patched
// status never survives.
func (r *productRepo) Update(ctx context.Context, id int, patch models.ProductPatch) (models.Product, bool) {
	return r.rows.update(id, func(p models.Product) models.Product {
		return withDerivedStatus(p.Apply(patch))
	})
}

func (r *productRepo) Delete(ctx context.Context, id int) bool {
	return r.rows.remove(id)
}

func (r *productRepo) Count(ctx context.Context) int {
	return r.rows.count()
}

func (r *productRepo) GetByCategory(ctx context.Context, category string) []models.Product {
	return r.rows.filter(func(p models.Product) bool {
		return p.Category == category
	})
}

func withDerivedStatus(p models.Product) models.Product {
	p.Status = models.DeriveProductStatus(p.Stock)
	return p
}
