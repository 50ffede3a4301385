package handlers

import (
	"dashboard-service/internal/models"
	"dashboard-service/internal/repository"
	"net/http"
	"strconv"
)

type ProductHandler struct {
	repo repository.ProductRepository
}

func NewProductHandler(repo repository.ProductRepository) *ProductHandler {
	return &ProductHandler{repo: repo}
}

// Status is decoded on both requests so clients may send it, but it is
// ignored: the stored status is always derived from stock.
type ProductCreateRequest struct {
	Name     string               `json:"name" validate:"required,min=2"`
	SKU      string               `json:"sku" validate:"required,min=3"`
	Category string               `json:"category" validate:"required,min=2"`
	Price    string               `json:"price" validate:"required,decimal"`
	Stock    int                  `json:"stock" validate:"min=0"`
	Status   models.ProductStatus `json:"status"`
}

type ProductUpdateRequest struct {
	Name     *string               `json:"name" validate:"omitnil,min=2"`
	SKU      *string               `json:"sku" validate:"omitnil,min=3"`
	Category *string               `json:"category" validate:"omitnil,min=2"`
	Price    *string               `json:"price" validate:"omitnil,decimal"`
	Stock    *int                  `json:"stock" validate:"omitnil,min=0"`
	Status   *models.ProductStatus `json:"status"`
}

func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "product")
	if !ok {
		return
	}

	product, found := h.repo.GetByID(r.Context(), id)
	if !found {
		writeNotFound(w, "product")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// GetAll lists every product, or only one category when ?category= is set.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		writeJSON(w, http.StatusOK, h.repo.GetByCategory(r.Context(), category))
		return
	}

	writeJSON(w, http.StatusOK, h.repo.GetAll(r.Context()))
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProductCreateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p := h.repo.Create(r.Context(), models.ProductInput{
		Name:     req.Name,
		SKU:      req.SKU,
		Category: req.Category,
		Price:    req.Price,
		Stock:    req.Stock,
	})

	w.Header().Set("Location", "/api/products/"+strconv.Itoa(p.ID))
	writeJSON(w, http.StatusCreated, p)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "product")
	if !ok {
		return
	}

	var req ProductUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, found := h.repo.Update(r.Context(), id, models.ProductPatch{
		Name:     req.Name,
		SKU:      req.SKU,
		Category: req.Category,
		Price:    req.Price,
		Stock:    req.Stock,
	})
	if !found {
		writeNotFound(w, "product")
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "product")
	if !ok {
		return
	}

	if !h.repo.Delete(r.Context(), id) {
		writeNotFound(w, "product")
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}
