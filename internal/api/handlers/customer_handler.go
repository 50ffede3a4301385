package handlers

import (
	"dashboard-service/internal/models"
	"dashboard-service/internal/repository"
	"net/http"
	"strconv"
)

type CustomerHandler struct {
	repo repository.CustomerRepository
}

func NewCustomerHandler(repo repository.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{repo: repo}
}

type CustomerCreateRequest struct {
	Name   string                `json:"name" validate:"required,min=2"`
	Email  string                `json:"email" validate:"required,email"`
	Phone  string                `json:"phone" validate:"required,min=10"`
	City   string                `json:"city" validate:"required,min=2"`
	Status models.CustomerStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}

type CustomerUpdateRequest struct {
	Name   *string                `json:"name" validate:"omitnil,min=2"`
	Email  *string                `json:"email" validate:"omitnil,email"`
	Phone  *string                `json:"phone" validate:"omitnil,min=10"`
	City   *string                `json:"city" validate:"omitnil,min=2"`
	Status *models.CustomerStatus `json:"status" validate:"omitnil,oneof=active inactive"`
}

func (h *CustomerHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.repo.GetAll(r.Context()))
}

func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "customer")
	if !ok {
		return
	}

	customer, found := h.repo.GetByID(r.Context(), id)
	if !found {
		writeNotFound(w, "customer")
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CustomerCreateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	customer := h.repo.Create(r.Context(), models.CustomerInput{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		City:   req.City,
		Status: req.Status,
	})

	w.Header().Set("Location", "/api/customers/"+strconv.Itoa(customer.ID))
	writeJSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "customer")
	if !ok {
		return
	}

	var req CustomerUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	customer, found := h.repo.Update(r.Context(), id, models.CustomerPatch{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		City:   req.City,
		Status: req.Status,
	})
	if !found {
		writeNotFound(w, "customer")
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "customer")
	if !ok {
		return
	}

	if !h.repo.Delete(r.Context(), id) {
		writeNotFound(w, "customer")
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}
