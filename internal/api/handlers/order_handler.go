package handlers

import (
	"dashboard-service/internal/models"
	"dashboard-service/internal/repository"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"
)

type OrderHandler struct {
	orders repository.OrderRepository
	items  repository.OrderItemRepository
}

func NewOrderHandler(orders repository.OrderRepository, items repository.OrderItemRepository) *OrderHandler {
	return &OrderHandler{orders: orders, items: items}
}

type OrderCreateRequest struct {
	CustomerID   int                `json:"customerId" validate:"required,gt=0"`
	CustomerName string             `json:"customerName" validate:"required"`
	Total        string             `json:"total" validate:"required,decimal"`
	Status       models.OrderStatus `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
	Date         string             `json:"date" validate:"required"`
}

type OrderUpdateRequest struct {
	CustomerID   *int                `json:"customerId" validate:"omitnil,gt=0"`
	CustomerName *string             `json:"customerName" validate:"omitnil,min=1"`
	Total        *string             `json:"total" validate:"omitnil,decimal"`
	Status       *models.OrderStatus `json:"status" validate:"omitnil,oneof=pending completed cancelled"`
	Date         *string             `json:"date" validate:"omitnil,min=1"`
}

type OrderStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required,oneof=pending completed cancelled"`
}

// OrderItemCreateRequest omits the order id, which comes from the path.
// Total defaults to price times quantity.
type OrderItemCreateRequest struct {
	ProductID   int    `json:"productId" validate:"required,gt=0"`
	ProductName string `json:"productName" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	Price       string `json:"price" validate:"required,decimal"`
	Total       string `json:"total" validate:"omitempty,decimal"`
}

func (h *OrderHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.orders.GetAll(r.Context()))
}

func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "order")
	if !ok {
		return
	}

	order, found := h.orders.GetByID(r.Context(), id)
	if !found {
		writeNotFound(w, "order")
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req OrderCreateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	order := h.orders.Create(r.Context(), models.OrderInput{
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		Total:        req.Total,
		Status:       req.Status,
		Date:         req.Date,
	})

	w.Header().Set("Location", "/api/orders/"+strconv.Itoa(order.ID))
	writeJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "order")
	if !ok {
		return
	}

	var req OrderUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	order, found := h.orders.Update(r.Context(), id, models.OrderPatch{
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		Total:        req.Total,
		Status:       req.Status,
		Date:         req.Date,
	})
	if !found {
		writeNotFound(w, "order")
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "order")
	if !ok {
		return
	}

	var req OrderStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	order, found := h.orders.UpdateStatus(r.Context(), id, req.Status)
	if !found {
		writeNotFound(w, "order")
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "order")
	if !ok {
		return
	}

	if !h.orders.Delete(r.Context(), id) {
		writeNotFound(w, "order")
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}

func (h *OrderHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "order")
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, h.items.ListByOrder(r.Context(), id))
}

func (h *OrderHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	orderID, ok := parseID(w, r, "id", "order")
	if !ok {
		return
	}

	var req OrderItemCreateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	total := req.Total
	if total == "" {
		// price already passed the decimal rule
		price := decimal.RequireFromString(req.Price)
		total = price.Mul(decimal.NewFromInt(int64(req.Quantity))).StringFixed(2)
	}

	item := h.items.Create(r.Context(), models.OrderItemInput{
		OrderID:     orderID,
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		Price:       req.Price,
		Total:       total,
	})

	writeJSON(w, http.StatusCreated, item)
}
