package handlers

import (
	"dashboard-service/internal/dashboard"
	"net/http"
)

type DashboardHandler struct {
	agg *dashboard.Aggregator
}

func NewDashboardHandler(agg *dashboard.Aggregator) *DashboardHandler {
	return &DashboardHandler{agg: agg}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.agg.Stats(r.Context()))
}

func (h *DashboardHandler) RecentActivity(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.agg.RecentActivity(r.Context()))
}

func (h *DashboardHandler) Sales(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.agg.Sales(r.Context()))
}

func (h *DashboardHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.agg.CategoryBreakdown(r.Context()))
}

func (h *DashboardHandler) Financial(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.agg.Financial(r.Context()))
}
