package api

import (
	"dashboard-service/internal/api/handlers"
	"dashboard-service/internal/dashboard"
	"dashboard-service/internal/repository"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Deps struct {
	Customers  repository.CustomerRepository
	Products   repository.ProductRepository
	Orders     repository.OrderRepository
	OrderItems repository.OrderItemRepository
	Dashboard  *dashboard.Aggregator
	Logger     *zap.Logger
}

func NewRouter(d Deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	customers := handlers.NewCustomerHandler(d.Customers)
	products := handlers.NewProductHandler(d.Products)
	orders := handlers.NewOrderHandler(d.Orders, d.OrderItems)
	dash := handlers.NewDashboardHandler(d.Dashboard)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Get("/", customers.GetAll)
			r.Post("/", customers.Create)
			r.Get("/{id}", customers.GetByID)
			r.Patch("/{id}", customers.Update)
			r.Delete("/{id}", customers.Delete)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", products.GetAll)
			r.Post("/", products.Create)
			r.Get("/{id}", products.GetByID)
			r.Patch("/{id}", products.Update)
			r.Delete("/{id}", products.Delete)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", orders.GetAll)
			r.Post("/", orders.Create)
			r.Get("/{id}", orders.GetByID)
			r.Patch("/{id}", orders.Update)
			r.Delete("/{id}", orders.Delete)
			r.Patch("/{id}/status", orders.UpdateStatus)
			r.Get("/{id}/items", orders.GetItems)
			r.Post("/{id}/items", orders.CreateItem)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/stats", dash.Stats)
			r.Get("/activity", dash.RecentActivity)
			r.Get("/sales", dash.Sales)
			r.Get("/categories", dash.Categories)
			r.Get("/financial", dash.Financial)
		})
	})

	return r
}
