package repository

import "dashboard-service/internal/models"

var sampleCustomers = []models.Customer{
	{ID: 1, Name: "João Silva", Email: "joao@email.com", Phone: "(11) 99999-9999", City: "São Paulo", Status: models.CustomerActive},
	{ID: 2, Name: "Maria Santos", Email: "maria@email.com", Phone: "(11) 88888-8888", City: "Rio de Janeiro", Status: models.CustomerActive},
	{ID: 3, Name: "Pedro Costa", Email: "pedro@email.com", Phone: "(11) 77777-7777", City: "Belo Horizonte", Status: models.CustomerActive},
}

var sampleProducts = []models.Product{
	{ID: 1, Name: "Notebook Dell Inspiron", SKU: "NB-DELL-001", Category: "Eletrônicos", Price: "2499.90", Stock: 45},
	{ID: 2, Name: "Mouse Wireless", SKU: "MS-WLS-002", Category: "Acessórios", Price: "89.90", Stock: 5},
	{ID: 3, Name: "Teclado Mecânico", SKU: "KB-MEC-003", Category: "Acessórios", Price: "299.90", Stock: 20},
	{ID: 4, Name: "Monitor 24 polegadas", SKU: "MN-24-004", Category: "Eletrônicos", Price: "899.90", Stock: 0},
}

var sampleOrders = []models.Order{
	{ID: 1, CustomerID: 1, CustomerName: "João Silva", Total: "567.89", Status: models.OrderCompleted, Date: "2023-12-15"},
	{ID: 2, CustomerID: 2, CustomerName: "Maria Santos", Total: "1234.50", Status: models.OrderPending, Date: "2023-12-15"},
}

// seed writes the sample rows under their fixed ids. Each counter ends up one
// past the highest seeded id. No order items are seeded.
func seed(customers *customerRepo, products *productRepo, orders *orderRepo) {
	for _, c := range sampleCustomers {
		customers.rows.put(c.ID, c)
	}
	for _, p := range sampleProducts {
		products.rows.put(p.ID, withDerivedStatus(p))
	}
	for _, o := range sampleOrders {
		orders.rows.put(o.ID, o)
	}
}
