package dashboard

import "dashboard-service/internal/models"

// Fixed sample figures. None of these depend on store contents.

const (
	placeholderSalesGrowth    = 12
	placeholderProductsGrowth = -2
	placeholderRevenueGrowth  = 8
)

var sampleActivity = []models.RecentActivity{
	{
		ID:      "1",
		Type:    models.ActivityCustomer,
		Message: "Novo cliente cadastrado: Maria Santos",
		Time:    "há 2 minutos",
		Icon:    "user-plus",
		Color:   "green",
	},
	{
		ID:      "2",
		Type:    models.ActivityOrder,
		Message: "Venda realizada: Pedido #1234 - R$ 567,89",
		Time:    "há 15 minutos",
		Icon:    "shopping-cart",
		Color:   "blue",
	},
	{
		ID:      "3",
		Type:    models.ActivityProduct,
		Message: "Estoque baixo: Mouse Wireless - 5 unidades",
		Time:    "há 1 hora",
		Icon:    "alert-triangle",
		Color:   "orange",
	},
}

var sampleSales = []models.SalesPoint{
	{Month: "Jan", Sales: 12000},
	{Month: "Fev", Sales: 19000},
	{Month: "Mar", Sales: 15000},
	{Month: "Abr", Sales: 25000},
	{Month: "Mai", Sales: 22000},
	{Month: "Jun", Sales: 30000},
}

var sampleFinancial = []models.FinancialPoint{
	{Month: "Jan", Revenue: 45000, Expenses: 32000},
	{Month: "Fev", Revenue: 52000, Expenses: 38000},
	{Month: "Mar", Revenue: 48000, Expenses: 35000},
	{Month: "Abr", Revenue: 61000, Expenses: 42000},
	{Month: "Mai", Revenue: 55000, Expenses: 39000},
	{Month: "Jun", Revenue: 67000, Expenses: 45000},
}
