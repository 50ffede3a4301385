package models

type DashboardStats struct {
	TotalCustomers int     `json:"totalCustomers"`
	TotalProducts  int     `json:"totalProducts"`
	MonthlyRevenue float64 `json:"monthlyRevenue"`
	PendingOrders  int     `json:"pendingOrders"`
	SalesGrowth    float64 `json:"salesGrowth"`
	ProductsGrowth float64 `json:"productsGrowth"`
	RevenueGrowth  float64 `json:"revenueGrowth"`
}

type ActivityType string

const (
	ActivityCustomer ActivityType = "customer"
	ActivityOrder    ActivityType = "order"
	ActivityProduct  ActivityType = "product"
)

type RecentActivity struct {
	ID      string       `json:"id"`
	Type    ActivityType `json:"type"`
	Message string       `json:"message"`
	Time    string       `json:"time"`
	Icon    string       `json:"icon"`
	Color   string       `json:"color"`
}

type SalesPoint struct {
	Month string  `json:"month"`
	Sales float64 `json:"sales"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type FinancialPoint struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
}
