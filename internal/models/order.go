package models

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// Order keeps a denormalized copy of the customer name; it is not kept in
// sync with the customer row.
type Order struct {
	ID           int         `json:"id"`
	CustomerID   int         `json:"customerId"`
	CustomerName string      `json:"customerName"`
	Total        string      `json:"total"`
	Status       OrderStatus `json:"status"`
	Date         string      `json:"date"`
}

type OrderInput struct {
	CustomerID   int
	CustomerName string
	Total        string
	Status       OrderStatus
	Date         string
}

type OrderPatch struct {
	CustomerID   *int
	CustomerName *string
	Total        *string
	Status       *OrderStatus
	Date         *string
}

func (o Order) Apply(patch OrderPatch) Order {
	if patch.CustomerID != nil {
		o.CustomerID = *patch.CustomerID
	}
	if patch.CustomerName != nil {
		o.CustomerName = *patch.CustomerName
	}
	if patch.Total != nil {
		o.Total = *patch.Total
	}
	if patch.Status != nil {
		o.Status = *patch.Status
	}
	if patch.Date != nil {
		o.Date = *patch.Date
	}
	return o
}

type OrderItem struct {
	ID          int    `json:"id"`
	OrderID     int    `json:"orderId"`
	ProductID   int    `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
	Total       string `json:"total"`
}

type OrderItemInput struct {
	OrderID     int
	ProductID   int
	ProductName string
	Quantity    int
	Price       string
	Total       string
}

type OrderItemPatch struct {
	OrderID     *int
	ProductID   *int
	ProductName *string
	Quantity    *int
	Price       *string
	Total       *string
}

func (i OrderItem) Apply(patch OrderItemPatch) OrderItem {
	if patch.OrderID != nil {
		i.OrderID = *patch.OrderID
	}
	if patch.ProductID != nil {
		i.ProductID = *patch.ProductID
	}
	if patch.ProductName != nil {
		i.ProductName = *patch.ProductName
	}
	if patch.Quantity != nil {
		i.Quantity = *patch.Quantity
	}
	if patch.Price != nil {
		i.Price = *patch.Price
	}
	if patch.Total != nil {
		i.Total = *patch.Total
	}
	return i
}
