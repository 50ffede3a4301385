package repository

// Store groups the four collections. It is built once by the process entry
// point and handed to whoever needs it.
type Store struct {
	Customers  CustomerRepository
	Products   ProductRepository
	Orders     OrderRepository
	OrderItems OrderItemRepository
}

// NewStore returns a store populated with the sample rows.
func NewStore() *Store {
	customers := newCustomerRepo()
	products := newProductRepo()
	orders := newOrderRepo()

	seed(customers, products, orders)

	return &Store{
		Customers:  customers,
		Products:   products,
		Orders:     orders,
		OrderItems: newOrderItemRepo(),
	}
}

func NewEmptyStore() *Store {
	return &Store{
		Customers:  newCustomerRepo(),
		Products:   newProductRepo(),
		Orders:     newOrderRepo(),
		OrderItems: newOrderItemRepo(),
	}
}
