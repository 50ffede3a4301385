package models

type ProductStatus string

const (
	ProductActive     ProductStatus = "active"
	ProductLowStock   ProductStatus = "low_stock"
	ProductOutOfStock ProductStatus = "out_of_stock"
)

// LowStockThreshold is the highest stock count still reported as low_stock.
const LowStockThreshold = 10

type Product struct {
	ID       int           `json:"id"`
	Name     string        `json:"name"`
	SKU      string        `json:"sku"`
	Category string        `json:"category"`
	Price    string        `json:"price"`
	Stock    int           `json:"stock"`
	Status   ProductStatus `json:"status"`
}

// ProductInput carries the fields of a product to be created. There is no
// status: it is always derived from Stock.
type ProductInput struct {
	Name     string
	SKU      string
	Category string
	Price    string
	Stock    int
}

type ProductPatch struct {
	Name     *string
	SKU      *string
	Category *string
	Price    *string
	Stock    *int
}

// DeriveProductStatus maps a stock count to the product lifecycle status.
func DeriveProductStatus(stock int) ProductStatus {
	switch {
	case stock <= 0:
		return ProductOutOfStock
	case stock <= LowStockThreshold:
		return ProductLowStock
	default:
		return ProductActive
	}
}

func (p Product) Apply(patch ProductPatch) Product {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.SKU != nil {
		p.SKU = *patch.SKU
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	return p
}
