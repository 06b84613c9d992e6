package domain

import "github.com/shopspring/decimal"

// StockLevel classifies a quantity for display purposes.
type StockLevel string

const (
	// StockOut means no stock, or the inventory service does not know the product.
	StockOut StockLevel = "out"

	// StockLow means the quantity is at or below the low-stock threshold.
	StockLow StockLevel = "low"

	// StockMedium means the quantity is above low but at or below ten units.
	StockMedium StockLevel = "medium"

	// StockHigh means the quantity is above ten units.
	StockHigh StockLevel = "high"
)

// Inventory is the stock record for one product, as reported by the
// inventory service. ProductExists reflects whether that service knows the
// product at all; the products and inventory services can disagree.
type Inventory struct {
	ProductID     int64 `json:"productId"`
	Quantity      int64 `json:"quantity"`
	ProductExists bool  `json:"productExists"`

	// Denormalized product snapshot the inventory service may include.
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	SKU         *string          `json:"sku,omitempty"`
}

// EffectiveQuantity treats unknown products as zero stock regardless of any
// numeric value present in the record.
func (i Inventory) EffectiveQuantity() int64 {
	if !i.ProductExists {
		return 0
	}
	return i.Quantity
}

// Available reports whether stock mutations that consume units make sense.
func (i Inventory) Available() bool {
	return i.ProductExists && i.Quantity > 0
}

// Level buckets the effective quantity: 0 is out, <=5 low, <=10 medium,
// anything above is high.
func (i Inventory) Level() StockLevel {
	q := i.EffectiveQuantity()
	switch {
	case q == 0:
		return StockOut
	case q <= 5:
		return StockLow
	case q <= 10:
		return StockMedium
	default:
		return StockHigh
	}
}
