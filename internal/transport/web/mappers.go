package web

import (
	"github.com/shopspring/decimal"

	"github.com/murkotick/catalog-admin/internal/app/catalog/domain"
	"github.com/murkotick/catalog-admin/internal/pkg/jsonapi"
)

// ProductView is the render model for one product row or detail block,
// combining the catalog record with whatever the inventory cache knows.
type ProductView struct {
	ID          int64
	Name        string
	Description string
	SKU         string
	Price       string

	Quantity     int64
	StockText    string
	StockClass   string
	Unavailable  bool
	CanIncrement bool
	CanDecrement bool
}

// productView merges a product with its cached inventory record. A product
// the inventory service does not know (or has no record for) renders as
// unavailable with zero stock, never as an error.
func productView(p domain.Product, inv domain.Inventory, cached bool) ProductView {
	v := ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		SKU:         p.SKU,
		Price:       formatPrice(p.Price),
	}

	if !cached || !inv.ProductExists {
		v.Unavailable = true
		v.StockText, v.StockClass = "Unavailable", "stock-out"
		return v
	}

	v.Quantity = inv.EffectiveQuantity()
	v.StockText, v.StockClass = stockBadge(inv.Level())
	v.CanIncrement = true
	v.CanDecrement = inv.Available()
	return v
}

func productViews(products []domain.Product, inventory map[int64]domain.Inventory) []ProductView {
	out := make([]ProductView, 0, len(products))
	for _, p := range products {
		inv, ok := inventory[p.ID]
		out = append(out, productView(p, inv, ok))
	}
	return out
}

func formatPrice(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func stockBadge(level domain.StockLevel) (text, class string) {
	switch level {
	case domain.StockOut:
		return "Out of stock", "stock-out"
	case domain.StockLow:
		return "Low stock", "stock-low"
	case domain.StockMedium:
		return "Medium stock", "stock-medium"
	default:
		return "In stock", "stock-high"
	}
}

// PaginationView drives the pager controls.
type PaginationView struct {
	Page       int
	TotalPages int
	Total      int
	HasPrev    bool
	HasNext    bool
	PrevPage   int
	NextPage   int
}

func paginationView(meta *jsonapi.PageMeta, page int) PaginationView {
	v := PaginationView{Page: page}
	if meta == nil {
		return v
	}
	v.TotalPages = meta.TotalPages
	v.Total = meta.TotalElements
	v.HasPrev = page > 0
	v.HasNext = page < meta.TotalPages-1
	v.PrevPage = page - 1
	v.NextPage = page + 1
	return v
}
