// Package low_stock is a read-only query for products at or below a stock
// threshold. It does not touch the store; the view renders its result
// directly.
package low_stock

import (
	"context"

	"github.com/murkotick/catalog-admin/internal/app/catalog/contracts"
	"github.com/murkotick/catalog-admin/internal/app/catalog/domain"
)

type Handler struct {
	products contracts.ProductGateway
}

func NewHandler(products contracts.ProductGateway) *Handler {
	return &Handler{products: products}
}

func (h *Handler) Execute(ctx context.Context, threshold int64) ([]domain.Product, error) {
	items, _, err := h.products.LowStock(ctx, threshold)
	return items, err
}
