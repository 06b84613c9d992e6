package contracts

import (
	"context"

	"github.com/murkotick/catalog-admin/internal/app/catalog/domain"
	"github.com/murkotick/catalog-admin/internal/pkg/jsonapi"
)

// ProductGateway is the read/write surface of the remote products service.
// Every method maps to exactly one HTTP request and returns normalized flat
// records; pagination meta comes back exactly as the wire carried it.
type ProductGateway interface {
	// List fetches one page of products.
	List(ctx context.Context, page, size int) ([]domain.Product, *jsonapi.PageMeta, error)

	// Get fetches one product by identifier.
	Get(ctx context.Context, id int64) (domain.Product, error)

	// Create submits a new product and returns the server-assigned record.
	Create(ctx context.Context, form domain.ProductForm) (domain.Product, error)

	// Update applies a partial update and returns the updated record.
	Update(ctx context.Context, id int64, patch domain.ProductPatch) (domain.Product, error)

	// Delete removes the product.
	Delete(ctx context.Context, id int64) error

	// SearchByName filters the listing server-side by name.
	SearchByName(ctx context.Context, name string, page, size int) ([]domain.Product, *jsonapi.PageMeta, error)

	// LowStock lists products whose stock is at or below threshold.
	LowStock(ctx context.Context, threshold int64) ([]domain.Product, *jsonapi.PageMeta, error)
}
