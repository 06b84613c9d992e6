package contracts

import (
	"context"

	"github.com/murkotick/catalog-admin/internal/app/catalog/domain"
)

// InventoryGateway is the surface of the remote inventory service. Stock is
// only ever mutated through relative deltas; the first read of an unknown
// product implicitly creates its record on the backend.
type InventoryGateway interface {
	// GetByProductID fetches the stock record for one product.
	GetByProductID(ctx context.Context, productID int64) (domain.Inventory, error)

	// UpdateStock applies a signed quantity change and returns the new record.
	UpdateStock(ctx context.Context, productID, delta int64) (domain.Inventory, error)

	// GetMany fetches stock for several products, one request each, joined
	// all-settled: individual failures are logged and omitted from the result
	// instead of aborting the batch.
	GetMany(ctx context.Context, productIDs []int64) map[int64]domain.Inventory
}
