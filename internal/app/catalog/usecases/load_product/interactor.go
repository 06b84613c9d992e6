// Package load_product fetches one product into the detail view, with a
// soft inventory enrichment: a missing or failing stock lookup renders the
// product as unavailable instead of failing the view.
package load_product

import (
	"context"
	"log/slog"

	"github.com/murkotick/catalog-admin/internal/app/catalog/contracts"
	"github.com/murkotick/catalog-admin/internal/app/catalog/domain"
	"github.com/murkotick/catalog-admin/internal/app/catalog/store"
	"github.com/murkotick/catalog-admin/internal/pkg/apiclient"
)

type Interactor struct {
	Products  contracts.ProductGateway
	Inventory contracts.InventoryGateway
	Store     *store.Store
	Log       *slog.Logger
}

func NewInteractor(products contracts.ProductGateway, inventory contracts.InventoryGateway, st *store.Store, log *slog.Logger) *Interactor {
	return &Interactor{Products: products, Inventory: inventory, Store: st, Log: log}
}

// Execute loads the product and, best-effort, its stock record.
func (it *Interactor) Execute(ctx context.Context, id int64) (domain.Product, error) {
	it.Store.SetProductsLoading(true)
	defer it.Store.SetProductsLoading(false)

	p, err := it.Products.Get(ctx, id)
	if err != nil {
		msg := apiclient.Message(err)
		it.Store.SetProductsError(msg)
		it.Store.Notify(store.NotifyError, "Products", msg)
		return domain.Product{}, err
	}
	it.Store.SetCurrentProduct(&p)

	inv, err := it.Inventory.GetByProductID(ctx, id)
	if err != nil {
		it.Log.Warn("inventory lookup skipped for detail view", "product_id", id, "error", err)
		return p, nil
	}
	it.Store.SetInventory(id, inv)

	return p, nil
}
