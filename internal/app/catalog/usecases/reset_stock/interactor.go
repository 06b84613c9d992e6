// Package reset_stock brings a product's stock to a target quantity by
// issuing one relative update computed against the current backend value.
// The backend only accepts deltas, so an absolute reset has to be derived.
package reset_stock

import (
	"context"

	"github.com/murkotick/catalog-admin/internal/app/catalog/contracts"
	"github.com/murkotick/catalog-admin/internal/app/catalog/domain"
	"github.com/murkotick/catalog-admin/internal/app/catalog/store"
	"github.com/murkotick/catalog-admin/internal/pkg/apiclient"
)

type Interactor struct {
	Inventory contracts.InventoryGateway
	Store     *store.Store
}

func NewInteractor(inventory contracts.InventoryGateway, st *store.Store) *Interactor {
	return &Interactor{Inventory: inventory, Store: st}
}

// Execute moves the product's quantity to target. The current quantity is
// read from the cache when present, otherwise fetched fresh. A target equal
// to the current quantity issues no request.
func (it *Interactor) Execute(ctx context.Context, productID, target int64) (domain.Inventory, error) {
	current, ok := it.Store.Inventory(productID)
	if !ok {
		fetched, err := it.Inventory.GetByProductID(ctx, productID)
		if err != nil {
			it.Store.Notify(store.NotifyError, "Inventory", apiclient.Message(err))
			return domain.Inventory{}, err
		}
		it.Store.SetInventory(productID, fetched)
		current = fetched
	}

	delta := target - current.EffectiveQuantity()
	if delta == 0 {
		return current, nil
	}

	inv, err := it.Inventory.UpdateStock(ctx, productID, delta)
	if err != nil {
		it.Store.Notify(store.NotifyError, "Inventory", apiclient.Message(err))
		return domain.Inventory{}, err
	}

	it.Store.SetInventory(productID, inv)
	it.Store.Notify(store.NotifySuccess, "Inventory", "stock reset")
	return inv, nil
}
