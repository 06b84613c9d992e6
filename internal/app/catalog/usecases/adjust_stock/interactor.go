// Package adjust_stock implements relative stock changes. The backend owns
// clamping at zero; the store is updated from its response, never from the
// requested delta.
package adjust_stock

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

// Execute applies a signed quantity change for one product.
func (it *Interactor) Execute(ctx context.Context, productID, delta int64) (domain.Inventory, error) {
	inv, err := it.Inventory.UpdateStock(ctx, productID, delta)
	if err != nil {
		it.Store.Notify(store.NotifyError, "Inventory", apiclient.Message(err))
		return domain.Inventory{}, err
	}

	it.Store.SetInventory(productID, inv)

	msg := "stock increased"
	if delta < 0 {
		msg = "stock decreased"
	}
	it.Store.Notify(store.NotifySuccess, "Inventory", msg)

	return inv, nil
}
