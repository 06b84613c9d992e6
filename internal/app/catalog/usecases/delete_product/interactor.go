// Package delete_product implements the delete flow.
package delete_product

import (
	"context"

	"github.com/murkotick/catalog-admin/internal/app/catalog/contracts"
	"github.com/murkotick/catalog-admin/internal/app/catalog/store"
	"github.com/murkotick/catalog-admin/internal/pkg/apiclient"
)

type Interactor struct {
	Products contracts.ProductGateway
	Store    *store.Store
}

func NewInteractor(products contracts.ProductGateway, st *store.Store) *Interactor {
	return &Interactor{Products: products, Store: st}
}

// Execute deletes the product and drops it from the cached list. Removal is
// idempotent on the store side.
func (it *Interactor) Execute(ctx context.Context, id int64) error {
	if err := it.Products.Delete(ctx, id); err != nil {
		it.Store.Notify(store.NotifyError, "Products", apiclient.Message(err))
		return err
	}

	it.Store.RemoveProductFromList(id)
	if cur := it.Store.CurrentProduct(); cur != nil && cur.ID == id {
		it.Store.SetCurrentProduct(nil)
	}

	it.Store.Notify(store.NotifySuccess, "Products", "product deleted")
	return nil
}
