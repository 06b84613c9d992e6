// Package update_product implements the partial-update flow.
package update_product

import (
	"context"

	"github.com/murkotick/catalog-admin/internal/app/catalog/contracts"
	"github.com/murkotick/catalog-admin/internal/app/catalog/domain"
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

// Execute updates the product and reconciles both the cached list and the
// detail view if it shows the same product.
func (it *Interactor) Execute(ctx context.Context, id int64, patch domain.ProductPatch) (domain.Product, error) {
	p, err := it.Products.Update(ctx, id, patch)
	if err != nil {
		it.Store.Notify(store.NotifyError, "Products", apiclient.Message(err))
		return domain.Product{}, err
	}

	it.Store.UpdateProductInList(p)
	if cur := it.Store.CurrentProduct(); cur != nil && cur.ID == id {
		it.Store.SetCurrentProduct(&p)
	}

	it.Store.Notify(store.NotifySuccess, "Products", "product updated")
	return p, nil
}
