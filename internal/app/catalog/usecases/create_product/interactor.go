// Package create_product implements the create flow: local field validation
// first, then one create request, then store reconciliation and a toast.
package create_product

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

// Execute validates the form and creates the product. A validation failure
// returns domain.ValidationErrors without issuing any network call.
func (it *Interactor) Execute(ctx context.Context, form domain.ProductForm) (domain.Product, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return domain.Product{}, errs
	}

	p, err := it.Products.Create(ctx, form)
	if err != nil {
		it.Store.Notify(store.NotifyError, "Products", apiclient.Message(err))
		return domain.Product{}, err
	}

	it.Store.PrependProduct(p)
	it.Store.Notify(store.NotifySuccess, "Products", "product created")
	return p, nil
}
