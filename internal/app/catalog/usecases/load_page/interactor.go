// Package load_page orchestrates the product-list flow: fetch one page of
// products, then enrich it with per-product inventory in parallel.
//
// The failure policy is asymmetric on purpose: a failed product-list call is
// a hard failure (error flag plus toast), while a failed inventory lookup
// for a single product is logged and skipped so the page still renders, with
// that product shown as unavailable.
package load_page

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/murkotick/catalog-admin/internal/app/catalog/contracts"
	"github.com/murkotick/catalog-admin/internal/app/catalog/domain"
	"github.com/murkotick/catalog-admin/internal/app/catalog/store"
	"github.com/murkotick/catalog-admin/internal/pkg/apiclient"
	"github.com/murkotick/catalog-admin/internal/pkg/jsonapi"
)

// Interactor loads pages of the product list into the store.
type Interactor struct {
	Products  contracts.ProductGateway
	Inventory contracts.InventoryGateway
	Store     *store.Store
	Prefs     contracts.PreferenceStorage
	Log       *slog.Logger

	// seq tags every run; results belonging to a superseded run are
	// discarded instead of overwriting newer state.
	seq atomic.Uint64
}

// NewInteractor constructs the interactor.
func NewInteractor(products contracts.ProductGateway, inventory contracts.InventoryGateway, st *store.Store, prefs contracts.PreferenceStorage, log *slog.Logger) *Interactor {
	return &Interactor{Products: products, Inventory: inventory, Store: st, Prefs: prefs, Log: log}
}

// Execute loads one page of products and its inventory.
func (it *Interactor) Execute(ctx context.Context, page, size int) error {
	return it.run(ctx, page, func(ctx context.Context) ([]domain.Product, *jsonapi.PageMeta, error) {
		return it.Products.List(ctx, page, size)
	})
}

// Search loads a server-side name search result into the same list state.
// It shares the sequence counter with Execute because both write the same
// logical list.
func (it *Interactor) Search(ctx context.Context, name string, page, size int) error {
	return it.run(ctx, page, func(ctx context.Context) ([]domain.Product, *jsonapi.PageMeta, error) {
		return it.Products.SearchByName(ctx, name, page, size)
	})
}

func (it *Interactor) run(ctx context.Context, page int, fetch func(context.Context) ([]domain.Product, *jsonapi.PageMeta, error)) error {
	mySeq := it.seq.Add(1)

	it.Store.SetProductsLoading(true)
	it.Store.SetProductsError("")

	products, meta, err := fetch(ctx)
	if err != nil {
		if it.latest(mySeq) {
			msg := apiclient.Message(err)
			it.Store.SetProductsError(msg)
			it.Store.Notify(store.NotifyError, "Products", msg)
			it.Store.SetProductsLoading(false)
		}
		return err
	}

	if !it.latest(mySeq) {
		// A newer page load was issued while this one was in flight.
		return nil
	}

	it.Store.SetProducts(products)
	it.Store.SetPageMeta(meta)
	it.Store.SetProductsLoading(false)

	prefs := it.Store.SetCurrentPage(page)
	if err := it.Prefs.Save(ctx, prefs); err != nil {
		it.Log.Warn("saving preferences failed", "error", err)
	}

	it.loadInventory(ctx, mySeq, products)
	return nil
}

// loadInventory is the secondary enrichment fetch. Individual failures have
// already been logged and dropped by the gateway's all-settled join.
func (it *Interactor) loadInventory(ctx context.Context, mySeq uint64, products []domain.Product) {
	if len(products) == 0 {
		return
	}

	it.Store.SetInventoryLoading(true)
	defer it.Store.SetInventoryLoading(false)

	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	records := it.Inventory.GetMany(ctx, ids)
	if !it.latest(mySeq) {
		return
	}
	for id, inv := range records {
		it.Store.SetInventory(id, inv)
	}
}

func (it *Interactor) latest(seq uint64) bool {
	return it.seq.Load() == seq
}
