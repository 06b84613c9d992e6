// Package repo implements the gateway contracts over the HTTP adapters,
// applying envelope normalization to every response. Repositories never
// swallow errors and never retry; failures propagate to the interactors
// unchanged.
package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/murkotick/catalog-admin/internal/app/catalog/domain"
	"github.com/murkotick/catalog-admin/internal/pkg/apiclient"
	"github.com/murkotick/catalog-admin/internal/pkg/jsonapi"
)

const productsBasePath = "/api/products"

// ProductRepo talks to the products service.
type ProductRepo struct {
	api *apiclient.Client
}

func NewProductRepo(api *apiclient.Client) *ProductRepo {
	return &ProductRepo{api: api}
}

// bindProduct is the per-resource normalization strategy for products: the
// envelope id becomes the numeric product identifier, attributes merge in
// flat, the type member is discarded.
func bindProduct(r jsonapi.Resource) (domain.Product, error) {
	var p domain.Product
	if err := json.Unmarshal(r.Attributes, &p); err != nil {
		return p, fmt.Errorf("%w: product attributes: %v", jsonapi.ErrMalformedEnvelope, err)
	}

	id, err := r.ID.Int64()
	if err != nil {
		return p, err
	}
	p.ID = id
	return p, nil
}

// List fetches one page of products plus its pagination meta.
func (r *ProductRepo) List(ctx context.Context, page, size int) ([]domain.Product, *jsonapi.PageMeta, error) {
	raw, err := r.api.Get(ctx, productsBasePath, pageQuery(page, size))
	if err != nil {
		return nil, nil, err
	}
	return jsonapi.DecodeMany(raw, bindProduct)
}

// Get fetches one product. The products service answers this endpoint with a
// one-item collection envelope.
func (r *ProductRepo) Get(ctx context.Context, id int64) (domain.Product, error) {
	raw, err := r.api.Get(ctx, productPath(id), nil)
	if err != nil {
		return domain.Product{}, err
	}
	return jsonapi.DecodeFirst(raw, bindProduct)
}

// Create submits a new product and returns the server-assigned record.
func (r *ProductRepo) Create(ctx context.Context, form domain.ProductForm) (domain.Product, error) {
	raw, err := r.api.Post(ctx, productsBasePath, form)
	if err != nil {
		return domain.Product{}, err
	}
	return jsonapi.DecodeFirst(raw, bindProduct)
}

// Update applies a partial update and returns the updated record.
func (r *ProductRepo) Update(ctx context.Context, id int64, patch domain.ProductPatch) (domain.Product, error) {
	raw, err := r.api.Patch(ctx, productPath(id), patch)
	if err != nil {
		return domain.Product{}, err
	}
	return jsonapi.DecodeFirst(raw, bindProduct)
}

// Delete removes the product. The response carries no body.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	return r.api.Delete(ctx, productPath(id))
}

// SearchByName filters the listing server-side by name.
func (r *ProductRepo) SearchByName(ctx context.Context, name string, page, size int) ([]domain.Product, *jsonapi.PageMeta, error) {
	q := pageQuery(page, size)
	q.Set("name", name)

	raw, err := r.api.Get(ctx, productsBasePath, q)
	if err != nil {
		return nil, nil, err
	}
	return jsonapi.DecodeMany(raw, bindProduct)
}

// LowStock lists products whose stock is at or below threshold.
func (r *ProductRepo) LowStock(ctx context.Context, threshold int64) ([]domain.Product, *jsonapi.PageMeta, error) {
	q := url.Values{}
	q.Set("lowStock", "true")
	q.Set("threshold", strconv.FormatInt(threshold, 10))

	raw, err := r.api.Get(ctx, productsBasePath, q)
	if err != nil {
		return nil, nil, err
	}
	return jsonapi.DecodeMany(raw, bindProduct)
}

func productPath(id int64) string {
	return productsBasePath + "/" + strconv.FormatInt(id, 10)
}

func pageQuery(page, size int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	return q
}
