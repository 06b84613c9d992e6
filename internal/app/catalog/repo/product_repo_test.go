package repo

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/catalog-admin/internal/app/catalog/domain"
	"github.com/murkotick/catalog-admin/internal/pkg/apiclient"
	"github.com/murkotick/catalog-admin/internal/pkg/jsonapi"
)

func newTestClient(srv *httptest.Server) *apiclient.Client {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return apiclient.New("products", srv.URL, "test-key", time.Second, log)
}

const productEnvelope = `{
	"data":[{"id":"12","type":"product","attributes":{
		"name":"Grinder","description":"Flat-burr grinder.","price":219.5,"sku":"GRD-001"
	}}],
	"meta":{"totalElements":1,"totalPages":1,"pageNumber":0,"pageSize":10}
}`

func TestList_PathAndPagination(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Encode()
		_, _ = w.Write([]byte(productEnvelope))
	}))
	defer srv.Close()

	r := NewProductRepo(newTestClient(srv))
	products, meta, err := r.List(context.Background(), 2, 10)
	require.NoError(t, err)

	assert.Equal(t, "/api/products", gotPath)
	assert.Equal(t, "page=2&size=10", gotQuery)

	require.Len(t, products, 1)
	assert.Equal(t, int64(12), products[0].ID)
	assert.Equal(t, "Grinder", products[0].Name)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("219.5")))

	require.NotNil(t, meta)
	assert.Equal(t, 1, meta.TotalElements)
}

func TestGet_UnwrapsOneItemCollection(t *testing.T) {
	// Single-resource endpoints answer with a one-item collection envelope.
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(productEnvelope))
	}))
	defer srv.Close()

	r := NewProductRepo(newTestClient(srv))
	p, err := r.Get(context.Background(), 12)
	require.NoError(t, err)

	assert.Equal(t, "/api/products/12", gotPath)
	assert.Equal(t, int64(12), p.ID)
	assert.Equal(t, "GRD-001", p.SKU)
}

func TestGet_EmptyCollectionIsMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	r := NewProductRepo(newTestClient(srv))
	_, err := r.Get(context.Background(), 12)
	require.ErrorIs(t, err, jsonapi.ErrMalformedEnvelope)
}

func TestCreate_PostsFormAndReturnsRecord(t *testing.T) {
	var gotMethod string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(productEnvelope))
	}))
	defer srv.Close()

	r := NewProductRepo(newTestClient(srv))
	form := domain.ProductForm{
		Name:        "Grinder",
		Description: "Flat-burr grinder.",
		Price:       decimal.RequireFromString("219.50"),
		SKU:         "GRD-001",
	}
	p, err := r.Create(context.Background(), form)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.JSONEq(t, `{"name":"Grinder","description":"Flat-burr grinder.","price":219.5,"sku":"GRD-001"}`, string(gotBody))
	assert.Equal(t, int64(12), p.ID)
}

func TestUpdate_PatchOmitsNilFields(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(productEnvelope))
	}))
	defer srv.Close()

	r := NewProductRepo(newTestClient(srv))
	name := "Renamed"
	_, err := r.Update(context.Background(), 12, domain.ProductPatch{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/api/products/12", gotPath)
	assert.JSONEq(t, `{"name":"Renamed"}`, string(gotBody))
}

func TestSearchByName_QueryParam(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Encode()
		_, _ = w.Write([]byte(productEnvelope))
	}))
	defer srv.Close()

	r := NewProductRepo(newTestClient(srv))
	_, _, err := r.SearchByName(context.Background(), "grinder", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, "name=grinder&page=0&size=10", gotQuery)
}

func TestLowStock_QueryParams(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Encode()
		_, _ = w.Write([]byte(productEnvelope))
	}))
	defer srv.Close()

	r := NewProductRepo(newTestClient(srv))
	_, _, err := r.LowStock(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "lowStock=true&threshold=5", gotQuery)
}

func TestDelete_Path(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	r := NewProductRepo(newTestClient(srv))
	require.NoError(t, r.Delete(context.Background(), 12))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/products/12", gotPath)
}

func TestList_BackendErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"errors":[{"status":"503","title":"Down","detail":"catalog is down"}]}`))
	}))
	defer srv.Close()

	r := NewProductRepo(newTestClient(srv))
	_, _, err := r.List(context.Background(), 0, 10)

	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 503, apiErr.StatusCode)
	assert.Equal(t, "catalog is down", apiErr.Detail)
}
