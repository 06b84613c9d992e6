package create_product

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/catalog-admin/internal/app/catalog/domain"
	"github.com/murkotick/catalog-admin/internal/app/catalog/store"
	"github.com/murkotick/catalog-admin/internal/pkg/apiclient"
	"github.com/murkotick/catalog-admin/internal/pkg/clock"
	"github.com/murkotick/catalog-admin/internal/pkg/jsonapi"
)

// countingGateway fails the test if any method other than Create is hit and
// counts Create calls.
type countingGateway struct {
	creates  int
	createFn func(form domain.ProductForm) (domain.Product, error)
}

func (g *countingGateway) Create(_ context.Context, form domain.ProductForm) (domain.Product, error) {
	g.creates++
	return g.createFn(form)
}

func (g *countingGateway) List(context.Context, int, int) ([]domain.Product, *jsonapi.PageMeta, error) {
	panic("not used")
}

func (g *countingGateway) Get(context.Context, int64) (domain.Product, error) { panic("not used") }

func (g *countingGateway) Update(context.Context, int64, domain.ProductPatch) (domain.Product, error) {
	panic("not used")
}

func (g *countingGateway) Delete(context.Context, int64) error { panic("not used") }

func (g *countingGateway) SearchByName(context.Context, string, int, int) ([]domain.Product, *jsonapi.PageMeta, error) {
	panic("not used")
}

func (g *countingGateway) LowStock(context.Context, int64) ([]domain.Product, *jsonapi.PageMeta, error) {
	panic("not used")
}

func newTestStore() *store.Store {
	return store.New(clock.NewFake(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)))
}

func validForm() domain.ProductForm {
	return domain.ProductForm{
		Name:        "Grinder",
		Description: "A flat-burr coffee grinder.",
		Price:       decimal.RequireFromString("219.00"),
		SKU:         "GRD-001",
	}
}

func TestExecute_ValidationBlocksNetwork(t *testing.T) {
	gw := &countingGateway{}
	it := NewInteractor(gw, newTestStore())

	_, err := it.Execute(context.Background(), domain.ProductForm{Name: "x"})

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.NotEmpty(t, verrs)
	assert.Zero(t, gw.creates, "validation failure must not reach the gateway")
}

func TestExecute_PrependsAndNotifies(t *testing.T) {
	gw := &countingGateway{
		createFn: func(form domain.ProductForm) (domain.Product, error) {
			return domain.Product{ID: 42, Name: form.Name, SKU: form.SKU, Price: form.Price, Description: form.Description}, nil
		},
	}
	st := newTestStore()
	st.SetProducts([]domain.Product{{ID: 1, Name: "Existing"}})
	it := NewInteractor(gw, st)

	p, err := it.Execute(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, int64(42), p.ID)
	assert.Equal(t, 1, gw.creates)

	got := st.Products()
	require.Len(t, got, 2)
	assert.Equal(t, int64(42), got[0].ID, "created product goes to the head")

	toasts := st.TakeUnread()
	require.Len(t, toasts, 1)
	assert.Equal(t, store.NotifySuccess, toasts[0].Type)
	assert.Equal(t, "product created", toasts[0].Message)
}

func TestExecute_BackendFailure(t *testing.T) {
	gw := &countingGateway{
		createFn: func(domain.ProductForm) (domain.Product, error) {
			return domain.Product{}, &apiclient.APIError{StatusCode: 409, Detail: "sku already exists"}
		},
	}
	st := newTestStore()
	it := NewInteractor(gw, st)

	_, err := it.Execute(context.Background(), validForm())
	require.Error(t, err)

	assert.Empty(t, st.Products(), "failed create adds nothing to the list")

	toasts := st.TakeUnread()
	require.Len(t, toasts, 1)
	assert.Equal(t, store.NotifyError, toasts[0].Type)
	assert.Equal(t, "sku already exists", toasts[0].Message)
}
