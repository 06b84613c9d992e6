// Package web is the HTTP transport of the admin application: a chi router
// serving server-rendered pages. Handlers validate input, delegate to the
// interactors and render from the store; toasts come from the store's
// unread notifications.
package web

import (
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/murkotick/catalog-admin/internal/app/catalog/contracts"
	"github.com/murkotick/catalog-admin/internal/app/catalog/domain"
	"github.com/murkotick/catalog-admin/internal/app/catalog/queries/low_stock"
	"github.com/murkotick/catalog-admin/internal/app/catalog/store"
	"github.com/murkotick/catalog-admin/internal/app/catalog/usecases/adjust_stock"
	"github.com/murkotick/catalog-admin/internal/app/catalog/usecases/create_product"
	"github.com/murkotick/catalog-admin/internal/app/catalog/usecases/delete_product"
	"github.com/murkotick/catalog-admin/internal/app/catalog/usecases/load_page"
	"github.com/murkotick/catalog-admin/internal/app/catalog/usecases/load_product"
	"github.com/murkotick/catalog-admin/internal/app/catalog/usecases/reset_stock"
	"github.com/murkotick/catalog-admin/internal/app/catalog/usecases/update_product"
)

// Commands groups write interactors.
type Commands struct {
	Create *create_product.Interactor
	Update *update_product.Interactor
	Delete *delete_product.Interactor
	Adjust *adjust_stock.Interactor
	Reset  *reset_stock.Interactor
}

// Views groups the flows that fill the store for rendering.
type Views struct {
	LoadPage    *load_page.Interactor
	LoadProduct *load_product.Interactor
	LowStock    *low_stock.Handler
}

// Options are the render-time knobs.
type Options struct {
	DefaultPageSize   int
	LowStockThreshold int64
}

// Handler is the web transport adapter.
type Handler struct {
	commands Commands
	views    Views
	store    *store.Store
	prefs    contracts.PreferenceStorage
	opts     Options
	log      *slog.Logger
	tmpl     *template.Template
}

func NewHandler(cmd Commands, views Views, st *store.Store, prefs contracts.PreferenceStorage, opts Options, log *slog.Logger) *Handler {
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = 10
	}
	if opts.LowStockThreshold <= 0 {
		opts.LowStockThreshold = 5
	}
	return &Handler{
		commands: cmd,
		views:    views,
		store:    st,
		prefs:    prefs,
		opts:     opts,
		log:      log,
		tmpl:     mustParseTemplates(),
	}
}

// pageData is the shared render model every page embeds.
type pageData struct {
	Title          string
	Prefs          domain.Preferences
	Toasts         []store.Notification
	ProductsError  string
	InventoryError string
}

func (h *Handler) page(title string) pageData {
	return pageData{
		Title:          title,
		Prefs:          h.store.Preferences(),
		Toasts:         h.store.TakeUnread(),
		ProductsError:  h.store.ProductsError(),
		InventoryError: h.store.InventoryError(),
	}
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

type listData struct {
	pageData
	Products   []ProductView
	Pagination PaginationView
	Query      string
	PageSize   int
}

func (h *Handler) listPage(w http.ResponseWriter, r *http.Request) {
	page := h.pageParam(r)
	size := intParam(r, "size", h.opts.DefaultPageSize)
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	if query != "" {
		_ = h.views.LoadPage.Search(r.Context(), query, page, size)
	} else {
		_ = h.views.LoadPage.Execute(r.Context(), page, size)
	}

	// The page renders from the store even after a failed load; the error
	// flag drives the retry panel.
	data := listData{
		pageData:   h.page("Products"),
		Products:   productViews(h.store.Products(), h.store.AllInventory()),
		Pagination: paginationView(h.store.PageMeta(), page),
		Query:      query,
		PageSize:   size,
	}
	h.render(w, http.StatusOK, "products_list", data)
}

// pageParam resolves the requested page, falling back to the last viewed
// page from preferences when the URL carries none.
func (h *Handler) pageParam(r *http.Request) int {
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return h.store.Preferences().CurrentPage
}

type detailData struct {
	pageData
	Product ProductView
}

func (h *Handler) detailPage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	p, err := h.views.LoadProduct.Execute(r.Context(), id)
	if err != nil {
		h.errorPage(w, err)
		return
	}

	inv, cached := h.store.Inventory(id)
	data := detailData{
		pageData: h.page(p.Name),
		Product:  productView(p, inv, cached),
	}
	h.render(w, http.StatusOK, "product_detail", data)
}

// formView keeps raw field strings so invalid input re-renders as typed.
type formView struct {
	Name        string
	Description string
	Price       string
	SKU         string
}

type formData struct {
	pageData
	Form        formView
	FieldErrors map[string]string
	TopError    string
	Editing     bool
	ProductID   int64
}

func (h *Handler) newForm(w http.ResponseWriter, r *http.Request) {
	data := formData{pageData: h.page("New product")}
	h.render(w, http.StatusOK, "product_form", data)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	form, fv, verrs := parseProductForm(r)
	if len(verrs) > 0 {
		h.renderFormErrors(w, fv, verrs, nil, false, 0)
		return
	}

	if _, err := h.commands.Create.Execute(r.Context(), form); err != nil {
		var fieldErrs domain.ValidationErrors
		if asValidation(err, &fieldErrs) {
			h.renderFormErrors(w, fv, fieldErrs, nil, false, 0)
			return
		}
		h.renderFormErrors(w, fv, nil, err, false, 0)
		return
	}

	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func (h *Handler) editForm(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	p, err := h.views.LoadProduct.Execute(r.Context(), id)
	if err != nil {
		h.errorPage(w, err)
		return
	}

	data := formData{
		pageData: h.page("Edit " + p.Name),
		Form: formView{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price.StringFixed(2),
			SKU:         p.SKU,
		},
		Editing:   true,
		ProductID: id,
	}
	h.render(w, http.StatusOK, "product_form", data)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	form, fv, verrs := parseProductForm(r)
	if len(verrs) > 0 {
		h.renderFormErrors(w, fv, verrs, nil, true, id)
		return
	}

	patch := domain.ProductPatch{
		Name:        &form.Name,
		Description: &form.Description,
		Price:       &form.Price,
		SKU:         &form.SKU,
	}
	if _, err := h.commands.Update.Execute(r.Context(), id, patch); err != nil {
		h.renderFormErrors(w, fv, nil, err, true, id)
		return
	}

	http.Redirect(w, r, "/products/"+strconv.FormatInt(id, 10), http.StatusSeeOther)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	// The interactor already raised the failure toast; either way the user
	// lands back on the list.
	_ = h.commands.Delete.Execute(r.Context(), id)
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func (h *Handler) adjustStock(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	delta, err := strconv.ParseInt(r.FormValue("delta"), 10, 64)
	if err != nil || delta == 0 {
		http.Error(w, "delta must be a non-zero integer", http.StatusBadRequest)
		return
	}

	// Decrement is disabled once the cached quantity reaches zero.
	if delta < 0 {
		if inv, cached := h.store.Inventory(id); cached && !inv.Available() {
			h.store.Notify(store.NotifyWarning, "Inventory", "no stock left to remove")
			h.redirectBack(w, r, id)
			return
		}
	}

	_, _ = h.commands.Adjust.Execute(r.Context(), id, delta)
	h.redirectBack(w, r, id)
}

func (h *Handler) resetStock(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	target, err := strconv.ParseInt(r.FormValue("target"), 10, 64)
	if err != nil || target < 0 {
		http.Error(w, "target must be a non-negative integer", http.StatusBadRequest)
		return
	}

	_, _ = h.commands.Reset.Execute(r.Context(), id, target)
	h.redirectBack(w, r, id)
}

type lowStockData struct {
	pageData
	Products  []ProductView
	Threshold int64
}

func (h *Handler) lowStockPage(w http.ResponseWriter, r *http.Request) {
	threshold := int64(intParam(r, "threshold", int(h.opts.LowStockThreshold)))

	products, err := h.views.LowStock.Execute(r.Context(), threshold)
	if err != nil {
		h.errorPage(w, err)
		return
	}

	data := lowStockData{
		pageData:  h.page("Low stock"),
		Products:  productViews(products, h.store.AllInventory()),
		Threshold: threshold,
	}
	h.render(w, http.StatusOK, "low_stock", data)
}

func (h *Handler) toggleSidebar(w http.ResponseWriter, r *http.Request) {
	h.savePrefs(r, h.store.ToggleSidebar())
	h.redirectBack(w, r, 0)
}

func (h *Handler) toggleDarkMode(w http.ResponseWriter, r *http.Request) {
	h.savePrefs(r, h.store.ToggleDarkMode())
	h.redirectBack(w, r, 0)
}

func (h *Handler) savePrefs(r *http.Request, prefs domain.Preferences) {
	if err := h.prefs.Save(r.Context(), prefs); err != nil {
		h.log.Warn("saving preferences failed", "error", err)
	}
}

type errorData struct {
	pageData
	Message string
	Status  int
}

func (h *Handler) errorPage(w http.ResponseWriter, err error) {
	status := httpStatus(err)
	data := errorData{
		pageData: h.page("Error"),
		Message:  userMessage(err),
		Status:   status,
	}
	h.render(w, status, "error_page", data)
}

// renderFormErrors re-renders the form either with per-field validation
// messages or with a backend failure banner, whichever err carries.
func (h *Handler) renderFormErrors(w http.ResponseWriter, fv formView, verrs domain.ValidationErrors, backendErr error, editing bool, id int64) {
	title := "New product"
	if editing {
		title = "Edit product"
	}

	status := http.StatusUnprocessableEntity
	topError := ""
	if backendErr != nil {
		status = httpStatus(backendErr)
		topError = userMessage(backendErr)
	}

	data := formData{
		pageData:    h.page(title),
		Form:        fv,
		FieldErrors: verrs.ByField(),
		TopError:    topError,
		Editing:     editing,
		ProductID:   id,
	}
	h.render(w, status, "product_form", data)
}

func (h *Handler) idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// redirectBack returns to the referring page, defaulting to the product's
// detail page (or the list when no product is in play).
func (h *Handler) redirectBack(w http.ResponseWriter, r *http.Request, id int64) {
	if ref := r.Header.Get("Referer"); ref != "" {
		http.Redirect(w, r, ref, http.StatusSeeOther)
		return
	}
	if id > 0 {
		http.Redirect(w, r, "/products/"+strconv.FormatInt(id, 10), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

// parseProductForm builds the submit payload, collecting an unparsable
// price as a field error so it re-renders inline like any other check.
func parseProductForm(r *http.Request) (domain.ProductForm, formView, domain.ValidationErrors) {
	_ = r.ParseForm()

	fv := formView{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Price:       strings.TrimSpace(r.FormValue("price")),
		SKU:         strings.TrimSpace(r.FormValue("sku")),
	}

	form := domain.ProductForm{
		Name:        fv.Name,
		Description: fv.Description,
		SKU:         fv.SKU,
	}

	if fv.Price != "" {
		price, err := decimal.NewFromString(fv.Price)
		if err != nil {
			errs := form.Validate()
			errs = append(errs, domain.ValidationError{Field: "price", Message: "price must be a number"})
			return form, fv, errs
		}
		form.Price = price
	}

	return form, fv, form.Validate()
}

func intParam(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
