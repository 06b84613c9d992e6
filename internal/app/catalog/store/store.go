// Package store holds the application's single source of truth: the current
// page of products, per-product inventory, independent loading/error flags,
// pagination state, notifications, and UI preferences. The store is injected
// explicitly into interactors and handlers; it is never a package singleton.
//
// A RWMutex guards all state. Writers for different inventory keys are
// independent; two writers racing on the same key follow last-write-wins
// with no conflict detection.
package store

import (
	"sync"

	"github.com/murkotick/catalog-admin/internal/app/catalog/domain"
	"github.com/murkotick/catalog-admin/internal/pkg/clock"
	"github.com/murkotick/catalog-admin/internal/pkg/jsonapi"
)

type Store struct {
	mu  sync.RWMutex
	clk clock.Clock

	products []domain.Product
	current  *domain.Product

	inventory map[int64]domain.Inventory

	productsLoading  bool
	inventoryLoading bool
	productsErr      string
	inventoryErr     string

	pageMeta *jsonapi.PageMeta
	prefs    domain.Preferences

	notifications []Notification
}

func New(clk clock.Clock) *Store {
	return &Store{
		clk:       clk,
		inventory: make(map[int64]domain.Inventory),
	}
}

// SetProducts replaces the cached product list wholesale. No merging.
func (s *Store) SetProducts(products []domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]domain.Product(nil), products...)
}

// PrependProduct puts a freshly created product at the head of the list.
func (s *Store) PrependProduct(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]domain.Product{p}, s.products...)
}

// Products returns a copy of the cached list.
func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Product(nil), s.products...)
}

// UpdateProductInList replaces the entry with the same identifier in place.
// A product that is not in the list is a no-op.
func (s *Store) UpdateProductInList(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return
		}
	}
}

// RemoveProductFromList filters the product out. Removing an absent
// identifier is a no-op, so the operation is idempotent.
func (s *Store) RemoveProductFromList(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
}

// SetCurrentProduct records the product shown in the detail view; nil clears it.
func (s *Store) SetCurrentProduct(p *domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p == nil {
		s.current = nil
		return
	}
	cp := *p
	s.current = &cp
}

// CurrentProduct returns a copy of the detail-view product, or nil.
func (s *Store) CurrentProduct() *domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// SetInventory upserts one entry in the inventory map without touching
// unrelated entries.
func (s *Store) SetInventory(productID int64, inv domain.Inventory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventory[productID] = inv
}

// Inventory looks up the cached stock record for one product.
func (s *Store) Inventory(productID int64) (domain.Inventory, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inv, ok := s.inventory[productID]
	return inv, ok
}

// AllInventory returns a copy of the inventory map.
func (s *Store) AllInventory() map[int64]domain.Inventory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int64]domain.Inventory, len(s.inventory))
	for k, v := range s.inventory {
		out[k] = v
	}
	return out
}

// Loading and error flags are independent per domain; a successful load of
// one domain never clears the other's error.

func (s *Store) SetProductsLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.productsLoading = v
}

func (s *Store) ProductsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.productsLoading
}

func (s *Store) SetInventoryLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventoryLoading = v
}

func (s *Store) InventoryLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inventoryLoading
}

// SetProductsError sets the products error flag; empty string clears it.
func (s *Store) SetProductsError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.productsErr = msg
}

func (s *Store) ProductsError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.productsErr
}

// SetInventoryError sets the inventory error flag; empty string clears it.
func (s *Store) SetInventoryError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventoryErr = msg
}

func (s *Store) InventoryError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inventoryErr
}

// ClearErrors resets both domain error flags.
func (s *Store) ClearErrors() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.productsErr = ""
	s.inventoryErr = ""
}

// SetPageMeta records the pagination block of the last list fetch.
func (s *Store) SetPageMeta(meta *jsonapi.PageMeta) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pageMeta = meta
}

func (s *Store) PageMeta() *jsonapi.PageMeta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pageMeta == nil {
		return nil
	}
	cp := *s.pageMeta
	return &cp
}

// Preferences returns the current UI preferences.
func (s *Store) Preferences() domain.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

// RestorePreferences installs preferences loaded from durable storage.
func (s *Store) RestorePreferences(p domain.Preferences) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = p
}

// ToggleSidebar flips the sidebar flag and returns the new preferences
// snapshot for persisting.
func (s *Store) ToggleSidebar() domain.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.SidebarOpen = !s.prefs.SidebarOpen
	return s.prefs
}

// ToggleDarkMode flips the dark-mode flag and returns the new snapshot.
func (s *Store) ToggleDarkMode() domain.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.DarkMode = !s.prefs.DarkMode
	return s.prefs
}

// SetCurrentPage records the last viewed page and returns the new snapshot.
func (s *Store) SetCurrentPage(page int) domain.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.CurrentPage = page
	return s.prefs
}

// Reset drops all volatile state. Preferences survive.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = nil
	s.current = nil
	s.inventory = make(map[int64]domain.Inventory)
	s.productsLoading = false
	s.inventoryLoading = false
	s.productsErr = ""
	s.inventoryErr = ""
	s.pageMeta = nil
	s.notifications = nil
}
