package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/murkotick/catalog-admin/internal/app/catalog/domain"
	"github.com/murkotick/catalog-admin/internal/pkg/apiclient"
	"github.com/murkotick/catalog-admin/internal/pkg/jsonapi"
)

const inventoryBasePath = "/api/inventory"

// stockChange is the relative-update request body. Mutations are always a
// signed delta, never an absolute set.
type stockChange struct {
	ChangeQuantity int64 `json:"changeQuantity"`
}

// InventoryRepo talks to the inventory service.
type InventoryRepo struct {
	api *apiclient.Client
	log *slog.Logger
}

func NewInventoryRepo(api *apiclient.Client, log *slog.Logger) *InventoryRepo {
	return &InventoryRepo{api: api, log: log}
}

// bindInventory is the inventory normalization strategy. Unlike products,
// the envelope id here is the product identifier, so it lands on
// Inventory.ProductID rather than a generic id field.
func bindInventory(r jsonapi.Resource) (domain.Inventory, error) {
	var inv domain.Inventory
	if err := json.Unmarshal(r.Attributes, &inv); err != nil {
		return inv, fmt.Errorf("%w: inventory attributes: %v", jsonapi.ErrMalformedEnvelope, err)
	}

	productID, err := r.ID.Int64()
	if err != nil {
		return inv, err
	}
	inv.ProductID = productID
	return inv, nil
}

// GetByProductID fetches the stock record for one product.
func (r *InventoryRepo) GetByProductID(ctx context.Context, productID int64) (domain.Inventory, error) {
	raw, err := r.api.Get(ctx, inventoryPath(productID), nil)
	if err != nil {
		return domain.Inventory{}, err
	}
	return jsonapi.DecodeOne(raw, bindInventory)
}

// UpdateStock applies a signed quantity change and returns the new record.
func (r *InventoryRepo) UpdateStock(ctx context.Context, productID, delta int64) (domain.Inventory, error) {
	raw, err := r.api.Post(ctx, inventoryPath(productID)+"/update", stockChange{ChangeQuantity: delta})
	if err != nil {
		return domain.Inventory{}, err
	}
	return jsonapi.DecodeOne(raw, bindInventory)
}

// GetMany fetches stock for several products concurrently, one request per
// identifier. The join is all-settled: a failed lookup is logged and left
// out of the result so the rest of the batch still lands.
func (r *InventoryRepo) GetMany(ctx context.Context, productIDs []int64) map[int64]domain.Inventory {
	out := make(map[int64]domain.Inventory, len(productIDs))

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, id := range productIDs {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()

			inv, err := r.GetByProductID(ctx, id)
			if err != nil {
				r.log.Warn("inventory lookup skipped", "product_id", id, "error", err)
				return
			}

			mu.Lock()
			out[id] = inv
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	return out
}

func inventoryPath(productID int64) string {
	return inventoryBasePath + "/" + strconv.FormatInt(productID, 10)
}
