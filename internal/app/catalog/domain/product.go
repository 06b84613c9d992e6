package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Both backends carry prices as plain JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is the flat catalog record used throughout the application.
// The identifier is server-assigned; the application only holds cached copies.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	SKU         string          `json:"sku"`
}

// ProductForm carries the fields a user submits when creating a product.
type ProductForm struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	SKU         string          `json:"sku"`
}

// ProductPatch is a partial update; nil fields are left untouched server-side.
type ProductPatch struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	SKU         *string          `json:"sku,omitempty"`
}

// Validate runs the client-side field checks that must block submission
// before any network call. It returns one ValidationError per failing field.
func (f ProductForm) Validate() ValidationErrors {
	var errs ValidationErrors

	if len(strings.TrimSpace(f.Name)) < 2 {
		errs = append(errs, ValidationError{Field: "name", Message: "name must be at least 2 characters"})
	}
	if len(strings.TrimSpace(f.Description)) < 10 {
		errs = append(errs, ValidationError{Field: "description", Message: "description must be at least 10 characters"})
	}
	if !f.Price.IsPositive() {
		errs = append(errs, ValidationError{Field: "price", Message: "price must be greater than 0"})
	}
	if strings.TrimSpace(f.SKU) == "" {
		errs = append(errs, ValidationError{Field: "sku", Message: "sku is required"})
	}

	return errs
}
