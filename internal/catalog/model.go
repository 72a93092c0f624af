// Package catalog provides the read-side menu: categories and products with
// their per-size prices. The cart and order core only ever reads from it.
package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

type Size struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	CategoryID  string          `json:"category_id"`
	// Price is the base price; sizes carry their own price when present.
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url,omitempty"`
	Ingredients []string        `json:"ingredients,omitempty"`
	Sizes       []Size          `json:"sizes,omitempty"`
	IsAvailable bool            `json:"is_available"`
	IsFeatured  bool            `json:"is_featured"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SizeByName looks up one of the product's sizes.
func (p *Product) SizeByName(name string) (Size, bool) {
	for _, s := range p.Sizes {
		if s.Name == name {
			return s, true
		}
	}
	return Size{}, false
}

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateCategoryRequest payload of category creation (admin only).
// swagger:model CreateCategoryRequest
type CreateCategoryRequest struct {
	Name        string `json:"name"        example:"Pizza"`
	Description string `json:"description" example:"Our delicious handcrafted pizzas"`
	ImageURL    string `json:"image_url"`
	SortOrder   int    `json:"sort_order"  example:"1"`
}

// CreateProductRequest payload of product creation/update (admin only).
// Prices travel as strings to avoid float rounding, like NUMERIC in Postgres.
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	Name        string   `json:"name"        example:"NY Cheese Pizza"`
	Description string   `json:"description" example:"Classic New York style cheese pizza"`
	CategoryID  string   `json:"category_id" example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Price       string   `json:"price"       example:"12.95"`
	ImageURL    string   `json:"image_url"`
	Ingredients []string `json:"ingredients"`
	Sizes       []struct {
		Name  string `json:"name"  example:"Large 14\""`
		Price string `json:"price" example:"12.95"`
	} `json:"sizes"`
	IsFeatured bool `json:"is_featured"`
}
