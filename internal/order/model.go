package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is created once from a cart snapshot. Lines and total are immutable
// after creation; status is the only field that may change, and only
// through Service.Transition.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Lines           []Line          `json:"items"`
	Phone           string          `json:"phone"`
	DeliveryAddress string          `json:"delivery_address,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          Status          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Line carries the unit price copied from the cart snapshot; it is never
// re-read from the catalog.
type Line struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"order_id"`
	ProductID string          `json:"product_id"`
	Size      string          `json:"size,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}
