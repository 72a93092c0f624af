package order

// CreateOrderRequest payload of checkout. Line items come from the caller's
// server-held cart, not from this payload.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	Phone           string `json:"phone"            example:"+1 555 010 0199"`
	DeliveryAddress string `json:"delivery_address" example:"12 Mulberry St"`
	Notes           string `json:"notes"            example:"ring twice"`
}

// UpdateStatusRequest payload of an admin status transition.
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	Status string `json:"status" example:"confirmed"`
}
