package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"pizzeria/internal/auth"
	"pizzeria/internal/cart"
	"pizzeria/internal/catalog"
)

// cartResponse is the cart as the clients render it: lines in insertion
// order plus derived totals.
// swagger:model cartResponse
type cartResponse struct {
	Items    []cart.Line     `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

func cartBody(e *cart.Engine) cartResponse {
	t := e.Totals()
	items := e.Lines()
	if items == nil {
		items = []cart.Line{}
	}
	return cartResponse{
		Items:    items,
		Subtotal: t.Subtotal,
		Tax:      t.Tax,
		Total:    t.Total,
		Count:    e.Count(),
	}
}

type addCartItemRequest struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	// Quantity defaults to 1 when omitted.
	Quantity *int `json:"quantity"`
}

type updateCartItemRequest struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// getCartHandler godoc
// @Summary  Current cart
// @Tags     cart
// @Produce  json
// @Success  200 {object} cartResponse
// @Security BearerAuth
// @Router   /cart [get]
func getCartHandler(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, _ := auth.CurrentUser(c)
		c.JSON(http.StatusOK, cartBody(carts.Get(u.ID)))
	}
}

// addCartItemHandler godoc
// @Summary  Add a product to the cart
// @Tags     cart
// @Accept   json
// @Produce  json
// @Param    body body addCartItemRequest true "item"
// @Success  200 {object} cartResponse
// @Security BearerAuth
// @Router   /cart/items [post]
func addCartItemHandler(carts *cart.Manager, menu catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, _ := auth.CurrentUser(c)
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
			return
		}
		qty := 1
		if req.Quantity != nil {
			qty = *req.Quantity
		}
		p, err := menu.ProductByID(c.Request.Context(), req.ProductID)
		if err != nil {
			writeError(c, err)
			return
		}
		eng := carts.Get(u.ID)
		if err := eng.AddItem(p, req.Size, qty); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, cartBody(eng))
	}
}

// updateCartItemHandler godoc
// @Summary  Set a line's quantity (zero or less removes it)
// @Tags     cart
// @Accept   json
// @Produce  json
// @Param    body body updateCartItemRequest true "item"
// @Success  200 {object} cartResponse
// @Security BearerAuth
// @Router   /cart/items [put]
func updateCartItemHandler(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, _ := auth.CurrentUser(c)
		var req updateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
			return
		}
		eng := carts.Get(u.ID)
		eng.UpdateQuantity(cart.Key{ProductID: req.ProductID, Size: req.Size}, req.Quantity)
		c.JSON(http.StatusOK, cartBody(eng))
	}
}

// removeCartItemHandler godoc
// @Summary  Remove one line from the cart
// @Tags     cart
// @Produce  json
// @Param    product_id query string true  "product id"
// @Param    size       query string false "size name"
// @Success  200 {object} cartResponse
// @Security BearerAuth
// @Router   /cart/items [delete]
func removeCartItemHandler(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, _ := auth.CurrentUser(c)
		pid := c.Query("product_id")
		if pid == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
			return
		}
		eng := carts.Get(u.ID)
		eng.RemoveItem(cart.Key{ProductID: pid, Size: c.Query("size")})
		c.JSON(http.StatusOK, cartBody(eng))
	}
}

// clearCartHandler godoc
// @Summary  Empty the cart
// @Tags     cart
// @Produce  json
// @Success  200 {object} cartResponse
// @Security BearerAuth
// @Router   /cart [delete]
func clearCartHandler(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, _ := auth.CurrentUser(c)
		eng := carts.Get(u.ID)
		eng.Clear()
		c.JSON(http.StatusOK, cartBody(eng))
	}
}
