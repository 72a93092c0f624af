package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pizzeria/internal/auth"
	"pizzeria/internal/cart"
	"pizzeria/internal/order"
)

// createOrderHandler godoc
// @Summary  Check out the current cart
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    body body order.CreateOrderRequest true "contact info"
// @Success  201 {object} order.Order
// @Failure  400 {object} map[string]string
// @Security BearerAuth
// @Router   /orders [post]
func createOrderHandler(svc *order.Service, carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, _ := auth.CurrentUser(c)
		var req order.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}

		eng := carts.Get(u.ID)
		if err := eng.BeginCheckout(); err != nil {
			writeError(c, err)
			return
		}
		defer eng.EndCheckout()

		o, err := svc.Checkout(c.Request.Context(), u.ID, eng.Lines(), order.ContactInfo{
			Phone:           req.Phone,
			DeliveryAddress: req.DeliveryAddress,
			Notes:           req.Notes,
		})
		if err != nil {
			// cart untouched: the user retries without re-entering lines
			writeError(c, err)
			return
		}
		eng.Clear() // only once the order is safely recorded
		c.JSON(http.StatusCreated, o)
	}
}

// listOrdersHandler godoc
// @Summary  List orders, newest first (admins see everyone's)
// @Tags     orders
// @Produce  json
// @Param    limit  query int false "page size"
// @Param    offset query int false "page offset"
// @Success  200 {array} order.Order
// @Security BearerAuth
// @Router   /orders [get]
func listOrdersHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, _ := auth.CurrentUser(c)
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

		out, err := svc.List(c.Request.Context(), u.ID, u.IsAdmin, limit, offset)
		if err != nil {
			writeError(c, err)
			return
		}
		if out == nil {
			out = []order.Order{}
		}
		c.JSON(http.StatusOK, out)
	}
}

// updateOrderStatusHandler godoc
// @Summary  Move an order through its lifecycle
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id   path string                    true "order id"
// @Param    body body order.UpdateStatusRequest true "target status"
// @Success  200 {object} order.Order
// @Failure  409 {object} map[string]string "concurrent transition lost"
// @Failure  422 {object} map[string]string "illegal transition"
// @Security BearerAuth
// @Router   /orders/{id}/status [put]
func updateOrderStatusHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, _ := auth.CurrentUser(c)
		var req order.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}

		o, err := svc.Transition(c.Request.Context(), c.Param("id"), order.Status(req.Status), u != nil && u.IsAdmin)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}
