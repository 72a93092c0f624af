package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginswagger "github.com/swaggo/gin-swagger"

	"pizzeria/internal/auth"
	"pizzeria/internal/cart"
	"pizzeria/internal/catalog"
	"pizzeria/internal/httpx"
	"pizzeria/internal/order"
)

type deps struct {
	auth   *auth.Service
	tokens *auth.Tokens
	users  auth.Repository
	menu   catalog.Repository
	orders *order.Service
	carts  *cart.Manager
}

func newRouter(d deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(), httpx.CORS())

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/swagger/*any", ginswagger.WrapHandler(swaggerfiles.Handler))

	api := r.Group("/api")
	api.POST("/auth/register", registerHandler(d.auth))
	api.POST("/auth/login", loginHandler(d.auth))
	api.GET("/categories", listCategoriesHandler(d.menu))
	api.GET("/products", listProductsHandler(d.menu))
	api.GET("/products/:id", getProductHandler(d.menu))
	api.POST("/init-data", initDataHandler(d.menu))

	authed := api.Group("", auth.Identity(d.tokens, d.users))
	authed.GET("/cart", getCartHandler(d.carts))
	authed.POST("/cart/items", addCartItemHandler(d.carts, d.menu))
	authed.PUT("/cart/items", updateCartItemHandler(d.carts))
	authed.DELETE("/cart/items", removeCartItemHandler(d.carts))
	authed.DELETE("/cart", clearCartHandler(d.carts))
	authed.POST("/orders", createOrderHandler(d.orders, d.carts))
	authed.GET("/orders", listOrdersHandler(d.orders))

	admin := authed.Group("", auth.RequireAdmin())
	admin.POST("/categories", createCategoryHandler(d.menu))
	admin.POST("/products", createProductHandler(d.menu))
	admin.PUT("/products/:id", updateProductHandler(d.menu))
	admin.PUT("/orders/:id/status", updateOrderStatusHandler(d.orders))

	return r
}
