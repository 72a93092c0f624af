package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pizzeria/internal/auth"
	"pizzeria/internal/cart"
	"pizzeria/internal/catalog"
	"pizzeria/internal/order"
)

// writeError translates domain errors into HTTP statuses. Everything
// unrecognized is a 500 so transport failures stay visible to the caller.
func writeError(c *gin.Context, err error) {
	var (
		conflict *order.ConflictError
		illegal  *order.IllegalTransitionError
	)
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, order.ErrPhoneRequired),
		errors.Is(err, order.ErrUnknownStatus),
		errors.Is(err, cart.ErrQuantityInvalid),
		errors.Is(err, cart.ErrUnknownSize),
		errors.Is(err, auth.ErrMissingFields),
		errors.Is(err, auth.ErrAlreadyExist):
		status = http.StatusBadRequest
	case errors.Is(err, auth.ErrUnauthenticated),
		errors.Is(err, auth.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, auth.ErrAdminRequired):
		status = http.StatusForbidden
	case errors.Is(err, order.ErrNotFound),
		errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, auth.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, cart.ErrCheckoutBusy):
		status = http.StatusConflict
	case errors.As(err, &conflict):
		status = http.StatusConflict
	case errors.As(err, &illegal):
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// registerHandler godoc
// @Summary  Create an account
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body auth.RegisterRequest true "account"
// @Success  201 {object} auth.AuthResponse
// @Router   /auth/register [post]
func registerHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req auth.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		out, err := svc.Register(c.Request.Context(), req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

// loginHandler godoc
// @Summary  Authenticate
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body auth.LoginRequest true "credentials"
// @Success  200 {object} auth.AuthResponse
// @Router   /auth/login [post]
func loginHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req auth.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		out, err := svc.Login(c.Request.Context(), req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
