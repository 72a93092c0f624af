package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pizzeria/internal/catalog"
)

// listCategoriesHandler godoc
// @Summary  List active categories
// @Tags     catalog
// @Produce  json
// @Success  200 {array} catalog.Category
// @Router   /categories [get]
func listCategoriesHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.Categories(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		if out == nil {
			out = []catalog.Category{}
		}
		c.JSON(http.StatusOK, out)
	}
}

// createCategoryHandler godoc
// @Summary  Create a category
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    body body catalog.CreateCategoryRequest true "category"
// @Success  201 {object} catalog.Category
// @Security BearerAuth
// @Router   /categories [post]
func createCategoryHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req catalog.CreateCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}
		cat := &catalog.Category{
			ID:          uuid.NewString(),
			Name:        req.Name,
			Description: req.Description,
			ImageURL:    req.ImageURL,
			IsActive:    true,
			SortOrder:   req.SortOrder,
			CreatedAt:   time.Now().UTC(),
		}
		if err := repo.CreateCategory(c.Request.Context(), cat); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, cat)
	}
}

// listProductsHandler godoc
// @Summary  List available products
// @Tags     catalog
// @Produce  json
// @Param    category_id query string false "filter by category"
// @Param    featured    query bool   false "filter by featured flag"
// @Success  200 {array} catalog.Product
// @Router   /products [get]
func listProductsHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := catalog.Filter{CategoryID: c.Query("category_id")}
		if raw := c.Query("featured"); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "featured must be a boolean"})
				return
			}
			f.Featured = &v
		}
		f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
		f.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

		out, err := repo.Products(c.Request.Context(), f)
		if err != nil {
			writeError(c, err)
			return
		}
		if out == nil {
			out = []catalog.Product{}
		}
		c.JSON(http.StatusOK, out)
	}
}

// getProductHandler godoc
// @Summary  Fetch one product
// @Tags     catalog
// @Produce  json
// @Param    id path string true "product id"
// @Success  200 {object} catalog.Product
// @Failure  404 {object} map[string]string
// @Router   /products/{id} [get]
func getProductHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := repo.ProductByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// createProductHandler godoc
// @Summary  Create a product
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    body body catalog.CreateProductRequest true "product"
// @Success  201 {object} catalog.Product
// @Security BearerAuth
// @Router   /products [post]
func createProductHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := bindProduct(c)
		if !ok {
			return
		}
		p.ID = uuid.NewString()
		p.IsAvailable = true
		p.CreatedAt = time.Now().UTC()
		p.UpdatedAt = p.CreatedAt
		if err := repo.CreateProduct(c.Request.Context(), p); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// updateProductHandler godoc
// @Summary  Replace a product
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    id   path string                        true "product id"
// @Param    body body catalog.CreateProductRequest true "product"
// @Success  200 {object} catalog.Product
// @Security BearerAuth
// @Router   /products/{id} [put]
func updateProductHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		existing, err := repo.ProductByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		p, ok := bindProduct(c)
		if !ok {
			return
		}
		p.ID = existing.ID
		p.IsAvailable = existing.IsAvailable
		p.CreatedAt = existing.CreatedAt
		p.UpdatedAt = time.Now().UTC()
		if err := repo.UpdateProduct(c.Request.Context(), p); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// initDataHandler godoc
// @Summary  Seed the sample menu
// @Tags     catalog
// @Produce  json
// @Success  200 {object} map[string]string
// @Router   /init-data [post]
func initDataHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		seeded, err := catalog.Seed(c.Request.Context(), repo)
		if err != nil {
			writeError(c, err)
			return
		}
		msg := "Sample data already exists"
		if seeded {
			msg = "Sample data initialized successfully"
		}
		c.JSON(http.StatusOK, gin.H{"message": msg})
	}
}

func bindProduct(c *gin.Context) (*catalog.Product, bool) {
	var req catalog.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.CategoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and category_id are required"})
		return nil, false
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
		return nil, false
	}
	p := &catalog.Product{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Price:       price,
		ImageURL:    req.ImageURL,
		Ingredients: req.Ingredients,
		IsFeatured:  req.IsFeatured,
	}
	for _, s := range req.Sizes {
		sp, err := decimal.NewFromString(s.Price)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid size price"})
			return nil, false
		}
		p.Sizes = append(p.Sizes, catalog.Size{Name: s.Name, Price: sp})
	}
	return p, true
}
