package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aquilaclo/storefront/internal/catalog"
)

// listProductsHandler returns every product, oldest first. No search, no
// pagination: the storefront renders the full catalog.
// @Summary List products
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /products [get]
func listProductsHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if items == nil {
			items = []catalog.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// getProductHandler returns one product joined with its size/stock rows.
// Zero-stock sizes are included; the client renders them disabled.
// @Summary Get product detail
// @Tags catalog
// @Produce json
// @Param id path string true "product id"
// @Success 200 {object} catalog.ProductWithSizes
// @Failure 404 {object} catalog.HTTPError
// @Router /products/{id} [get]
func getProductHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		p, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			if err == catalog.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		sizes, err := repo.SizesByProduct(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if sizes == nil {
			sizes = []catalog.Size{}
		}
		c.JSON(http.StatusOK, catalog.ProductWithSizes{Product: *p, Sizes: sizes})
	}
}
