package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/aquilaclo/storefront/internal/catalog"
	"github.com/aquilaclo/storefront/internal/order"
)

// adminSummaryHandler aggregates the dashboard cards: total revenue across
// all orders, order count, product count.
// @Summary Admin dashboard summary
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/summary [get]
func adminSummaryHandler(orders order.Repository, products catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := orders.ListAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		prods, err := products.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		revenue := decimal.Zero
		for _, o := range all {
			amt, err := decimal.NewFromString(o.TotalAmount)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "bad total on order " + o.ID})
				return
			}
			revenue = revenue.Add(amt)
		}

		c.JSON(http.StatusOK, gin.H{
			"total_revenue":  revenue.StringFixed(2),
			"total_orders":   len(all),
			"total_products": len(prods),
		})
	}
}

func adminOrdersHandler(orders order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := orders.ListAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if all == nil {
			all = []order.WithItems{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": all})
	}
}

// adminProductsHandler returns every product joined with its size rows, the
// projection the stock-edit table renders.
func adminProductsHandler(products catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		prods, err := products.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		sizes, err := products.SizesByProducts(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		byProduct := make(map[string][]catalog.Size, len(prods))
		for _, s := range sizes {
			byProduct[s.ProductID] = append(byProduct[s.ProductID], s)
		}
		out := make([]catalog.ProductWithSizes, 0, len(prods))
		for _, p := range prods {
			ps := byProduct[p.ID]
			if ps == nil {
				ps = []catalog.Size{}
			}
			out = append(out, catalog.ProductWithSizes{Product: p, Sizes: ps})
		}
		c.JSON(http.StatusOK, gin.H{"items": out})
	}
}

// updateStockHandler overwrites the stock count for one size row. Two admins
// editing the same row race last-write-wins; clients refetch after confirm.
// @Summary Overwrite stock for a size row
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "size row id"
// @Param body body catalog.UpdateStockRequest true "new stock"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} catalog.HTTPError
// @Failure 404 {object} catalog.HTTPError
// @Router /admin/sizes/{id}/stock [put]
func updateStockHandler(products catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req catalog.UpdateStockRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
			return
		}
		if req.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stock must be non-negative"})
			return
		}
		if err := products.SetStock(c.Request.Context(), c.Param("id"), req.Stock); err != nil {
			if err == catalog.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "size not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "stock updated"})
	}
}
