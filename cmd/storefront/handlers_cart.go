package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aquilaclo/storefront/internal/auth"
	"github.com/aquilaclo/storefront/internal/cart"
)

// @Summary List the caller's cart
// @Tags cart
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /cart [get]
func getCartHandler(repo cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := auth.SessionFrom(c)
		lines, err := repo.ListByUser(c.Request.Context(), sess.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if lines == nil {
			lines = []cart.Line{}
		}
		c.JSON(http.StatusOK, gin.H{"items": lines})
	}
}

// cartCountHandler backs the navbar badge: the sum of all quantities.
func cartCountHandler(repo cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := auth.SessionFrom(c)
		n, err := repo.Count(c.Request.Context(), sess.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": n})
	}
}

// addToCartHandler upserts one (user, product, size) line; re-adding the same
// key increments the existing quantity rather than creating a second row.
// @Summary Add to cart
// @Tags cart
// @Accept json
// @Produce json
// @Param body body cart.AddRequest true "line to add"
// @Success 200 {object} map[string]interface{}
// @Router /cart [post]
func addToCartHandler(repo cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := auth.SessionFrom(c)
		var req cart.AddRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
			return
		}
		if req.ProductID == "" || req.Size == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id and size are required"})
			return
		}
		if req.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be at least 1"})
			return
		}
		if err := repo.AddOrIncrement(c.Request.Context(), sess.UserID, req.ProductID, req.Size, req.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "added"})
	}
}

// updateCartItemHandler sets a line's quantity; zero or less removes it.
func updateCartItemHandler(repo cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := auth.SessionFrom(c)
		var req cart.UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
			return
		}
		err := repo.UpdateQuantity(c.Request.Context(), c.Param("id"), sess.UserID, req.Quantity)
		if err != nil {
			if err == cart.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "updated"})
	}
}

func removeCartItemHandler(repo cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := auth.SessionFrom(c)
		err := repo.Remove(c.Request.Context(), c.Param("id"), sess.UserID)
		if err != nil {
			if err == cart.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
