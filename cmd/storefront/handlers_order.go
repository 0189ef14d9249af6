package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aquilaclo/storefront/internal/auth"
	"github.com/aquilaclo/storefront/internal/cart"
	"github.com/aquilaclo/storefront/internal/order"
)

// checkoutHandler places an order from the caller's current cart. The form is
// validated field by field before any write; the order, its items, and the
// cart clear then go through the repository as one transaction, so a partial
// order can never be left behind.
// @Summary Place an order
// @Tags orders
// @Accept json
// @Produce json
// @Param body body order.CheckoutRequest true "shipping form"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /checkout [post]
func checkoutHandler(carts cart.Repository, orders order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := auth.SessionFrom(c)

		var req order.CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
			return
		}
		if fieldErrs := req.Validate(); fieldErrs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "please fix the form errors", "errors": fieldErrs})
			return
		}

		lines, err := carts.ListByUser(c.Request.Context(), sess.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if len(lines) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}

		// total = Σ(price × quantity) over the cart, with prices snapshotted
		// into the order lines at this moment.
		total := decimal.Zero
		items := make([]order.Item, 0, len(lines))
		for _, l := range lines {
			price, err := decimal.NewFromString(l.Product.Price)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "bad price on product " + l.ProductID})
				return
			}
			total = total.Add(price.Mul(decimal.NewFromInt(int64(l.Quantity))))
			items = append(items, order.Item{
				ID:        uuid.NewString(),
				ProductID: l.ProductID,
				Size:      l.Size,
				Quantity:  l.Quantity,
				Price:     l.Product.Price,
			})
		}

		o := &order.Order{
			ID:              uuid.NewString(),
			UserID:          sess.UserID,
			CustomerName:    req.Name,
			CustomerEmail:   req.Email,
			CustomerPhone:   req.Phone,
			ShippingAddress: req.Address,
			TotalAmount:     total.StringFixed(2),
			Status:          order.StatusPending,
		}
		for i := range items {
			items[i].OrderID = o.ID
		}

		if err := orders.Create(c.Request.Context(), o, items); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"order": o, "items": items})
	}
}

// listMyOrdersHandler is the account screen: the caller's past orders with
// their lines and product snapshots, newest first.
func listMyOrdersHandler(orders order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := auth.SessionFrom(c)
		out, err := orders.ListByUser(c.Request.Context(), sess.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if out == nil {
			out = []order.WithItems{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": out})
	}
}
