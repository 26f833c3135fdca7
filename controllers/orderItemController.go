package controllers

import (
	"context"
	"net/http"

	"go-restaurant-pos/models"

	"github.com/gin-gonic/gin"
)

// UpdateOrderItems replaces the items of an unpaid order. Prices are taken
// from the menu, never from the request.
func UpdateOrderItems(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var req models.OrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order must contain at least one item"})
			return
		}

		order, err := orders.Update(ctx, c.Param("order_id"), req)
		if err != nil {
			respondError(c, err, "order items were not updated")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
