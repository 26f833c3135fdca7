package controllers

import (
	"context"
	"net/http"

	"go-restaurant-pos/models"

	"github.com/gin-gonic/gin"
)

func GetOrders(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		all, err := orders.List(ctx)
		if err != nil {
			respondError(c, err, "error occurred while listing orders")
			return
		}
		if all == nil {
			all = []models.Order{}
		}
		c.JSON(http.StatusOK, all)
	}
}

func GetOrder(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		order, err := orders.Get(ctx, c.Param("order_id"))
		if err != nil {
			respondError(c, err, "error occurred while fetching the order")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func CreateOrder(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var req models.OrderRequest
		if !bindAndValidate(c, &req) {
			return
		}
		created, err := orders.Create(ctx, req)
		if err != nil {
			respondError(c, err, "order was not created")
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// UpdateOrderStatus moves an order along pending, preparing, ready, served
// and paid. The payment fields ride along on the transition to paid.
func UpdateOrderStatus(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var update models.StatusUpdate
		if !bindAndValidate(c, &update) {
			return
		}
		orderID := c.Param("order_id")
		if err := orders.UpdateStatus(ctx, orderID, update); err != nil {
			respondError(c, err, "order status was not updated")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "order_id": orderID, "status": update.Status})
	}
}
