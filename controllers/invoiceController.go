package controllers

import (
	"context"
	"net/http"

	"go-restaurant-pos/models"

	"github.com/gin-gonic/gin"
)

func GetBills(bills BillService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		all, err := bills.List(ctx)
		if err != nil {
			respondError(c, err, "error occurred while listing bills")
			return
		}
		if all == nil {
			all = []models.Bill{}
		}
		c.JSON(http.StatusOK, all)
	}
}

func CreateBill(bills BillService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var bill models.Bill
		if !bindAndValidate(c, &bill) {
			return
		}
		created, err := bills.Create(ctx, bill)
		if err != nil {
			respondError(c, err, "bill was not created")
			return
		}
		c.JSON(http.StatusCreated, models.BillCreated{Bill_id: created.Bill_id, Invoice_number: created.Invoice_number})
	}
}

// GetSalesSummary reports bill totals between the from and to query dates,
// both YYYY-MM-DD and inclusive.
func GetSalesSummary(bills BillService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		from, to := c.Query("from"), c.Query("to")
		if from == "" || to == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from and to dates are required"})
			return
		}
		summary, err := bills.Summary(ctx, from, to)
		if err != nil {
			respondError(c, err, "error occurred while summarising bills")
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}
