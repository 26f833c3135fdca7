package controllers

import (
	"context"
	"log"
	"net/http"

	"go-restaurant-pos/models"

	"github.com/gin-gonic/gin"
)

func PrintBill(printer PrintService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var req models.PrintRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.PrintResult{Success: false, Error: err.Error()})
			return
		}
		if err := printer.Print(ctx, req); err != nil {
			log.Printf("Printing error: %v", err)
			c.JSON(statusFor(err), models.PrintResult{Success: false, Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, models.PrintResult{Success: true, Message: "Bill printed successfully"})
	}
}
