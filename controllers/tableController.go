package controllers

import (
	"context"
	"net/http"

	"go-restaurant-pos/models"

	"github.com/gin-gonic/gin"
)

type tableRequest struct {
	Number   int `json:"number" validate:"required,gt=0"`
	Capacity int `json:"capacity" validate:"gte=0"`
}

func GetTables(tables TableService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		all, err := tables.List(ctx)
		if err != nil {
			respondError(c, err, "error occurred while listing tables")
			return
		}
		if all == nil {
			all = []models.Table{}
		}
		c.JSON(http.StatusOK, all)
	}
}

func GetTable(tables TableService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		table, err := tables.Get(ctx, c.Param("table_id"))
		if err != nil {
			respondError(c, err, "error occurred while fetching the table")
			return
		}
		c.JSON(http.StatusOK, table)
	}
}

func CreateTable(tables TableService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var req tableRequest
		if !bindAndValidate(c, &req) {
			return
		}
		table, err := tables.Create(ctx, req.Number, req.Capacity)
		if err != nil {
			respondError(c, err, "table was not created")
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": table.Table_id})
	}
}
