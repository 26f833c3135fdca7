package controllers

import (
	"context"
	"net/http"

	"go-restaurant-pos/models"

	"github.com/gin-gonic/gin"
)

func GetMenu(menu MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		items, err := menu.List(ctx)
		if err != nil {
			respondError(c, err, "error occurred while listing the menu items")
			return
		}
		if items == nil {
			items = []models.MenuItem{}
		}
		c.JSON(http.StatusOK, items)
	}
}

func GetMenuCategories(menu MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		categories, err := menu.Categories(ctx)
		if err != nil {
			respondError(c, err, "error occurred while listing the menu categories")
			return
		}
		if categories == nil {
			categories = []string{}
		}
		c.JSON(http.StatusOK, categories)
	}
}

func CreateMenuItem(menu MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var item models.MenuItem
		if !bindAndValidate(c, &item) {
			return
		}
		created, err := menu.Create(ctx, item)
		if err != nil {
			respondError(c, err, "menu item was not created")
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": created.Menu_item_id})
	}
}
