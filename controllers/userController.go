package controllers

import (
	"context"
	"net/http"

	"go-restaurant-pos/models"

	"github.com/gin-gonic/gin"
)

func GetUsers(users UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		all, err := users.List(ctx)
		if err != nil {
			respondError(c, err, "error occurred while listing users")
			return
		}
		if all == nil {
			all = []models.User{}
		}
		c.JSON(http.StatusOK, all)
	}
}

func GetUser(users UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		user, err := users.Get(ctx, c.Param("user_id"))
		if err != nil {
			respondError(c, err, "error occurred while fetching the user")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func SignUp(users UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var user models.User
		if !bindAndValidate(c, &user) {
			return
		}
		created, err := users.SignUp(ctx, user)
		if err != nil {
			respondError(c, err, "user item was not created")
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func Login(users UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var login models.Login
		if !bindAndValidate(c, &login) {
			return
		}
		user, err := users.Login(ctx, login)
		if err != nil {
			respondError(c, err, "login failed")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
