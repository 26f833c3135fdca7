package routes

import (
	"go-restaurant-pos/controllers"

	"github.com/gin-gonic/gin"
)

func MenuRoutes(incomingRoutes *gin.RouterGroup, menu controllers.MenuService) {
	incomingRoutes.GET("/menu", controllers.GetMenu(menu))
	incomingRoutes.GET("/menu/categories", controllers.GetMenuCategories(menu))
	incomingRoutes.POST("/menu", controllers.CreateMenuItem(menu))
}
