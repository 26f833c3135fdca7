package routes

import (
	"go-restaurant-pos/controllers"

	"github.com/gin-gonic/gin"
)

func TableRoutes(incomingRoutes *gin.RouterGroup, tables controllers.TableService) {
	incomingRoutes.GET("/tables", controllers.GetTables(tables))
	incomingRoutes.GET("/tables/:table_id", controllers.GetTable(tables))
	incomingRoutes.POST("/tables", controllers.CreateTable(tables))
}
