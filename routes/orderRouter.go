package routes

import (
	"go-restaurant-pos/controllers"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.RouterGroup, orders controllers.OrderService) {
	incomingRoutes.GET("/orders", controllers.GetOrders(orders))
	incomingRoutes.GET("/orders/:order_id", controllers.GetOrder(orders))
	incomingRoutes.POST("/orders", controllers.CreateOrder(orders))
	incomingRoutes.PUT("/orders/:order_id", controllers.UpdateOrderItems(orders))
	incomingRoutes.PUT("/orders/:order_id/status", controllers.UpdateOrderStatus(orders))
}
