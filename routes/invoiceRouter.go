package routes

import (
	"go-restaurant-pos/controllers"

	"github.com/gin-gonic/gin"
)

func InvoiceRoutes(incomingRoutes *gin.RouterGroup, bills controllers.BillService, printer controllers.PrintService) {
	incomingRoutes.GET("/bills", controllers.GetBills(bills))
	incomingRoutes.GET("/bills/summary", controllers.GetSalesSummary(bills))
	incomingRoutes.POST("/bills", controllers.CreateBill(bills))
	incomingRoutes.POST("/print-bill", controllers.PrintBill(printer))
}
