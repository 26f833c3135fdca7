package routes

import (
	"go-restaurant-pos/controllers"

	"github.com/gin-gonic/gin"
)

type Services struct {
	Menu   controllers.MenuService
	Tables controllers.TableService
	Orders controllers.OrderService
	Bills  controllers.BillService
	Print  controllers.PrintService
	Users  controllers.UserService
}

// Register mounts the API under /api. Every handler registered after the
// auth middleware requires a token; pass nil to leave the API open.
func Register(router *gin.Engine, svc Services, auth gin.HandlerFunc) {
	api := router.Group("/api")
	AuthRoutes(api, svc.Users)

	protected := api.Group("")
	if auth != nil {
		protected.Use(auth)
	}
	UserRoutes(protected, svc.Users)
	MenuRoutes(protected, svc.Menu)
	TableRoutes(protected, svc.Tables)
	OrderRoutes(protected, svc.Orders)
	InvoiceRoutes(protected, svc.Bills, svc.Print)
}
