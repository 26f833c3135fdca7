package routes

import (
	"go-restaurant-pos/controllers"

	"github.com/gin-gonic/gin"
)

// AuthRoutes are reachable without a token.
func AuthRoutes(incomingRoutes *gin.RouterGroup, users controllers.UserService) {
	incomingRoutes.GET("/health", controllers.HealthCheck())
	incomingRoutes.POST("/users/signup", controllers.SignUp(users))
	incomingRoutes.POST("/users/login", controllers.Login(users))
}

func UserRoutes(incomingRoutes *gin.RouterGroup, users controllers.UserService) {
	incomingRoutes.GET("/users", controllers.GetUsers(users))
	incomingRoutes.GET("/users/:user_id", controllers.GetUser(users))
}
