package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/prathamesh-patil-5090/banao-backend/controllers"
)

func AuthRouter(router *gin.Engine, ac *controllers.AuthController) {
	auth := router.Group("/auth")
	auth.POST("/register", ac.Register)
	auth.POST("/login", ac.Login)
	auth.POST("/forgot-password", ac.ForgotPassword)
}
