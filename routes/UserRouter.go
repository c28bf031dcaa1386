package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/prathamesh-patil-5090/banao-backend/controllers"
)

func UserRouter(router *gin.Engine, uc *controllers.UserController, requireAuth gin.HandlerFunc) {
	users := router.Group("/users", requireAuth)
	users.GET("/:id", uc.GetUser)
	users.GET("/:id/friends", uc.GetUserFriends)
	users.PATCH("/:id/:friendId", uc.ToggleFriend)
	users.POST("/fix-friends", uc.FixFriends)
}
