package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/prathamesh-patil-5090/banao-backend/controllers"
)

func PostRouter(router *gin.Engine, pc *controllers.PostController, requireAuth gin.HandlerFunc) {
	posts := router.Group("/posts", requireAuth)
	posts.GET("", pc.GetFeed)
	posts.GET("/:userId/posts", pc.GetUserPosts)
	posts.POST("", pc.CreatePost)
	posts.PATCH("/:id/like", pc.ToggleLike)
	posts.PATCH("/:id/comment", pc.AddComment)
	posts.PATCH("/:id/comments/:commentId", pc.UpdateComment)
	posts.DELETE("/:id/comments/:commentId", pc.DeleteComment)
	posts.PATCH("/:id", pc.UpdatePost)
	posts.DELETE("/:id", pc.DeletePost)
}
