package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prathamesh-patil-5090/banao-backend/apperrors"
	"github.com/prathamesh-patil-5090/banao-backend/middlewares"
	"github.com/prathamesh-patil-5090/banao-backend/services"
)

type PostController struct {
	engagement *services.EngagementService
}

func NewPostController(engagement *services.EngagementService) *PostController {
	return &PostController{engagement: engagement}
}

func actorID(c *gin.Context) (primitive.ObjectID, error) {
	id, ok := middlewares.ActorID(c)
	if !ok {
		return primitive.NilObjectID, apperrors.New(apperrors.Unauthorized, "missing authenticated user")
	}
	return id, nil
}

func (pc *PostController) CreatePost(c *gin.Context) {
	var req struct {
		UserID      string `json:"userId"`
		Description string `json:"description"`
		PicturePath string `json:"picturePath"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Wrap(apperrors.InvalidInput, "malformed request body", err))
		return
	}
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		respondError(c, apperrors.New(apperrors.InvalidInput, "invalid userId format"))
		return
	}

	posts, err := pc.engagement.CreatePost(c.Request.Context(), userID, req.Description, req.PicturePath)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, posts)
}

func (pc *PostController) GetFeed(c *gin.Context) {
	posts, err := pc.engagement.GetFeed(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (pc *PostController) GetUserPosts(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		respondError(c, err)
		return
	}

	posts, err := pc.engagement.GetUserPosts(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (pc *PostController) ToggleLike(c *gin.Context) {
	postID, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req struct {
		UserID string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Wrap(apperrors.InvalidInput, "malformed request body", err))
		return
	}
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		respondError(c, apperrors.New(apperrors.InvalidInput, "invalid userId format"))
		return
	}

	post, err := pc.engagement.ToggleLike(c.Request.Context(), postID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (pc *PostController) AddComment(c *gin.Context) {
	postID, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req struct {
		UserID  string `json:"userId"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Wrap(apperrors.InvalidInput, "malformed request body", err))
		return
	}
	if req.UserID == "" || req.Comment == "" {
		respondError(c, apperrors.New(apperrors.InvalidInput, "comment and userId are required"))
		return
	}
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		respondError(c, apperrors.New(apperrors.InvalidInput, "invalid userId format"))
		return
	}

	post, err := pc.engagement.AddComment(c.Request.Context(), postID, userID, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (pc *PostController) UpdateComment(c *gin.Context) {
	postID, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	commentID, err := pathID(c, "commentId")
	if err != nil {
		respondError(c, err)
		return
	}
	actor, err := actorID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req struct {
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Wrap(apperrors.InvalidInput, "malformed request body", err))
		return
	}

	post, err := pc.engagement.EditComment(c.Request.Context(), postID, commentID, actor, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (pc *PostController) DeleteComment(c *gin.Context) {
	postID, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	commentID, err := pathID(c, "commentId")
	if err != nil {
		respondError(c, err)
		return
	}
	actor, err := actorID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	post, err := pc.engagement.DeleteComment(c.Request.Context(), postID, commentID, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (pc *PostController) UpdatePost(c *gin.Context) {
	postID, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	actor, err := actorID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req struct {
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Wrap(apperrors.InvalidInput, "malformed request body", err))
		return
	}

	post, err := pc.engagement.EditPost(c.Request.Context(), postID, actor, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (pc *PostController) DeletePost(c *gin.Context) {
	postID, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	actor, err := actorID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	posts, err := pc.engagement.DeletePost(c.Request.Context(), postID, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}
