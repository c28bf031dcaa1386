package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prathamesh-patil-5090/banao-backend/apperrors"
	"github.com/prathamesh-patil-5090/banao-backend/services"
)

type UserController struct {
	relationships *services.RelationshipService
}

func NewUserController(relationships *services.RelationshipService) *UserController {
	return &UserController{relationships: relationships}
}

func pathID(c *gin.Context, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		return primitive.NilObjectID, apperrors.Newf(apperrors.InvalidInput, "invalid %s format", name)
	}
	return id, nil
}

func (uc *UserController) GetUser(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := uc.relationships.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) GetUserFriends(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	friends, err := uc.relationships.ListFriends(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, friends)
}

func (uc *UserController) ToggleFriend(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	friendID, err := pathID(c, "friendId")
	if err != nil {
		respondError(c, err)
		return
	}

	friends, err := uc.relationships.ToggleFriend(c.Request.Context(), id, friendID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, friends)
}

func (uc *UserController) FixFriends(c *gin.Context) {
	fixed, err := uc.relationships.FixFriends(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fixed friends arrays for all users", "fixed": fixed})
}
