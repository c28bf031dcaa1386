package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prathamesh-patil-5090/banao-backend/apperrors"
	"github.com/prathamesh-patil-5090/banao-backend/services"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

func (ac *AuthController) Register(c *gin.Context) {
	var in services.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, apperrors.Wrap(apperrors.InvalidInput, "malformed request body", err))
		return
	}

	user, err := ac.auth.Register(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Wrap(apperrors.InvalidInput, "malformed request body", err))
		return
	}

	identifier := req.Email
	if identifier == "" {
		identifier = req.Username
	}

	token, user, err := ac.auth.Login(c.Request.Context(), identifier, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (ac *AuthController) ForgotPassword(c *gin.Context) {
	var req struct {
		Email       string `json:"email"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Wrap(apperrors.InvalidInput, "malformed request body", err))
		return
	}

	if err := ac.auth.ResetPassword(c.Request.Context(), req.Email, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Password reset successful"})
}
