package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/prathamesh-patil-5090/banao-backend/apperrors"
)

// respondError maps the error kind onto an HTTP status. Unclassified
// failures are logged and reported as 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperrors.KindOf(err) {
	case apperrors.InvalidInput:
		status = http.StatusBadRequest
	case apperrors.NotFound:
		status = http.StatusNotFound
	case apperrors.Forbidden:
		status = http.StatusForbidden
	case apperrors.Conflict:
		status = http.StatusConflict
	case apperrors.Unauthorized:
		status = http.StatusUnauthorized
	default:
		logrus.WithError(err).WithField("path", c.FullPath()).Error("unexpected failure")
	}
	c.JSON(status, gin.H{"message": err.Error()})
}
