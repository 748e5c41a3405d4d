package handler

import (
	"errors"
	"net/http"

	"rates-service/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError maps typed application errors to their HTTP status; anything
// else is a 500 with a generic body.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, ApiResponse{Success: false, Message: appErr.Message})
		return
	}

	logger.WithError(err).Error("Unhandled request error")
	c.JSON(http.StatusInternalServerError, ApiResponse{Success: false, Message: "internal server error"})
}
