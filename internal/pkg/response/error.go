package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pickleclub/reservation-backend/internal/pkg/apperror"
	"github.com/pickleclub/reservation-backend/internal/pkg/errcode"
)

// ErrorResponse defines the JSON structure for error responses.
// Clients map Code to display text and fall back to Message.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error sends a JSON error response.
// It checks if the error is an AppError to determine the status and code.
// Anything else becomes a 500 INTERNAL_ERROR.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, ErrorResponse{
			Code:    string(appErr.Code),
			Message: appErr.Message,
		})
		return
	}

	msg, _ := errcode.Message(errcode.InternalError)
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    string(errcode.InternalError),
		Message: msg,
	})
}
