package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "vendor-kyc.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Bare domain sentinels coming straight out of
// a repository are mapped to their usual status; anything unrecognized is a
// 500 with no internal detail leaked.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = fromSentinel(err)
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
		"error":   appErr.Message, // Backward compatibility
	})
}

// ErrorWithError sends an error response with a specific status and message
func ErrorWithError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}

func fromSentinel(err error) *domainerrors.AppError {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("Resource not found")
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict("Resource already exists")
	case errors.Is(err, domainerrors.ErrInvalidInput), errors.Is(err, domainerrors.ErrBadRequest):
		return domainerrors.BadRequest(err.Error())
	case errors.Is(err, domainerrors.ErrUnauthorized), errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.Unauthorized("Unauthorized")
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden("Forbidden")
	case errors.Is(err, domainerrors.ErrTokenExpired):
		return domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeUnauthorized, "Token has expired", err)
	default:
		return domainerrors.InternalError(err)
	}
}
