package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/placementportal/internal/app/models/dto"
	"github.com/yigit/placementportal/internal/pkg/apperrors"
	"github.com/yigit/placementportal/internal/pkg/logger"
)

const internalErrorMessage = "Internal server error"

// --- Central Error Handling Middleware/Function ---

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	HandleAPIErrorWithFallback(c, err, internalErrorMessage)
}

// HandleAPIErrorWithFallback is HandleAPIError with a custom message for unclassified errors
func HandleAPIErrorWithFallback(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		abortWithError(c, http.StatusNotFound,
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, apperrors.Message(err, "Resource not found")).
				WithSeverity(dto.ErrorSeverityWarning))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		abortWithError(c, http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, apperrors.Message(err, "Invalid credentials")).
				WithSeverity(dto.ErrorSeverityWarning))
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, apperrors.Message(err, "Validation failed"))
		var custom *apperrors.CustomError
		if errors.As(err, &custom) && custom.Details != nil {
			detail = detail.WithDetails(custom.Details)
		}
		abortWithError(c, http.StatusBadRequest, detail)
	default:
		logger.Error().Err(err).
			Str("requestId", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error while serving request")
		abortWithError(c, http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, fallback).WithSeverity(dto.ErrorSeverityCritical))
	}
}

func abortWithError(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

// Recovery turns panics into the standard 500 response
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().
			Interface("panic", recovered).
			Str("requestId", GetRequestID(c)).
			Str("path", c.Request.URL.Path).
			Msg("Recovered from panic")
		abortWithError(c, http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, internalErrorMessage).WithSeverity(dto.ErrorSeverityCritical))
	})
}
