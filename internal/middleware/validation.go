package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/yigit/placementportal/internal/app/models/dto"
)

// HandleBindingError answers a request whose body could not be bound
func HandleBindingError(c *gin.Context, err error) {
	abortWithError(c, http.StatusBadRequest, FormatBindingError(err))
}

// FormatBindingError turns a gin binding error into a validation error detail.
// Validator failures list every offending field; other errors are reported as a malformed body.
func FormatBindingError(err error) *dto.ErrorDetail {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
	}

	fields := make([]dto.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, dto.FieldError{Field: fe.Field(), Message: formatValidationError(fe)})
	}

	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, fields[0].Message).WithDetails(fields)
	if len(fields) == 1 {
		detail = detail.WithField(fields[0].Field)
	}
	return detail
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "notblank":
		return e.Field() + " must not be blank"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
