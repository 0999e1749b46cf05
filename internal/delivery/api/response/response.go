// Package response renders the JSON bodies of the HTTP API. Successful
// responses are the bare resource; failures share one error envelope.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ubishop/internal/delivery/api/validator"
	deliverycontext "ubishop/internal/delivery/context"
	domainerrors "ubishop/internal/domain/errors"
	"ubishop/internal/errors"
)

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error     string `json:"error"`             // User-facing message
	Code      string `json:"code"`              // Machine-readable error code, e.g. "VALIDATION_FAILED"
	Details   any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
	RequestID string `json:"request_id"`        // Request tracking ID
}

// MessageResponse is the body of writes that return no resource.
type MessageResponse struct {
	Message string `json:"mensaje"`
	ID      int64  `json:"id,omitempty"`
}

// Success writes data as the whole body.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error:     message,
		Code:      errorCode,
		Details:   details,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// BindingError returns a binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// ValidationError reports the fields that failed validation.
func ValidationError(c echo.Context, err error) error {
	return Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
		domainerrors.ErrValidationFailed.Message(), validator.FieldErrors(err))
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError renders domain errors. Anything else is returned with a
// stack so the central error handler logs it and answers 500.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
