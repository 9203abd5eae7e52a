package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campussphere/internal/app/models/dto"
	"github.com/yigit/campussphere/internal/pkg/apperrors"
	"github.com/yigit/campussphere/internal/pkg/logger"
)

// sentinelMessages maps sentinel errors to their client-facing messages.
// CustomError wrappers carry their own message and bypass this table.
var sentinelMessages = map[error]string{
	apperrors.ErrAuthenticationRequired:  "Authentication required",
	apperrors.ErrInvalidCredentials:      "Invalid email or password",
	apperrors.ErrSessionInvalid:          "Authentication required",
	apperrors.ErrSessionExpired:          "Authentication required",
	apperrors.ErrAccountSuspended:        "Account has been suspended",
	apperrors.ErrPermissionDenied:        "Insufficient permissions",
	apperrors.ErrUserNotFound:            "User not found",
	apperrors.ErrEmailAlreadyExists:      "Email already registered",
	apperrors.ErrEventNotFound:           "Event not found or not available for registration",
	apperrors.ErrProposalNotPending:      "Proposal not found or already processed",
	apperrors.ErrAlreadyRegistered:       "Already registered for this event",
	apperrors.ErrEventFull:               "Event is full",
	apperrors.ErrPostNotFound:            "Collaboration post not found",
	apperrors.ErrSelfInterestForbidden:   "Cannot express interest in your own post",
	apperrors.ErrInterestAlreadyDeclared: "Interest already expressed for this post",
	apperrors.ErrResourceNotFound:        "Resource not found",
}

// statusFor maps an error to its HTTP status code
func statusFor(err error) int {
	switch {
	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrInvalidEmail,
		apperrors.ErrInvalidRole,
		apperrors.ErrSelfInterestForbidden):
		return http.StatusBadRequest
	case apperrors.Is(err, apperrors.ErrAuthenticationRequired,
		apperrors.ErrInvalidCredentials,
		apperrors.ErrSessionInvalid,
		apperrors.ErrSessionExpired):
		return http.StatusUnauthorized
	case apperrors.Is(err, apperrors.ErrPermissionDenied,
		apperrors.ErrAccountSuspended):
		return http.StatusForbidden
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrEventNotFound,
		apperrors.ErrProposalNotPending,
		apperrors.ErrPostNotFound):
		return http.StatusNotFound
	case apperrors.Is(err, apperrors.ErrConflict,
		apperrors.ErrEmailAlreadyExists,
		apperrors.ErrAlreadyRegistered,
		apperrors.ErrEventFull,
		apperrors.ErrInterestAlreadyDeclared):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// HandleAPIError translates a service error into the {"error": ...} envelope
// with the right status code. Unrecognized errors are logged and reported as
// a plain internal server error so no detail leaks to the client.
func HandleAPIError(c *gin.Context, err error) {
	status := statusFor(err)

	if status == http.StatusInternalServerError {
		logger.Error().
			Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Unhandled API error")
		c.JSON(status, dto.NewErrorResponse("Internal server error"))
		return
	}

	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		c.JSON(status, dto.NewErrorResponse(custom.Message))
		return
	}

	for sentinel, message := range sentinelMessages {
		if errors.Is(err, sentinel) {
			c.JSON(status, dto.NewErrorResponse(message))
			return
		}
	}

	c.JSON(status, dto.NewErrorResponse(err.Error()))
}
