package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/halit/campushub/internal/app/models/dto"
	"github.com/halit/campushub/internal/pkg/apperrors"
	"github.com/halit/campushub/internal/pkg/logger"
)

// HandleAPIError maps domain errors onto HTTP responses with a uniform
// {"message": ...} body.
func HandleAPIError(c *gin.Context, err error) {
	var customErr *apperrors.CustomError
	message := err.Error()
	if errors.As(err, &customErr) {
		message = customErr.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrClubNotFound),
		errors.Is(err, apperrors.ErrEventNotFound),
		errors.Is(err, apperrors.ErrItemNotFound),
		errors.Is(err, apperrors.ErrClaimNotFound),
		errors.Is(err, apperrors.ErrMemberNotFound),
		errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(message))

	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrClubAlreadyExists),
		errors.Is(err, apperrors.ErrAlreadySubscribed),
		errors.Is(err, apperrors.ErrDuplicateClaim):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(message))

	case errors.Is(err, apperrors.ErrUnauthenticated),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrInvalidFormat):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(message))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(message))

	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(message))

	case errors.Is(err, apperrors.ErrInvalidOperation),
		errors.Is(err, apperrors.ErrEventStarted),
		errors.Is(err, apperrors.ErrSelfClaim):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(message))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("An unexpected error occurred"))
	}
}
