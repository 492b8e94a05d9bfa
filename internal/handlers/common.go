package handlers

import (
	"errors"
	"strconv"

	apierrors "github.com/agrovia/partnership-api/internal/errors"
	"github.com/agrovia/partnership-api/internal/services"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps service sentinel errors onto HTTP responses.
// Anything unrecognized is an internal error; messages from known errors
// pass through unchanged.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPartnerNotFound),
		errors.Is(err, services.ErrPartnershipNotFound),
		errors.Is(err, services.ErrFarmPlotNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrActivityUserMissing),
		errors.Is(err, services.ErrCreatorNotFound),
		errors.Is(err, services.ErrSenderNotFound),
		errors.Is(err, services.ErrReceiverNotFound),
		errors.Is(err, services.ErrNoPartnershipForPartner):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrUserNotPartner):
		apierrors.InvalidRole(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrPhoneTaken),
		errors.Is(err, services.ErrPolicyNumberTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrPasswordTooShort),
		errors.Is(err, services.ErrNonPositiveAmount),
		errors.Is(err, services.ErrNegativeAmount),
		errors.Is(err, services.ErrNonPositiveArea),
		errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrSeverityOutOfRange),
		errors.Is(err, services.ErrNegativeFee),
		errors.Is(err, services.ErrInvalidMaxParticipants):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}

// parseIDParam parses a numeric path parameter.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}
