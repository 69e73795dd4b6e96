package handler

import (
	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// callerID extracts the authenticated user id placed by the auth middleware.
func callerID(c echo.Context) (uuid.UUID, error) {
	id, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return id, nil
}

// recordID parses the :id path parameter.
func recordID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid record id")
	}

	return id, nil
}

// dateRangeQuery parses the optional startDate and endDate query parameters
// into the inclusive filter window.
func dateRangeQuery(c echo.Context) (entity.DateRange, error) {
	var rng entity.DateRange

	if raw := c.QueryParam("startDate"); raw != "" {
		d, err := entity.ParseDate(raw)
		if err != nil {
			return rng, domainerrors.ErrValidationFailed.WithDetails("invalid startDate, expected YYYY-MM-DD")
		}
		rng.Start = &d
	}

	if raw := c.QueryParam("endDate"); raw != "" {
		d, err := entity.ParseDate(raw)
		if err != nil {
			return rng, domainerrors.ErrValidationFailed.WithDetails("invalid endDate, expected YYYY-MM-DD")
		}
		rng.End = &d
	}

	return rng, nil
}
