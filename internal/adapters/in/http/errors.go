package http

import (
	"errors"
	"net/http"

	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorResponse is the uniform error body.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps domain errors onto HTTP statuses. The lifecycle
// taxonomy carries the intent: not-found, forbidden and the various
// conflict flavors each get their own status, everything else is a client
// validation error or an internal failure.
func respondError(c echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, errs.ErrOrderAlreadyClaimed),
		errors.Is(err, errs.ErrCapacityExceeded),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, order.ErrOrderNotEditable):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusUnprocessableEntity
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
		message = err.Error()
	}

	return c.JSON(status, errorResponse{Code: status, Message: message})
}
