package http

import (
	"errors"
	"net/http"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON error payload returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps domain and application errors onto HTTP status codes.
//
// The mapping follows the service's authorization and validation semantics:
// unknown objects are 404, denied actions and mutations of completed orders
// are 403, rejected input is 400, storage failures and everything else 500.
func writeError(c echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrActionIsForbidden), errors.Is(err, order.ErrOrderIsCompleted):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrUploadFailed):
		status = http.StatusInternalServerError
	}

	return c.JSON(status, ErrorResponse{Code: status, Message: err.Error()})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
