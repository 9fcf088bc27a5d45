package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/pkg/errs"
)

// errorResponse maps application errors onto HTTP status codes. Internal
// failures get a generic message: clients cannot distinguish a photo-write
// failure from an event-write failure, and should not.
func errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrParcelNotAssignedToCourier):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Parcel is not assigned to this courier",
		})

	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})

	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})

	case errors.Is(err, errs.ErrUnauthorized):
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Invalid credentials",
		})

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})

	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

// badRequest returns a 400 with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
