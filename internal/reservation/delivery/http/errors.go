package http

import (
	"errors"

	"giftlist/internal/reservation"
	pkgErrors "giftlist/pkg/errors"
)

// mapError translates use-case errors into HTTP errors; unrecognized errors
// become a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, reservation.ErrInvalidItem),
		errors.Is(err, reservation.ErrInvalidReservation):
		return pkgErrors.NewHTTPError(404, err.Error())
	case errors.Is(err, reservation.ErrInvalidHolder):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, reservation.ErrItemReserved),
		errors.Is(err, reservation.ErrReservationClosed),
		errors.Is(err, reservation.ErrItemArchived):
		return pkgErrors.NewHTTPError(409, err.Error())
	case errors.Is(err, reservation.ErrNotHolder):
		return pkgErrors.NewHTTPError(403, err.Error())
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
