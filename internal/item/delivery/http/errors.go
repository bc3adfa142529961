package http

import (
	"errors"

	"giftlist/internal/item"
	pkgErrors "giftlist/pkg/errors"
)

// mapError translates use-case errors into HTTP errors. Orchestration errors
// are the only kind the use case emits; anything unrecognized becomes a 500
// so nothing leaks and nothing is silently swallowed.
func (h *handler) mapError(err error) error {
	var ve *item.ValidationError
	if errors.As(err, &ve) {
		return pkgErrors.NewHTTPErrorWithData(422, "validation failed", validationDetail(ve))
	}

	switch {
	case errors.Is(err, item.ErrInvalidUser),
		errors.Is(err, item.ErrInvalidList),
		errors.Is(err, item.ErrInvalidItem):
		return pkgErrors.NewHTTPError(404, err.Error())
	case errors.Is(err, item.ErrItemNotDeletable),
		errors.Is(err, item.ErrItemNotMovable),
		errors.Is(err, item.ErrItemNotReceivable),
		errors.Is(err, item.ErrItemNotArchivable),
		errors.Is(err, item.ErrItemLimitReached),
		errors.Is(err, item.ErrNoAvailableTitle):
		return pkgErrors.NewHTTPError(409, err.Error())
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
