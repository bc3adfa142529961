package middleware

import (
	"giftlist/pkg/log"
)

// Context keys set by the middleware and read by the delivery handlers.
const (
	UserIDKey         = "user_id"
	IdentificationKey = "identification_id"
)

// IdentificationCookie is the long-lived cookie carrying an anonymous
// visitor's identification.
const (
	IdentificationCookie = "giftlist_vid"
	identificationMaxAge = 365 * 24 * 60 * 60
)

type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{l: l}
}
