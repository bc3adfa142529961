package http

import (
	"giftlist/internal/reservation"
	"giftlist/pkg/events"
	"giftlist/pkg/log"
)

type handler struct {
	l      log.Logger
	uc     reservation.UseCase
	events events.Recorder
}

// New creates a new HTTP handler for the reservation domain.
func New(l log.Logger, uc reservation.UseCase, rec events.Recorder) *handler {
	if rec == nil {
		rec = events.Noop{}
	}
	return &handler{
		l:      l,
		uc:     uc,
		events: rec,
	}
}
