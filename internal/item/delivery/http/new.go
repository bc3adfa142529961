package http

import (
	"giftlist/internal/item"
	"giftlist/pkg/events"
	"giftlist/pkg/log"
)

type handler struct {
	l      log.Logger
	uc     item.UseCase
	events events.Recorder
}

// New creates a new HTTP handler for the item domain.
func New(l log.Logger, uc item.UseCase, rec events.Recorder) *handler {
	if rec == nil {
		rec = events.Noop{}
	}
	return &handler{
		l:      l,
		uc:     uc,
		events: rec,
	}
}
