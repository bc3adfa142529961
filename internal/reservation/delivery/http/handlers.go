package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"giftlist/internal/middleware"
	"giftlist/internal/reservation"
	"giftlist/pkg/events"
	"giftlist/pkg/response"
)

func (h *handler) record(ctx context.Context, action, actorID string, err error) {
	e := events.Event{Action: action, ActorID: actorID, At: time.Now().UTC()}
	if err != nil {
		e.Error = err.Error()
	}
	h.events.Record(ctx, e)
}

type reserveResp struct {
	Reservation any `json:"reservation"`
	Item        any `json:"item"`
}

type transferReq struct {
	// FromID is the visitor identification whose reservations move onto the
	// authenticated user's stable identification.
	FromID string `json:"from_id"`
}

type transferResp struct {
	Transferred int `json:"transferred"`
}

// Reserve godoc
// @Summary     Reserve an item
// @Description Creates an open reservation held by the visitor's identification; no account required.
// @Tags        Reservations
// @Produce     json
// @Param       list_id path string true "List ID"
// @Param       id      path string true "Item ID"
// @Success     200 {object} reserveResp
// @Failure     404 {object} response.Resp "Unknown item"
// @Failure     409 {object} response.Resp "Item already reserved"
// @Router      /api/v1/lists/{list_id}/items/{id}/reserve [POST]
func (h *handler) Reserve(c *gin.Context) {
	ctx := c.Request.Context()

	holderID := c.GetString(middleware.IdentificationKey)
	input := reservation.ReserveInput{
		ListID:   c.Param("list_id"),
		ItemID:   c.Param("id"),
		HolderID: holderID,
	}

	output, err := h.uc.Reserve(ctx, input)
	h.record(ctx, "reservation.reserve", holderID, err)
	if err != nil {
		h.l.Errorf(ctx, "uc.Reserve: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, reserveResp{Reservation: output.Reservation, Item: output.Item})
}

// Unreserve godoc
// @Summary     Undo a reservation
// @Description Deletes an open reservation; only its holder may do so.
// @Tags        Reservations
// @Produce     json
// @Param       id path string true "Reservation ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     403 {object} response.Resp "Not the holder"
// @Failure     404 {object} response.Resp "Unknown reservation"
// @Failure     409 {object} response.Resp "Reservation closed"
// @Router      /api/v1/reservations/{id} [DELETE]
func (h *handler) Unreserve(c *gin.Context) {
	ctx := c.Request.Context()

	holderID := c.GetString(middleware.IdentificationKey)
	input := reservation.UnreserveInput{
		ReservationID: c.Param("id"),
		HolderID:      holderID,
	}

	err := h.uc.Unreserve(ctx, input)
	h.record(ctx, "reservation.unreserve", holderID, err)
	if err != nil {
		h.l.Errorf(ctx, "uc.Unreserve: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Transfer godoc
// @Summary     Transfer anonymous reservations after sign-in
// @Description Repoints every reservation held by the visitor identification onto the authenticated user's stable identification.
// @Tags        Reservations
// @Accept      json
// @Produce     json
// @Param       body body transferReq false "Source identification; defaults to the visitor cookie"
// @Success     200 {object} transferResp
// @Router      /api/v1/identity/transfer [POST]
func (h *handler) Transfer(c *gin.Context) {
	ctx := c.Request.Context()

	// The auth front supplies the user's stable identification alongside
	// the user ID; authorization for the target was established there.
	toID := c.GetHeader("X-Identification-ID")
	if toID == "" {
		response.Unauthorized(c)
		return
	}

	var req transferReq
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.Error(c, err)
		return
	}
	fromID := req.FromID
	if fromID == "" {
		fromID, _ = c.Cookie(middleware.IdentificationCookie)
	}
	if fromID == "" || fromID == toID {
		response.OK(c, transferResp{Transferred: 0})
		return
	}

	output, err := h.uc.Transfer(ctx, reservation.TransferInput{FromID: fromID, ToID: toID})
	h.record(ctx, "reservation.transfer", toID, err)
	if err != nil {
		h.l.Errorf(ctx, "uc.Transfer: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, transferResp{Transferred: output.Transferred})
}
