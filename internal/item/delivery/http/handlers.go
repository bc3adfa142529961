package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"giftlist/internal/item"
	"giftlist/pkg/events"
	"giftlist/pkg/response"
)

// record fires the action event hook; best-effort, never fails the request.
func (h *handler) record(ctx context.Context, action, actorID string, err error) {
	e := events.Event{Action: action, ActorID: actorID, At: time.Now().UTC()}
	if err != nil {
		e.Error = err.Error()
	}
	h.events.Record(ctx, e)
}

// Create godoc
// @Summary     Create a new item
// @Description Adds an item to one of the caller's lists.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       list_id path string    true "List ID"
// @Param       body    body createReq true "Item data"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Unknown user or list"
// @Failure     409 {object} response.Resp "Item limit reached"
// @Failure     422 {object} response.Resp "Validation failed"
// @Router      /api/v1/lists/{list_id}/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	h.record(ctx, "item.create", req.UserID, err)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, itemResp{Item: output.Item})
}

// List godoc
// @Summary     List items
// @Description Returns a page of the list's items ordered by ordinal.
// @Tags        Items
// @Produce     json
// @Param       list_id          path  string true  "List ID"
// @Param       include_archived query bool   false "Include archived items"
// @Param       limit            query int    false "Page size (default: 20)"
// @Param       offset           query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     404 {object} response.Resp "Unknown user or list"
// @Router      /api/v1/lists/{list_id}/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, listResp{
		Items:  output.Items,
		Total:  output.Total,
		Limit:  output.Limit,
		Offset: output.Offset,
	})
}

// Detail godoc
// @Summary     Get item detail
// @Description Returns a single item with its reservation state.
// @Tags        Items
// @Produce     json
// @Param       list_id path string true "List ID"
// @Param       id      path string true "Item ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/lists/{list_id}/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	userID, listID, itemID := scope(c)
	output, err := h.uc.Detail(ctx, item.DetailItemInput{UserID: userID, ListID: listID, ItemID: itemID})
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, detailResp{Item: output.Item, Reservation: output.Reservation})
}

// Update godoc
// @Summary     Update an item
// @Description Partially updates an item; absent fields keep their value.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       list_id path string    true "List ID"
// @Param       id      path string    true "Item ID"
// @Param       body    body updateReq true "Fields to update"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     422 {object} response.Resp "Validation failed"
// @Router      /api/v1/lists/{list_id}/items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	h.record(ctx, "item.update", req.UserID, err)
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, itemResp{Item: output.Item})
}

// Delete godoc
// @Summary     Delete an item
// @Description Removes an item; blocked while a reservation exists.
// @Tags        Items
// @Produce     json
// @Param       list_id path string true "List ID"
// @Param       id      path string true "Item ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Item not deletable"
// @Router      /api/v1/lists/{list_id}/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	userID, listID, itemID := scope(c)
	err := h.uc.Delete(ctx, item.DeleteItemInput{UserID: userID, ListID: listID, ItemID: itemID})
	h.record(ctx, "item.delete", userID, err)
	if err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// DeleteAll godoc
// @Summary     Delete all items of a list
// @Description Removes every item; fails if any item has a reservation.
// @Tags        Items
// @Produce     json
// @Param       list_id path string true "List ID"
// @Success     200 {object} deleteAllResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "An item is not deletable"
// @Router      /api/v1/lists/{list_id}/items [DELETE]
func (h *handler) DeleteAll(c *gin.Context) {
	ctx := c.Request.Context()

	userID, listID, _ := scope(c)
	output, err := h.uc.DeleteAll(ctx, item.DeleteAllItemsInput{UserID: userID, ListID: listID})
	h.record(ctx, "item.delete_all", userID, err)
	if err != nil {
		h.l.Errorf(ctx, "uc.DeleteAll: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, deleteAllResp{Deleted: output.Deleted})
}

// Move godoc
// @Summary     Move an item to another list
// @Description Reassigns the item; blocked while a reservation exists.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       list_id path string  true "Source list ID"
// @Param       id      path string  true "Item ID"
// @Param       body    body moveReq true "Target list"
// @Success     200 {object} moveResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Item not movable"
// @Router      /api/v1/lists/{list_id}/items/{id}/move [POST]
func (h *handler) Move(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMoveReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Move(ctx, req.toInput())
	h.record(ctx, "item.move", req.UserID, err)
	if err != nil {
		h.l.Errorf(ctx, "uc.Move: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, moveResp{Item: output.Item, OtherLists: output.OtherLists})
}

// Receive godoc
// @Summary     Mark a reserved item as received
// @Description Closes the item's open reservation; final, not repeatable.
// @Tags        Items
// @Produce     json
// @Param       list_id path string true "List ID"
// @Param       id      path string true "Item ID"
// @Success     200 {object} receiveResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Item not receivable"
// @Router      /api/v1/lists/{list_id}/items/{id}/receive [POST]
func (h *handler) Receive(c *gin.Context) {
	ctx := c.Request.Context()

	userID, listID, itemID := scope(c)
	output, err := h.uc.Receive(ctx, item.ReceiveItemInput{UserID: userID, ListID: listID, ItemID: itemID})
	h.record(ctx, "item.receive", userID, err)
	if err != nil {
		h.l.Errorf(ctx, "uc.Receive: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, receiveResp{Item: output.Item, Reservation: output.Reservation})
}

// Archive godoc
// @Summary     Archive an item
// @Tags        Items
// @Produce     json
// @Param       list_id path string true "List ID"
// @Param       id      path string true "Item ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Item not archivable"
// @Router      /api/v1/lists/{list_id}/items/{id}/archive [POST]
func (h *handler) Archive(c *gin.Context) {
	h.setArchived(c, true)
}

// Unarchive godoc
// @Summary     Unarchive an item
// @Tags        Items
// @Produce     json
// @Param       list_id path string true "List ID"
// @Param       id      path string true "Item ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Item not archivable"
// @Router      /api/v1/lists/{list_id}/items/{id}/unarchive [POST]
func (h *handler) Unarchive(c *gin.Context) {
	h.setArchived(c, false)
}

func (h *handler) setArchived(c *gin.Context, archived bool) {
	ctx := c.Request.Context()

	userID, listID, itemID := scope(c)
	input := item.ArchiveItemInput{UserID: userID, ListID: listID, ItemID: itemID}

	var output item.ArchiveItemOutput
	var err error
	action := "item.archive"
	if archived {
		output, err = h.uc.Archive(ctx, input)
	} else {
		action = "item.unarchive"
		output, err = h.uc.Unarchive(ctx, input)
	}
	h.record(ctx, action, userID, err)
	if err != nil {
		h.l.Errorf(ctx, "uc.setArchived: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, itemResp{Item: output.Item})
}
