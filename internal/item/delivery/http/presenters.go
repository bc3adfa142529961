package http

import (
	"giftlist/internal/item"
	"giftlist/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	UserID      string `json:"-"`
	ListID      string `json:"-"`
	Title       string `json:"title"       binding:"required"`
	Description string `json:"description"`
	Ordinal     int    `json:"ordinal"`
	URL         string `json:"url"`
	ImageURL    string `json:"image_url"`
}

func (r createReq) toInput() item.CreateItemInput {
	return item.CreateItemInput{
		UserID:      r.UserID,
		ListID:      r.ListID,
		Title:       r.Title,
		Description: r.Description,
		Ordinal:     r.Ordinal,
		URL:         r.URL,
		ImageURL:    r.ImageURL,
	}
}

type listReq struct {
	UserID          string `form:"-"`
	ListID          string `form:"-"`
	IncludeArchived bool   `form:"include_archived"`
	Limit           int    `form:"limit"`
	Offset          int    `form:"offset"`
}

func (r listReq) toInput() item.ListItemsInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return item.ListItemsInput{
		UserID:          r.UserID,
		ListID:          r.ListID,
		IncludeArchived: r.IncludeArchived,
		Limit:           limit,
		Offset:          offset,
	}
}

type updateReq struct {
	UserID      string  `json:"-"`
	ListID      string  `json:"-"`
	ItemID      string  `json:"-"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Ordinal     *int    `json:"ordinal"`
	URL         *string `json:"url"`
	ImageURL    *string `json:"image_url"`
}

func (r updateReq) toInput() item.UpdateItemInput {
	return item.UpdateItemInput{
		UserID:      r.UserID,
		ListID:      r.ListID,
		ItemID:      r.ItemID,
		Title:       r.Title,
		Description: r.Description,
		Ordinal:     r.Ordinal,
		URL:         r.URL,
		ImageURL:    r.ImageURL,
	}
}

type moveReq struct {
	UserID       string `json:"-"`
	ListID       string `json:"-"`
	ItemID       string `json:"-"`
	TargetListID string `json:"target_list_id" binding:"required"`
}

func (r moveReq) toInput() item.MoveItemInput {
	return item.MoveItemInput{
		UserID:       r.UserID,
		ListID:       r.ListID,
		ItemID:       r.ItemID,
		TargetListID: r.TargetListID,
	}
}

// --- Response DTOs ---
// Outputs already hold representations, which are wire-safe; the DTOs here
// only shape the envelope.

type itemResp struct {
	Item model.ItemRep `json:"item"`
}

type detailResp struct {
	Item        model.ItemRep        `json:"item"`
	Reservation *model.ReservationRep `json:"reservation,omitempty"`
}

type listResp struct {
	Items  []model.ItemRep `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

type deleteAllResp struct {
	Deleted int `json:"deleted"`
}

type moveResp struct {
	Item       model.ItemRep   `json:"item"`
	OtherLists []model.ListRep `json:"other_lists"`
}

type receiveResp struct {
	Item        model.ItemRep        `json:"item"`
	Reservation model.ReservationRep `json:"reservation"`
}

// validationDetail shapes a validation failure for the response envelope:
// offending fields plus the representations needed to re-render the form.
func validationDetail(ve *item.ValidationError) map[string]any {
	detail := map[string]any{
		"fields": ve.Fields,
		"user":   ve.User,
		"list":   ve.List,
	}
	if ve.Item != nil {
		detail["item"] = *ve.Item
	}
	return detail
}
