package http

import (
	"github.com/gin-gonic/gin"

	"giftlist/internal/middleware"
)

// scope pulls the identifiers the middleware resolved plus the URI params.
func scope(c *gin.Context) (userID, listID, itemID string) {
	return c.GetString(middleware.UserIDKey), c.Param("list_id"), c.Param("id")
}

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.UserID, req.ListID, _ = scope(c)
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.UserID, req.ListID, _ = scope(c)
	return req, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.UserID, req.ListID, req.ItemID = scope(c)
	return req, nil
}

func (h *handler) processMoveReq(c *gin.Context) (moveReq, error) {
	var req moveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.UserID, req.ListID, req.ItemID = scope(c)
	return req, nil
}
