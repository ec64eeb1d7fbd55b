package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/feed-service/pkg/response"
)

// ToggleLike 点赞/取消点赞，feed_id 与 comment_id 二选一
// @Summary 点赞 toggle
// @Tags like
// @Produce json
// @Security BearerAuth
// @Param feed_id query int false "feed id（与 comment_id 二选一）"
// @Param comment_id query int false "comment id（与 feed_id 二选一）"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/like/ [patch]
func (h *Handler) ToggleLike(c *gin.Context) {
	var feedID, commentID *int64
	if v := c.Query("feed_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.BadRequest(c, "invalid feed_id")
			return
		}
		feedID = &id
	}
	if v := c.Query("comment_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.BadRequest(c, "invalid comment_id")
			return
		}
		commentID = &id
	}

	action, err := h.likeSvc.Toggle(c.Request.Context(), currentEmail(c), feedID, commentID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{"action": action})
}
