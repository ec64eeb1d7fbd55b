package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/feed-service/pkg/response"
)

// ToggleFollow 关注/取关目标用户
// @Summary 关注 toggle
// @Tags follow
// @Produce json
// @Security BearerAuth
// @Param following_id path int true "目标用户ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/follow/{following_id} [patch]
func (h *Handler) ToggleFollow(c *gin.Context) {
	followingID, ok := pathID(c, "following_id")
	if !ok {
		return
	}

	// 由 token 主体 email 解析出当前用户数字 ID
	me, err := h.mypageSvc.Profile(c.Request.Context(), currentEmail(c))
	if err != nil {
		fail(c, err)
		return
	}

	action, err := h.followSvc.Toggle(c.Request.Context(), me.ID, followingID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{"action": action})
}
