package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/feed-service/pkg/pagination"
	"github.com/d60-Lab/feed-service/pkg/response"
)

// MyProfile 当前用户资料
// @Summary 我的资料
// @Tags mypage
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=model.User}
// @Router /api/mypage/profile [get]
func (h *Handler) MyProfile(c *gin.Context) {
	user, err := h.mypageSvc.Profile(c.Request.Context(), currentEmail(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, user)
}

// MyFeeds 当前用户的动态（分页+排序）
// @Summary 我的动态
// @Tags mypage
// @Produce json
// @Security BearerAuth
// @Param skip query int false "偏移" default(0)
// @Param limit query int false "每页数量" default(10)
// @Param sort_by query string false "排序" default(create_dt_desc)
// @Success 200 {object} response.Response
// @Router /api/mypage/feeds [get]
func (h *Handler) MyFeeds(c *gin.Context) {
	skip, limit, ok := parsePage(c)
	if !ok {
		return
	}
	total, feeds, err := h.mypageSvc.Feeds(c.Request.Context(), currentEmail(c), skip, limit, c.Query("sort_by"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{
		"feeds":      feeds,
		"pagination": pagination.Paginate(skip, limit, total),
	})
}

// MyComments 当前用户的评论（分页+排序）
// @Summary 我的评论
// @Tags mypage
// @Produce json
// @Security BearerAuth
// @Param skip query int false "偏移" default(0)
// @Param limit query int false "每页数量" default(10)
// @Param sort_by query string false "排序" default(create_dt_desc)
// @Success 200 {object} response.Response
// @Router /api/mypage/comments [get]
func (h *Handler) MyComments(c *gin.Context) {
	skip, limit, ok := parsePage(c)
	if !ok {
		return
	}
	total, comments, err := h.mypageSvc.Comments(c.Request.Context(), currentEmail(c), skip, limit, c.Query("sort_by"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{
		"comments":   comments,
		"pagination": pagination.Paginate(skip, limit, total),
	})
}

// Followers 某用户的粉丝列表
// @Summary 粉丝列表
// @Tags mypage
// @Produce json
// @Param user_id path int true "用户ID"
// @Param skip query int false "偏移" default(0)
// @Param limit query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Router /api/mypage/{user_id}/followers [get]
func (h *Handler) Followers(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	skip, limit, ok := parsePage(c)
	if !ok {
		return
	}
	total, followers, err := h.mypageSvc.Followers(c.Request.Context(), userID, skip, limit)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{
		"followers":  followers,
		"pagination": pagination.Paginate(skip, limit, total),
	})
}

// Followings 某用户关注的人
// @Summary 关注列表
// @Tags mypage
// @Produce json
// @Param user_id path int true "用户ID"
// @Param skip query int false "偏移" default(0)
// @Param limit query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Router /api/mypage/{user_id}/followings [get]
func (h *Handler) Followings(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	skip, limit, ok := parsePage(c)
	if !ok {
		return
	}
	total, followings, err := h.mypageSvc.Followings(c.Request.Context(), userID, skip, limit)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{
		"followings": followings,
		"pagination": pagination.Paginate(skip, limit, total),
	})
}
