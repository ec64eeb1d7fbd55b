package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/feed-service/pkg/pagination"
	"github.com/d60-Lab/feed-service/pkg/response"
)

type createCommentRequest struct {
	FeedID  int64  `json:"feed_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type updateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateComment 发表评论
// @Summary 发表评论
// @Tags comment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createCommentRequest true "评论内容"
// @Success 200 {object} response.Response{data=service.CommentDetail}
// @Failure 404 {object} response.Response
// @Router /api/comment/create [post]
func (h *Handler) CreateComment(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	comment, err := h.commentSvc.Create(c.Request.Context(), currentEmail(c), req.FeedID, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, comment)
}

// ListCommentsByFeed 某条动态下的评论（分页，默认 create_dt_desc）
// @Summary 动态评论列表
// @Tags comment
// @Produce json
// @Param feed_id path int true "feed id"
// @Param skip query int false "偏移" default(0)
// @Param limit query int false "每页数量" default(10)
// @Param sort_by query string false "create_dt_asc|create_dt_desc" default(create_dt_desc)
// @Success 200 {object} response.Response
// @Router /api/comment/feed/{feed_id} [get]
func (h *Handler) ListCommentsByFeed(c *gin.Context) {
	feedID, ok := pathID(c, "feed_id")
	if !ok {
		return
	}
	skip, limit, ok := parsePage(c)
	if !ok {
		return
	}
	total, comments, err := h.commentSvc.ListByFeed(c.Request.Context(), feedID, skip, limit, c.Query("sort_by"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{
		"total_count": total,
		"comments":    comments,
		"pagination":  pagination.Paginate(skip, limit, total),
	})
}

// UpdateComment 修改评论
// @Summary 修改评论
// @Tags comment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "comment id"
// @Param request body updateCommentRequest true "评论内容"
// @Success 200 {object} response.Response{data=service.CommentDetail}
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/comment/update/{id} [patch]
func (h *Handler) UpdateComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	comment, err := h.commentSvc.Update(c.Request.Context(), id, currentEmail(c), req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, comment)
}

// DeleteComment 删除评论
// @Summary 删除评论
// @Tags comment
// @Produce json
// @Security BearerAuth
// @Param id path int true "comment id"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/comment/delete/{id} [delete]
func (h *Handler) DeleteComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.commentSvc.Delete(c.Request.Context(), id, currentEmail(c)); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{"message": "comment deleted"})
}
