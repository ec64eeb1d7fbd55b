package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/feed-service/internal/service"
	"github.com/d60-Lab/feed-service/pkg/response"
)

// Handler 聚合全部资源 handler 的依赖
type Handler struct {
	authSvc    service.AuthService
	feedSvc    service.FeedService
	commentSvc service.CommentService
	likeSvc    service.LikeService
	followSvc  service.FollowService
	mypageSvc  service.MypageService
}

func New(authSvc service.AuthService, feedSvc service.FeedService, commentSvc service.CommentService,
	likeSvc service.LikeService, followSvc service.FollowService, mypageSvc service.MypageService) *Handler {
	return &Handler{
		authSvc:    authSvc,
		feedSvc:    feedSvc,
		commentSvc: commentSvc,
		likeSvc:    likeSvc,
		followSvc:  followSvc,
		mypageSvc:  mypageSvc,
	}
}

// fail 业务错误 → HTTP 状态码
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmailRegistered):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrPermissionDenied):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrFeedNotFound),
		errors.Is(err, service.ErrCommentNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrFollowSelf),
		errors.Is(err, service.ErrLikeTarget),
		errors.Is(err, service.ErrSelectorRequired),
		errors.Is(err, service.ErrInvalidSort):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}

// currentEmail 认证中间件写入的主体 email
func currentEmail(c *gin.Context) string {
	return c.GetString("email")
}

// parsePage skip ≥ 0，limit > 0，缺省 0 / 10。
func parsePage(c *gin.Context) (int, int, bool) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		response.BadRequest(c, "skip must be a non-negative integer")
		return 0, 0, false
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		response.BadRequest(c, "limit must be a positive integer")
		return 0, 0, false
	}
	return skip, limit, true
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}
