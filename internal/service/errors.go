package service

import "errors"

// 业务错误，由 handler 层映射为 HTTP 状态码。
var (
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrFeedNotFound       = errors.New("feed not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrFollowSelf         = errors.New("cannot follow self")
	ErrLikeTarget         = errors.New("either feed_id or comment_id must be provided")
	ErrSelectorRequired   = errors.New("exactly one of user_id, nickname, email must be provided")
	ErrInvalidSort        = errors.New("unrecognized sort_by value")
)
