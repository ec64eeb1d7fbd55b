package service

import (
	"context"

	"github.com/d60-Lab/feed-service/internal/model"
	"github.com/d60-Lab/feed-service/internal/repository"
)

// toggle 结果
const (
	ActionAdded   = "added"
	ActionRemoved = "removed"
)

// LikeService 点赞 toggle，目标为 feed 或 comment 二选一
type LikeService interface {
	Toggle(ctx context.Context, userEmail string, feedID, commentID *int64) (string, error)
}

type likeService struct {
	likeRepo repository.LikeRepository
}

func NewLikeService(likeRepo repository.LikeRepository) LikeService {
	return &likeService{likeRepo: likeRepo}
}

// Toggle 先以冲突忽略插入，没落新行说明已点过 → 删除。
// 唯一键兜底并发 double-toggle，不依赖先读后写。
func (s *likeService) Toggle(ctx context.Context, userEmail string, feedID, commentID *int64) (string, error) {
	if (feedID == nil) == (commentID == nil) {
		return "", ErrLikeTarget
	}

	kind := model.LikeKindFeed
	targetID := int64(0)
	if feedID != nil {
		targetID = *feedID
	} else {
		kind = model.LikeKindComment
		targetID = *commentID
	}

	inserted, err := s.likeRepo.Insert(ctx, &model.Like{UserEmail: userEmail, Kind: kind, TargetID: targetID})
	if err != nil {
		return "", err
	}
	if inserted {
		return ActionAdded, nil
	}
	if err := s.likeRepo.Delete(ctx, userEmail, kind, targetID); err != nil {
		return "", err
	}
	return ActionRemoved, nil
}
