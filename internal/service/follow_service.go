package service

import (
	"context"

	"github.com/d60-Lab/feed-service/internal/repository"
)

// FollowService 关注 toggle
type FollowService interface {
	Toggle(ctx context.Context, followerID, followingID int64) (string, error)
}

type followService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) FollowService {
	return &followService{followRepo: followRepo, userRepo: userRepo}
}

// Toggle 禁止自关注；目标用户必须存在。与点赞同一套幂等 toggle 形态。
func (s *followService) Toggle(ctx context.Context, followerID, followingID int64) (string, error) {
	if followerID == followingID {
		return "", ErrFollowSelf
	}

	target, err := s.userRepo.GetByID(ctx, followingID)
	if err != nil {
		return "", err
	}
	if target == nil {
		return "", ErrUserNotFound
	}

	inserted, err := s.followRepo.Insert(ctx, followerID, followingID)
	if err != nil {
		return "", err
	}
	if inserted {
		return ActionAdded, nil
	}
	if err := s.followRepo.Delete(ctx, followerID, followingID); err != nil {
		return "", err
	}
	return ActionRemoved, nil
}
