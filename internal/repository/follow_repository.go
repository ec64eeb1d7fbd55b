package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/feed-service/internal/model"
)

type FollowRepository interface {
	// Insert 以 (follower_id, following_id) 冲突忽略方式插入；返回是否真正落了新行。
	Insert(ctx context.Context, followerID, followingID int64) (bool, error)
	Delete(ctx context.Context, followerID, followingID int64) error
	ListFollowers(ctx context.Context, followingID int64, offset, limit int) ([]*model.User, error)
	CountFollowers(ctx context.Context, followingID int64) (int64, error)
	ListFollowings(ctx context.Context, followerID int64, offset, limit int) ([]*model.User, error)
	CountFollowings(ctx context.Context, followerID int64) (int64, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository { return &followRepository{db: db} }

func (r *followRepository) Insert(ctx context.Context, followerID, followingID int64) (bool, error) {
	f := &model.Follow{FollowerID: followerID, FollowingID: followingID}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(f)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.Follow{}).Error
}

// ListFollowers 关注 followingID 的用户，按关注时间倒序。
func (r *followRepository) ListFollowers(ctx context.Context, followingID int64, offset, limit int) ([]*model.User, error) {
	var res []*model.User
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.following_id = ?", followingID).
		Order("follows.create_dt DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (r *followRepository) CountFollowers(ctx context.Context, followingID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Follow{}).Where("following_id = ?", followingID).Count(&cnt).Error
	return cnt, err
}

// ListFollowings followerID 关注的用户，按关注时间倒序。
func (r *followRepository) ListFollowings(ctx context.Context, followerID int64, offset, limit int) ([]*model.User, error) {
	var res []*model.User
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Joins("JOIN follows ON follows.following_id = users.id").
		Where("follows.follower_id = ?", followerID).
		Order("follows.create_dt DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (r *followRepository) CountFollowings(ctx context.Context, followerID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Follow{}).Where("follower_id = ?", followerID).Count(&cnt).Error
	return cnt, err
}
