package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/feed-service/internal/model"
)

type LikeRepository interface {
	// Insert 以自然键冲突忽略方式插入；返回是否真正落了新行。
	Insert(ctx context.Context, like *model.Like) (bool, error)
	Delete(ctx context.Context, userEmail string, kind model.LikeKind, targetID int64) error
	CountByTarget(ctx context.Context, kind model.LikeKind, targetID int64) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository { return &likeRepository{db: db} }

// Insert 并发 double-toggle 时冲突方 RowsAffected 为 0，
// 调用方据此转为删除分支，而不是依赖先读后写。
func (r *likeRepository) Insert(ctx context.Context, like *model.Like) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(like)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *likeRepository) Delete(ctx context.Context, userEmail string, kind model.LikeKind, targetID int64) error {
	return r.db.WithContext(ctx).
		Where("user_email = ? AND kind = ? AND target_id = ?", userEmail, kind, targetID).
		Delete(&model.Like{}).Error
}

func (r *likeRepository) CountByTarget(ctx context.Context, kind model.LikeKind, targetID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("kind = ? AND target_id = ?", kind, targetID).
		Count(&cnt).Error
	return cnt, err
}
