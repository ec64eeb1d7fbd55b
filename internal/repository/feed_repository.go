package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/feed-service/internal/model"
)

type FeedRepository interface {
	Create(ctx context.Context, feed *model.Feed) error
	GetByID(ctx context.Context, id int64) (*model.Feed, error)
	Save(ctx context.Context, feed *model.Feed) error
	ListAll(ctx context.Context) ([]*model.Feed, error)
	ListByAuthor(ctx context.Context, authorEmail string, offset, limit int, order string) ([]*model.Feed, error)
	CountByAuthor(ctx context.Context, authorEmail string) (int64, error)
}

type feedRepository struct {
	db *gorm.DB
}

func NewFeedRepository(db *gorm.DB) FeedRepository { return &feedRepository{db: db} }

func (r *feedRepository) Create(ctx context.Context, feed *model.Feed) error {
	return r.db.WithContext(ctx).Create(feed).Error
}

func (r *feedRepository) GetByID(ctx context.Context, id int64) (*model.Feed, error) {
	var f model.Feed
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &f, err
}

func (r *feedRepository) Save(ctx context.Context, feed *model.Feed) error {
	return r.db.WithContext(ctx).Save(feed).Error
}

func (r *feedRepository) ListAll(ctx context.Context) ([]*model.Feed, error) {
	var res []*model.Feed
	err := r.db.WithContext(ctx).Order("create_dt DESC").Find(&res).Error
	return res, err
}

func (r *feedRepository) ListByAuthor(ctx context.Context, authorEmail string, offset, limit int, order string) ([]*model.Feed, error) {
	var res []*model.Feed
	err := r.db.WithContext(ctx).
		Where("author_email = ?", authorEmail).
		Order(order).
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

// CountByAuthor 与 ListByAuthor 使用相同过滤条件，与分页窗口无关。
func (r *feedRepository) CountByAuthor(ctx context.Context, authorEmail string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Feed{}).Where("author_email = ?", authorEmail).Count(&cnt).Error
	return cnt, err
}
