package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/feed-service/internal/model"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id int64) (*model.Comment, error)
	Save(ctx context.Context, comment *model.Comment) error
	Delete(ctx context.Context, id int64) error
	ListByFeed(ctx context.Context, feedID int64, offset, limit int, order string) ([]*model.Comment, error)
	CountByFeed(ctx context.Context, feedID int64) (int64, error)
	ListByAuthor(ctx context.Context, authorEmail string, offset, limit int, order string) ([]*model.Comment, error)
	CountByAuthor(ctx context.Context, authorEmail string) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepository{db: db} }

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	var c model.Comment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *commentRepository) Save(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Comment{}).Error
}

func (r *commentRepository) ListByFeed(ctx context.Context, feedID int64, offset, limit int, order string) ([]*model.Comment, error) {
	var res []*model.Comment
	err := r.db.WithContext(ctx).
		Where("feed_id = ?", feedID).
		Order(order).
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (r *commentRepository) CountByFeed(ctx context.Context, feedID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Comment{}).Where("feed_id = ?", feedID).Count(&cnt).Error
	return cnt, err
}

func (r *commentRepository) ListByAuthor(ctx context.Context, authorEmail string, offset, limit int, order string) ([]*model.Comment, error) {
	var res []*model.Comment
	err := r.db.WithContext(ctx).
		Where("author_email = ?", authorEmail).
		Order(order).
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (r *commentRepository) CountByAuthor(ctx context.Context, authorEmail string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Comment{}).Where("author_email = ?", authorEmail).Count(&cnt).Error
	return cnt, err
}
