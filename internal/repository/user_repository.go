package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/feed-service/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByNickname(ctx context.Context, nickname string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListByEmails(ctx context.Context, emails []string) ([]*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *userRepository) GetByNickname(ctx context.Context, nickname string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("nickname = ?", nickname).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

// ListByEmails 批量取用户（评论列表昵称解析用）。
func (r *userRepository) ListByEmails(ctx context.Context, emails []string) ([]*model.User, error) {
	if len(emails) == 0 {
		return nil, nil
	}
	var res []*model.User
	err := r.db.WithContext(ctx).Where("email IN ?", emails).Find(&res).Error
	return res, err
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
