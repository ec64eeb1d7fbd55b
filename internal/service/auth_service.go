package service

import (
	"context"
	"time"

	"github.com/d60-Lab/feed-service/internal/auth"
	"github.com/d60-Lab/feed-service/internal/model"
	"github.com/d60-Lab/feed-service/internal/repository"
)

// AuthService 注册 / 登录 / token 解析
type AuthService interface {
	Signup(ctx context.Context, email, password, nickname string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	ResolveToken(token string) (string, error)
}

type authService struct {
	userRepo repository.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, secret []byte, tokenTTL time.Duration) AuthService {
	return &authService{userRepo: userRepo, secret: secret, tokenTTL: tokenTTL}
}

func (s *authService) Signup(ctx context.Context, email, password, nickname string) (*model.User, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailRegistered
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &model.User{Email: email, Password: hashed, Nickname: nickname}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login 用户不存在与密码不符返回同一个错误，不泄露哪一半失败。
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil || !auth.CheckPassword(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.Email, s.secret, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) ResolveToken(token string) (string, error) {
	return auth.ParseToken(token, s.secret)
}
