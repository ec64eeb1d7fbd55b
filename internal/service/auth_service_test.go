package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/feed-service/internal/model"
	"github.com/d60-Lab/feed-service/internal/repository"
)

func newAuthService(t *testing.T) (AuthService, func() int64) {
	db := setupDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), []byte("test-secret"), time.Hour)
	countUsers := func() int64 {
		var cnt int64
		require.NoError(t, db.Model(&model.User{}).Count(&cnt).Error)
		return cnt
	}
	return svc, countUsers
}

func TestSignupThenLogin(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Signup(ctx, "alice@example.com", "password123", "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "password123", user.Password)
	assert.False(t, user.CreateDT.IsZero())

	got, token, err := svc.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Nickname)

	// token 主体解析回登录邮箱
	email, err := svc.ResolveToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, countUsers := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "alice@example.com", "password123", "alice")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "alice@example.com", "other-password", "alice2")
	assert.ErrorIs(t, err, ErrEmailRegistered)
	assert.Equal(t, int64(1), countUsers())
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "alice@example.com", "password123", "alice")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newAuthService(t)

	// 用户不存在与密码错误对外不可区分
	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResolveGarbageToken(t *testing.T) {
	svc, _ := newAuthService(t)
	_, err := svc.ResolveToken("garbage")
	assert.Error(t, err)
}
