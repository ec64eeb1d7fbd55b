package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/d60-Lab/feed-service/internal/model"
	"github.com/d60-Lab/feed-service/internal/repository"
)

func newLikeService(t *testing.T) (LikeService, *gorm.DB) {
	db := setupDB(t)
	return NewLikeService(repository.NewLikeRepository(db)), db
}

func likeCount(t *testing.T, db *gorm.DB) int64 {
	var cnt int64
	require.NoError(t, db.Model(&model.Like{}).Count(&cnt).Error)
	return cnt
}

func TestLikeToggle(t *testing.T) {
	svc, db := newLikeService(t)
	ctx := context.Background()
	feedID := int64(1)

	action, err := svc.Toggle(ctx, "alice@example.com", &feedID, nil)
	require.NoError(t, err)
	assert.Equal(t, ActionAdded, action)
	assert.Equal(t, int64(1), likeCount(t, db))

	// 偶数次 toggle 回到原始状态
	action, err = svc.Toggle(ctx, "alice@example.com", &feedID, nil)
	require.NoError(t, err)
	assert.Equal(t, ActionRemoved, action)
	assert.Equal(t, int64(0), likeCount(t, db))

	action, err = svc.Toggle(ctx, "alice@example.com", &feedID, nil)
	require.NoError(t, err)
	assert.Equal(t, ActionAdded, action)
}

func TestLikeToggleTargetValidation(t *testing.T) {
	svc, _ := newLikeService(t)
	ctx := context.Background()
	id := int64(1)

	_, err := svc.Toggle(ctx, "alice@example.com", nil, nil)
	assert.ErrorIs(t, err, ErrLikeTarget)

	_, err = svc.Toggle(ctx, "alice@example.com", &id, &id)
	assert.ErrorIs(t, err, ErrLikeTarget)
}

// 同一 target_id 的 feed 赞与 comment 赞互不相干
func TestLikeKindsAreIndependent(t *testing.T) {
	svc, db := newLikeService(t)
	ctx := context.Background()
	id := int64(7)

	_, err := svc.Toggle(ctx, "alice@example.com", &id, nil)
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "alice@example.com", nil, &id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), likeCount(t, db))

	action, err := svc.Toggle(ctx, "alice@example.com", nil, &id)
	require.NoError(t, err)
	assert.Equal(t, ActionRemoved, action)
	assert.Equal(t, int64(1), likeCount(t, db))
}

func TestLikePerUser(t *testing.T) {
	svc, db := newLikeService(t)
	ctx := context.Background()
	feedID := int64(1)

	_, err := svc.Toggle(ctx, "alice@example.com", &feedID, nil)
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "bob@example.com", &feedID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), likeCount(t, db))
}
