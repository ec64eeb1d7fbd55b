package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/d60-Lab/feed-service/internal/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Feed{}, &model.Comment{}, &model.Like{}, &model.Follow{},
	))
	return db
}

// 唯一键 + OnConflict DoNothing：重复插入不落第二行，返回 false。
func TestLikeInsertConflict(t *testing.T) {
	db := setupDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	inserted, err := repo.Insert(ctx, &model.Like{UserEmail: "a@x.com", Kind: model.LikeKindFeed, TargetID: 1})
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.Insert(ctx, &model.Like{UserEmail: "a@x.com", Kind: model.LikeKindFeed, TargetID: 1})
	require.NoError(t, err)
	assert.False(t, inserted)

	var cnt int64
	db.Model(&model.Like{}).Count(&cnt)
	assert.Equal(t, int64(1), cnt)
}

func TestFollowInsertConflict(t *testing.T) {
	db := setupDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	inserted, err := repo.Insert(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.Insert(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, inserted)

	// 反向是另一条边
	inserted, err = repo.Insert(ctx, 2, 1)
	require.NoError(t, err)
	assert.True(t, inserted)
}

func TestFeedCountIndependentOfWindow(t *testing.T) {
	db := setupDB(t)
	repo := NewFeedRepository(db)
	ctx := context.Background()

	base := time.Now()
	for i := 0; i < 7; i++ {
		require.NoError(t, db.Create(&model.Feed{
			Title: "t", Content: "c", AuthorEmail: "a@x.com",
			CreateDT: base.Add(time.Duration(i) * time.Second),
		}).Error)
	}

	total, err := repo.CountByAuthor(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)

	page, err := repo.ListByAuthor(ctx, "a@x.com", 5, 5, "id ASC")
	require.NoError(t, err)
	assert.Len(t, page, 2)
}

func TestFollowListJoins(t *testing.T) {
	db := setupDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	users := []model.User{
		{Email: "a@x.com", Password: "p", Nickname: "a"},
		{Email: "b@x.com", Password: "p", Nickname: "b"},
		{Email: "c@x.com", Password: "p", Nickname: "c"},
	}
	require.NoError(t, db.Create(&users).Error)
	_, err := repo.Insert(ctx, users[1].ID, users[0].ID)
	require.NoError(t, err)
	_, err = repo.Insert(ctx, users[2].ID, users[0].ID)
	require.NoError(t, err)

	followers, err := repo.ListFollowers(ctx, users[0].ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, followers, 2)

	cnt, err := repo.CountFollowers(ctx, users[0].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cnt)

	followings, err := repo.ListFollowings(ctx, users[1].ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, followings, 1)
	assert.Equal(t, "a@x.com", followings[0].Email)
}
