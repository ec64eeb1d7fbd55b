package service

import (
	"testing"
	"time"

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
	// 单连接，避免连接池拿到新的空内存库
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Feed{}, &model.Comment{}, &model.Like{}, &model.Follow{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, nickname string) *model.User {
	t.Helper()
	u := &model.User{Email: email, Password: "$2a$10$hash", Nickname: nickname}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedFeed(t *testing.T, db *gorm.DB, authorEmail, title string, createDT time.Time, urls ...string) *model.Feed {
	t.Helper()
	f := &model.Feed{Title: title, Content: "content of " + title, AuthorEmail: authorEmail, ImageURLs: urls, CreateDT: createDT, UpdateDT: createDT}
	require.NoError(t, db.Create(f).Error)
	return f
}

func seedComment(t *testing.T, db *gorm.DB, authorEmail string, feedID int64, content string, createDT time.Time) *model.Comment {
	t.Helper()
	c := &model.Comment{Content: content, AuthorEmail: authorEmail, FeedID: feedID, CreateDT: createDT, UpdateDT: createDT}
	require.NoError(t, db.Create(c).Error)
	return c
}
