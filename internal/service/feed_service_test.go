package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/d60-Lab/feed-service/internal/model"
	"github.com/d60-Lab/feed-service/internal/repository"
	"github.com/d60-Lab/feed-service/internal/storage"
)

func newFeedService(t *testing.T) (FeedService, *gorm.DB, *storage.MemStore) {
	db := setupDB(t)
	store := storage.NewMemStore("test-bucket")
	svc := NewFeedService(db, repository.NewFeedRepository(db), repository.NewUserRepository(db), store)
	return svc, db, store
}

func img(name string) storage.File {
	return storage.File{Name: name, ContentType: "image/jpeg", Body: strings.NewReader("data-" + name)}
}

func TestFeedCreateWithImages(t *testing.T) {
	svc, db, store := newFeedService(t)
	seedUser(t, db, "alice@example.com", "alice")
	ctx := context.Background()

	feed, err := svc.Create(ctx, "alice@example.com", "hello", "first post", []storage.File{img("a.jpg"), img("b.jpg")})
	require.NoError(t, err)
	assert.Equal(t, "alice", feed.AuthorNickname)
	require.Len(t, feed.ImageURLs, 2)
	assert.Equal(t, 2, store.Len())
	for _, u := range feed.ImageURLs {
		assert.True(t, store.Has(u))
	}
}

func TestFeedCreateAuthorVanished(t *testing.T) {
	svc, _, store := newFeedService(t)

	_, err := svc.Create(context.Background(), "ghost@example.com", "t", "c", []storage.File{img("a.jpg")})
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestFeedGet(t *testing.T) {
	svc, db, _ := newFeedService(t)
	seedUser(t, db, "alice@example.com", "alice")
	f := seedFeed(t, db, "alice@example.com", "hello", time.Now())
	ctx := context.Background()

	got, err := svc.Get(ctx, f.ID)
	require.NoError(t, err)
	// 昵称读取时即时解析，不冗余在 feed 行里
	assert.Equal(t, "alice", got.AuthorNickname)

	_, err = svc.Get(ctx, 99999)
	assert.ErrorIs(t, err, ErrFeedNotFound)
}

func TestFeedUpdateReconcile(t *testing.T) {
	svc, db, store := newFeedService(t)
	seedUser(t, db, "alice@example.com", "alice")
	ctx := context.Background()

	created, err := svc.Create(ctx, "alice@example.com", "t", "c", []storage.File{img("e1.jpg"), img("e2.jpg")})
	require.NoError(t, err)
	existing1, existing2 := created.ImageURLs[0], created.ImageURLs[1]

	updated, err := svc.Update(ctx, created.ID, "alice@example.com", "t2", "c2",
		[]storage.File{img("a.jpg"), img("b.jpg")}, []string{existing1})
	require.NoError(t, err)

	// 新列表 = (C − R) ∪ N'，存量顺序在前，新上传追加在后
	require.Len(t, updated.ImageURLs, 3)
	assert.Equal(t, existing2, updated.ImageURLs[0])
	assert.False(t, store.Has(existing1))
	assert.True(t, store.Has(updated.ImageURLs[1]))
	assert.True(t, store.Has(updated.ImageURLs[2]))
	assert.Equal(t, 3, store.Len())
	assert.Equal(t, "t2", updated.Title)
}

func TestFeedUpdateAlwaysAdvancesUpdateDT(t *testing.T) {
	svc, db, _ := newFeedService(t)
	seedUser(t, db, "alice@example.com", "alice")
	old := time.Now().Add(-time.Hour)
	f := seedFeed(t, db, "alice@example.com", "t", old, "https://b.s3.local/x.jpg")
	ctx := context.Background()

	// 空调和也要落库，update_dt 前进，图片列表不变
	updated, err := svc.Update(ctx, f.ID, "alice@example.com", "t", "content of t", nil, nil)
	require.NoError(t, err)
	assert.True(t, updated.UpdateDT.After(old))
	assert.Equal(t, []string{"https://b.s3.local/x.jpg"}, updated.ImageURLs)
}

func TestFeedUpdateByNonAuthor(t *testing.T) {
	svc, db, _ := newFeedService(t)
	seedUser(t, db, "alice@example.com", "alice")
	seedUser(t, db, "bob@example.com", "bob")
	f := seedFeed(t, db, "alice@example.com", "original", time.Now())
	ctx := context.Background()

	_, err := svc.Update(ctx, f.ID, "bob@example.com", "hacked", "hacked", nil, nil)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	var row model.Feed
	require.NoError(t, db.First(&row, f.ID).Error)
	assert.Equal(t, "original", row.Title)
}

func TestFeedUpdateNotFound(t *testing.T) {
	svc, db, _ := newFeedService(t)
	seedUser(t, db, "alice@example.com", "alice")

	_, err := svc.Update(context.Background(), 12345, "alice@example.com", "t", "c", nil, nil)
	assert.ErrorIs(t, err, ErrFeedNotFound)
}

func TestFeedDeleteCascades(t *testing.T) {
	svc, db, store := newFeedService(t)
	seedUser(t, db, "alice@example.com", "alice")
	seedUser(t, db, "bob@example.com", "bob")
	ctx := context.Background()

	feed, err := svc.Create(ctx, "alice@example.com", "t", "c", []storage.File{img("u1.jpg"), img("u2.jpg")})
	require.NoError(t, err)
	comment := seedComment(t, db, "bob@example.com", feed.ID, "nice", time.Now())
	require.NoError(t, db.Create(&model.Like{UserEmail: "bob@example.com", Kind: model.LikeKindFeed, TargetID: feed.ID}).Error)
	require.NoError(t, db.Create(&model.Like{UserEmail: "alice@example.com", Kind: model.LikeKindComment, TargetID: comment.ID}).Error)

	require.NoError(t, svc.Delete(ctx, feed.ID, "alice@example.com"))

	// 行、子级评论/点赞、对象存储里的图片全部消失
	assert.Equal(t, 0, store.Len())
	var feeds, comments, likes int64
	db.Model(&model.Feed{}).Count(&feeds)
	db.Model(&model.Comment{}).Count(&comments)
	db.Model(&model.Like{}).Count(&likes)
	assert.Zero(t, feeds)
	assert.Zero(t, comments)
	assert.Zero(t, likes)
}

func TestFeedDeleteByNonAuthor(t *testing.T) {
	svc, db, _ := newFeedService(t)
	seedUser(t, db, "alice@example.com", "alice")
	seedUser(t, db, "bob@example.com", "bob")
	f := seedFeed(t, db, "alice@example.com", "t", time.Now())

	err := svc.Delete(context.Background(), f.ID, "bob@example.com")
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestFeedListByUser(t *testing.T) {
	svc, db, _ := newFeedService(t)
	alice := seedUser(t, db, "alice@example.com", "alice")
	seedUser(t, db, "bob@example.com", "bob")
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		seedFeed(t, db, "alice@example.com", "a", base.Add(time.Duration(i)*time.Minute))
	}
	seedFeed(t, db, "bob@example.com", "b", base)
	ctx := context.Background()
	email := "alice@example.com"

	// total 始终是过滤后的全量，与窗口无关
	total, page, err := svc.ListByUser(ctx, UserSelector{Email: &email}, 0, 2, "id_asc")
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 2)
	assert.Less(t, page[0].ID, page[1].ID)

	total, page, err = svc.ListByUser(ctx, UserSelector{UserID: &alice.ID}, 4, 2, "create_dt_desc")
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 1)

	nickname := "alice"
	_, page, err = svc.ListByUser(ctx, UserSelector{Nickname: &nickname}, 0, 10, "create_dt_asc")
	require.NoError(t, err)
	require.Len(t, page, 5)
	assert.True(t, page[0].CreateDT.Before(page[4].CreateDT))
}

func TestFeedListByUserSelectorValidation(t *testing.T) {
	svc, db, _ := newFeedService(t)
	alice := seedUser(t, db, "alice@example.com", "alice")
	ctx := context.Background()
	email := "alice@example.com"

	_, _, err := svc.ListByUser(ctx, UserSelector{}, 0, 10, "")
	assert.ErrorIs(t, err, ErrSelectorRequired)

	_, _, err = svc.ListByUser(ctx, UserSelector{Email: &email, UserID: &alice.ID}, 0, 10, "")
	assert.ErrorIs(t, err, ErrSelectorRequired)
}

func TestFeedListByUserInvalidSort(t *testing.T) {
	svc, db, _ := newFeedService(t)
	seedUser(t, db, "alice@example.com", "alice")
	email := "alice@example.com"

	_, _, err := svc.ListByUser(context.Background(), UserSelector{Email: &email}, 0, 10, "title_asc")
	assert.ErrorIs(t, err, ErrInvalidSort)
}

func TestReconcileImages(t *testing.T) {
	cases := []struct {
		name                       string
		current, removed, uploaded []string
		want                       []string
	}{
		{"append only", []string{"a"}, nil, []string{"x"}, []string{"a", "x"}},
		{"remove only", []string{"a", "b"}, []string{"a"}, nil, []string{"b"}},
		{"remove and add", []string{"a", "b"}, []string{"a"}, []string{"x", "y"}, []string{"b", "x", "y"}},
		{"no-op", []string{"a"}, nil, nil, []string{"a"}},
		// 集合语义：重复 URL 一次移除全部出现
		{"duplicates removed as set", []string{"a", "b", "a"}, []string{"a"}, nil, []string{"b"}},
		{"remove absent url", []string{"a"}, []string{"z"}, nil, []string{"a"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, reconcileImages(tc.current, tc.removed, tc.uploaded))
		})
	}
}
