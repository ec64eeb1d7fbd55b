package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/d60-Lab/feed-service/internal/model"
	"github.com/d60-Lab/feed-service/internal/repository"
	"github.com/d60-Lab/feed-service/internal/storage"
	"github.com/d60-Lab/feed-service/pkg/logger"
)

// UserSelector list-by-user 的查询选择器，三者必须恰好给一个。
type UserSelector struct {
	UserID   *int64
	Nickname *string
	Email    *string
}

// FeedService 动态 CRUD + 图片附件生命周期
type FeedService interface {
	Create(ctx context.Context, authorEmail, title, content string, images []storage.File) (*FeedDetail, error)
	Get(ctx context.Context, id int64) (*FeedDetail, error)
	List(ctx context.Context) ([]*FeedDetail, error)
	ListByUser(ctx context.Context, sel UserSelector, skip, limit int, sortBy string) (int64, []*FeedDetail, error)
	Update(ctx context.Context, id int64, actorEmail, title, content string, newImages []storage.File, removedURLs []string) (*FeedDetail, error)
	Delete(ctx context.Context, id int64, actorEmail string) error
}

type feedService struct {
	db       *gorm.DB
	feedRepo repository.FeedRepository
	userRepo repository.UserRepository
	store    storage.ObjectStore
}

func NewFeedService(db *gorm.DB, feedRepo repository.FeedRepository, userRepo repository.UserRepository, store storage.ObjectStore) FeedService {
	return &feedService{db: db, feedRepo: feedRepo, userRepo: userRepo, store: store}
}

// uploadAll 逐个上传，任何一个失败则回收本批已传对象后报错。
func (s *feedService) uploadAll(ctx context.Context, images []storage.File) ([]string, error) {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		u, err := s.store.Upload(ctx, img)
		if err != nil {
			s.deleteBlobs(ctx, urls)
			return nil, err
		}
		urls = append(urls, u)
	}
	return urls, nil
}

// deleteBlobs 尽力删除，单个失败不影响其余，只记 warn。
func (s *feedService) deleteBlobs(ctx context.Context, urls []string) {
	for _, u := range urls {
		if err := s.store.Delete(ctx, u); err != nil {
			logger.Warn("delete blob failed", zap.String("url", u), zap.Error(err))
		}
	}
}

func (s *feedService) Create(ctx context.Context, authorEmail, title, content string, images []storage.File) (*FeedDetail, error) {
	author, err := s.userRepo.GetByEmail(ctx, authorEmail)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	// 先传图，行写失败再补偿删除，避免悬空引用
	urls, err := s.uploadAll(ctx, images)
	if err != nil {
		return nil, err
	}

	feed := &model.Feed{Title: title, Content: content, AuthorEmail: authorEmail, ImageURLs: urls}
	if err := s.feedRepo.Create(ctx, feed); err != nil {
		s.deleteBlobs(ctx, urls)
		return nil, err
	}
	return newFeedDetail(feed, author.Nickname), nil
}

func (s *feedService) Get(ctx context.Context, id int64) (*FeedDetail, error) {
	feed, err := s.feedRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if feed == nil {
		return nil, ErrFeedNotFound
	}
	author, err := s.userRepo.GetByEmail(ctx, feed.AuthorEmail)
	if err != nil {
		return nil, err
	}
	nickname := ""
	if author != nil {
		nickname = author.Nickname
	}
	return newFeedDetail(feed, nickname), nil
}

func (s *feedService) List(ctx context.Context) ([]*FeedDetail, error) {
	feeds, err := s.feedRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.attachNicknames(ctx, feeds)
}

func (s *feedService) ListByUser(ctx context.Context, sel UserSelector, skip, limit int, sortBy string) (int64, []*FeedDetail, error) {
	order, err := parseFeedSort(sortBy)
	if err != nil {
		return 0, nil, err
	}

	var user *model.User
	switch {
	case sel.UserID != nil && sel.Nickname == nil && sel.Email == nil:
		user, err = s.userRepo.GetByID(ctx, *sel.UserID)
	case sel.Nickname != nil && sel.UserID == nil && sel.Email == nil:
		user, err = s.userRepo.GetByNickname(ctx, *sel.Nickname)
	case sel.Email != nil && sel.UserID == nil && sel.Nickname == nil:
		user, err = s.userRepo.GetByEmail(ctx, *sel.Email)
	default:
		return 0, nil, ErrSelectorRequired
	}
	if err != nil {
		return 0, nil, err
	}
	if user == nil {
		return 0, nil, ErrUserNotFound
	}

	total, err := s.feedRepo.CountByAuthor(ctx, user.Email)
	if err != nil {
		return 0, nil, err
	}
	feeds, err := s.feedRepo.ListByAuthor(ctx, user.Email, skip, limit, order)
	if err != nil {
		return 0, nil, err
	}
	details := make([]*FeedDetail, len(feeds))
	for i, f := range feeds {
		details[i] = newFeedDetail(f, user.Nickname)
	}
	return total, details, nil
}

// Update 图片调和：新列表 = (当前 − removed) ∪ 新上传，存量相对顺序保留，
// 新上传追加在尾部。removed 按集合语义减（同一 URL 的重复全部剔除）。
// removed 的对象删除放在行提交之后，失败只告警，不中断请求。
func (s *feedService) Update(ctx context.Context, id int64, actorEmail, title, content string, newImages []storage.File, removedURLs []string) (*FeedDetail, error) {
	feed, err := s.feedRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if feed == nil {
		return nil, ErrFeedNotFound
	}
	if feed.AuthorEmail != actorEmail {
		return nil, ErrPermissionDenied
	}
	author, err := s.userRepo.GetByEmail(ctx, actorEmail)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	uploaded, err := s.uploadAll(ctx, newImages)
	if err != nil {
		return nil, err
	}

	feed.Title = title
	feed.Content = content
	feed.ImageURLs = reconcileImages(feed.ImageURLs, removedURLs, uploaded)

	// 空调和也无条件落库，update_dt 照常前进
	if err := s.feedRepo.Save(ctx, feed); err != nil {
		s.deleteBlobs(ctx, uploaded)
		return nil, err
	}

	s.deleteBlobs(ctx, removedURLs)
	return newFeedDetail(feed, author.Nickname), nil
}

// Delete 评论与点赞随 feed 级联删除（同一事务）；对象删除在提交后尽力执行，
// 先删行再删对象，崩溃窗口只会留下孤儿对象，不会留下悬空引用。
func (s *feedService) Delete(ctx context.Context, id int64, actorEmail string) error {
	feed, err := s.feedRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if feed == nil {
		return ErrFeedNotFound
	}
	if feed.AuthorEmail != actorEmail {
		return ErrPermissionDenied
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 先清该 feed 下评论上的点赞
		sub := tx.Model(&model.Comment{}).Select("id").Where("feed_id = ?", id)
		if err := tx.Where("kind = ? AND target_id IN (?)", model.LikeKindComment, sub).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("kind = ? AND target_id = ?", model.LikeKindFeed, id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("feed_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Feed{}).Error
	})
	if err != nil {
		return err
	}

	s.deleteBlobs(ctx, feed.ImageURLs)
	return nil
}

// attachNicknames 批量解析作者昵称，避免逐条查询。
func (s *feedService) attachNicknames(ctx context.Context, feeds []*model.Feed) ([]*FeedDetail, error) {
	emails := make([]string, 0, len(feeds))
	seen := make(map[string]bool)
	for _, f := range feeds {
		if !seen[f.AuthorEmail] {
			seen[f.AuthorEmail] = true
			emails = append(emails, f.AuthorEmail)
		}
	}
	users, err := s.userRepo.ListByEmails(ctx, emails)
	if err != nil {
		return nil, err
	}
	nicknames := make(map[string]string, len(users))
	for _, u := range users {
		nicknames[u.Email] = u.Nickname
	}
	details := make([]*FeedDetail, len(feeds))
	for i, f := range feeds {
		details[i] = newFeedDetail(f, nicknames[f.AuthorEmail])
	}
	return details, nil
}

// reconcileImages (current − removed) ∪ uploaded，集合减法。
func reconcileImages(current, removed, uploaded []string) []string {
	drop := make(map[string]bool, len(removed))
	for _, r := range removed {
		drop[r] = true
	}
	result := make([]string, 0, len(current)+len(uploaded))
	for _, u := range current {
		if !drop[u] {
			result = append(result, u)
		}
	}
	return append(result, uploaded...)
}
