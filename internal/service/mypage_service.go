package service

import (
	"context"

	"github.com/d60-Lab/feed-service/internal/model"
	"github.com/d60-Lab/feed-service/internal/repository"
)

// MypageService "我的主页" 聚合：资料、我的动态/评论、粉丝/关注列表
type MypageService interface {
	Profile(ctx context.Context, email string) (*model.User, error)
	Feeds(ctx context.Context, email string, skip, limit int, sortBy string) (int64, []*FeedDetail, error)
	Comments(ctx context.Context, email string, skip, limit int, sortBy string) (int64, []*CommentDetail, error)
	Followers(ctx context.Context, userID int64, skip, limit int) (int64, []UserBrief, error)
	Followings(ctx context.Context, userID int64, skip, limit int) (int64, []UserBrief, error)
}

type mypageService struct {
	userRepo    repository.UserRepository
	feedRepo    repository.FeedRepository
	commentRepo repository.CommentRepository
	followRepo  repository.FollowRepository
}

func NewMypageService(userRepo repository.UserRepository, feedRepo repository.FeedRepository, commentRepo repository.CommentRepository, followRepo repository.FollowRepository) MypageService {
	return &mypageService{userRepo: userRepo, feedRepo: feedRepo, commentRepo: commentRepo, followRepo: followRepo}
}

func (s *mypageService) Profile(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *mypageService) Feeds(ctx context.Context, email string, skip, limit int, sortBy string) (int64, []*FeedDetail, error) {
	order, err := parseFeedSort(sortBy)
	if err != nil {
		return 0, nil, err
	}
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return 0, nil, err
	}
	if user == nil {
		return 0, nil, ErrUserNotFound
	}

	total, err := s.feedRepo.CountByAuthor(ctx, email)
	if err != nil {
		return 0, nil, err
	}
	feeds, err := s.feedRepo.ListByAuthor(ctx, email, skip, limit, order)
	if err != nil {
		return 0, nil, err
	}
	details := make([]*FeedDetail, len(feeds))
	for i, f := range feeds {
		details[i] = newFeedDetail(f, user.Nickname)
	}
	return total, details, nil
}

func (s *mypageService) Comments(ctx context.Context, email string, skip, limit int, sortBy string) (int64, []*CommentDetail, error) {
	order, err := parseCommentSort(sortBy)
	if err != nil {
		return 0, nil, err
	}
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return 0, nil, err
	}
	if user == nil {
		return 0, nil, ErrUserNotFound
	}

	total, err := s.commentRepo.CountByAuthor(ctx, email)
	if err != nil {
		return 0, nil, err
	}
	comments, err := s.commentRepo.ListByAuthor(ctx, email, skip, limit, order)
	if err != nil {
		return 0, nil, err
	}
	details := make([]*CommentDetail, len(comments))
	for i, c := range comments {
		details[i] = newCommentDetail(c, user.Nickname)
	}
	return total, details, nil
}

func (s *mypageService) Followers(ctx context.Context, userID int64, skip, limit int) (int64, []UserBrief, error) {
	total, err := s.followRepo.CountFollowers(ctx, userID)
	if err != nil {
		return 0, nil, err
	}
	users, err := s.followRepo.ListFollowers(ctx, userID, skip, limit)
	if err != nil {
		return 0, nil, err
	}
	return total, toBriefs(users), nil
}

func (s *mypageService) Followings(ctx context.Context, userID int64, skip, limit int) (int64, []UserBrief, error) {
	total, err := s.followRepo.CountFollowings(ctx, userID)
	if err != nil {
		return 0, nil, err
	}
	users, err := s.followRepo.ListFollowings(ctx, userID, skip, limit)
	if err != nil {
		return 0, nil, err
	}
	return total, toBriefs(users), nil
}

func toBriefs(users []*model.User) []UserBrief {
	res := make([]UserBrief, len(users))
	for i, u := range users {
		res[i] = UserBrief{ID: u.ID, Email: u.Email, Nickname: u.Nickname}
	}
	return res
}
