package service

import (
	"context"

	"github.com/d60-Lab/feed-service/internal/model"
	"github.com/d60-Lab/feed-service/internal/repository"
)

// CommentService 评论 CRUD，挂在 feed 下
type CommentService interface {
	Create(ctx context.Context, authorEmail string, feedID int64, content string) (*CommentDetail, error)
	ListByFeed(ctx context.Context, feedID int64, skip, limit int, sortBy string) (int64, []*CommentDetail, error)
	Update(ctx context.Context, id int64, actorEmail, content string) (*CommentDetail, error)
	Delete(ctx context.Context, id int64, actorEmail string) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	feedRepo    repository.FeedRepository
	userRepo    repository.UserRepository
}

func NewCommentService(commentRepo repository.CommentRepository, feedRepo repository.FeedRepository, userRepo repository.UserRepository) CommentService {
	return &commentService{commentRepo: commentRepo, feedRepo: feedRepo, userRepo: userRepo}
}

func (s *commentService) Create(ctx context.Context, authorEmail string, feedID int64, content string) (*CommentDetail, error) {
	author, err := s.userRepo.GetByEmail(ctx, authorEmail)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	feed, err := s.feedRepo.GetByID(ctx, feedID)
	if err != nil {
		return nil, err
	}
	if feed == nil {
		return nil, ErrFeedNotFound
	}

	comment := &model.Comment{Content: content, AuthorEmail: authorEmail, FeedID: feedID}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return newCommentDetail(comment, author.Nickname), nil
}

// ListByFeed 昵称批量解析，逐条语义与单查一致。
func (s *commentService) ListByFeed(ctx context.Context, feedID int64, skip, limit int, sortBy string) (int64, []*CommentDetail, error) {
	order, err := parseCommentSort(sortBy)
	if err != nil {
		return 0, nil, err
	}

	total, err := s.commentRepo.CountByFeed(ctx, feedID)
	if err != nil {
		return 0, nil, err
	}
	comments, err := s.commentRepo.ListByFeed(ctx, feedID, skip, limit, order)
	if err != nil {
		return 0, nil, err
	}
	details, err := s.attachNicknames(ctx, comments)
	if err != nil {
		return 0, nil, err
	}
	return total, details, nil
}

func (s *commentService) Update(ctx context.Context, id int64, actorEmail, content string) (*CommentDetail, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if comment.AuthorEmail != actorEmail {
		return nil, ErrPermissionDenied
	}
	author, err := s.userRepo.GetByEmail(ctx, actorEmail)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	if content != "" {
		comment.Content = content
	}
	if err := s.commentRepo.Save(ctx, comment); err != nil {
		return nil, err
	}
	return newCommentDetail(comment, author.Nickname), nil
}

func (s *commentService) Delete(ctx context.Context, id int64, actorEmail string) error {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.AuthorEmail != actorEmail {
		return ErrPermissionDenied
	}
	return s.commentRepo.Delete(ctx, id)
}

func (s *commentService) attachNicknames(ctx context.Context, comments []*model.Comment) ([]*CommentDetail, error) {
	emails := make([]string, 0, len(comments))
	seen := make(map[string]bool)
	for _, c := range comments {
		if !seen[c.AuthorEmail] {
			seen[c.AuthorEmail] = true
			emails = append(emails, c.AuthorEmail)
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
	details := make([]*CommentDetail, len(comments))
	for i, c := range comments {
		details[i] = newCommentDetail(c, nicknames[c.AuthorEmail])
	}
	return details, nil
}
