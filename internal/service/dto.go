package service

import (
	"time"

	"github.com/d60-Lab/feed-service/internal/model"
)

// FeedDetail feed 行 + 读取时即时解析的作者昵称（昵称不冗余进 feed 行）。
type FeedDetail struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	AuthorEmail    string    `json:"author_email"`
	AuthorNickname string    `json:"author_nickname"`
	ImageURLs      []string  `json:"image_urls"`
	CreateDT       time.Time `json:"create_dt"`
	UpdateDT       time.Time `json:"update_dt"`
}

func newFeedDetail(f *model.Feed, nickname string) *FeedDetail {
	return &FeedDetail{
		ID:             f.ID,
		Title:          f.Title,
		Content:        f.Content,
		AuthorEmail:    f.AuthorEmail,
		AuthorNickname: nickname,
		ImageURLs:      f.ImageURLs,
		CreateDT:       f.CreateDT,
		UpdateDT:       f.UpdateDT,
	}
}

// CommentDetail 评论 + 作者昵称
type CommentDetail struct {
	ID             int64     `json:"id"`
	Content        string    `json:"content"`
	AuthorEmail    string    `json:"author_email"`
	AuthorNickname string    `json:"author_nickname"`
	FeedID         int64     `json:"feed_id"`
	CreateDT       time.Time `json:"create_dt"`
	UpdateDT       time.Time `json:"update_dt"`
}

func newCommentDetail(c *model.Comment, nickname string) *CommentDetail {
	return &CommentDetail{
		ID:             c.ID,
		Content:        c.Content,
		AuthorEmail:    c.AuthorEmail,
		AuthorNickname: nickname,
		FeedID:         c.FeedID,
		CreateDT:       c.CreateDT,
		UpdateDT:       c.UpdateDT,
	}
}

// UserBrief 关注列表项
type UserBrief struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}
