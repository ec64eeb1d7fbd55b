package model

import "time"

// Comment 动态下的评论，创建时必须指向存在的 feed 与作者。
type Comment struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	AuthorEmail string    `json:"author_email" gorm:"type:varchar(255);index:idx_comment_author;not null"`
	FeedID      int64     `json:"feed_id" gorm:"index:idx_comment_feed;not null"`
	CreateDT    time.Time `json:"create_dt" gorm:"column:create_dt;autoCreateTime;index"`
	UpdateDT    time.Time `json:"update_dt" gorm:"column:update_dt;autoUpdateTime"`
}

func (Comment) TableName() string { return "comments" }
