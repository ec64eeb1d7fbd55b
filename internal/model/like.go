package model

import "time"

// LikeKind 点赞目标类型
type LikeKind string

const (
	LikeKindFeed    LikeKind = "feed"
	LikeKindComment LikeKind = "comment"
)

// Like 点赞，(user_email, kind, target_id) 为自然键。
// 复合唯一键保证并发重复 toggle 不会落下第二行。
// ux_like_user_target = (user_email, kind, target_id)
type Like struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserEmail string    `json:"user_email" gorm:"type:varchar(255);uniqueIndex:ux_like_user_target;not null"`
	Kind      LikeKind  `json:"kind" gorm:"type:varchar(16);uniqueIndex:ux_like_user_target;not null"`
	TargetID  int64     `json:"target_id" gorm:"uniqueIndex:ux_like_user_target;index:idx_like_target;not null"`
	CreateDT  time.Time `json:"create_dt" gorm:"column:create_dt;autoCreateTime"`
}

func (Like) TableName() string { return "likes" }
