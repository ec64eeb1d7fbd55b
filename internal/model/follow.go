package model

import "time"

// Follow 关注关系（follower 关注 following）
// 复合唯一键，避免重复关注
// idx_follow_pair = (follower_id, following_id)
type Follow struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	FollowerID  int64     `json:"follower_id" gorm:"index:idx_follow_follower;index:idx_follow_pair,unique;not null"`
	FollowingID int64     `json:"following_id" gorm:"index:idx_follow_following;index:idx_follow_pair,unique;not null"`
	CreateDT    time.Time `json:"create_dt" gorm:"column:create_dt;autoCreateTime"`
}

func (Follow) TableName() string { return "follows" }
