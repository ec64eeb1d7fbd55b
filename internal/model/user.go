package model

import "time"

// User 用户，email 为身份键（唯一），nickname 不要求唯一。
type User struct {
	ID       int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Email    string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password string    `json:"-" gorm:"type:varchar(255);not null"` // bcrypt hash
	Nickname string    `json:"nickname" gorm:"type:varchar(64);not null"`
	CreateDT time.Time `json:"create_dt" gorm:"column:create_dt;autoCreateTime"`
}

func (User) TableName() string { return "users" }
