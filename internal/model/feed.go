package model

import "time"

// Feed 动态（带可选图片附件），仅作者可修改。
// image_urls 为有序列表，与对象存储中的实际对象保持一致。
type Feed struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"type:varchar(255);index;not null"`
	Content     string    `json:"content" gorm:"type:text"`
	AuthorEmail string    `json:"author_email" gorm:"type:varchar(255);index:idx_feed_author;not null"`
	ImageURLs   []string  `json:"image_urls" gorm:"serializer:json;type:text"`
	CreateDT    time.Time `json:"create_dt" gorm:"column:create_dt;autoCreateTime;index"`
	UpdateDT    time.Time `json:"update_dt" gorm:"column:update_dt;autoUpdateTime"`
}

func (Feed) TableName() string { return "feeds" }
