package model

import "time"

type Feedback struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	FromUserID uint64    `gorm:"column:from_user_id;index;not null"`
	FromUser   User      `gorm:"foreignKey:FromUserID"`
	ToUserID   uint64    `gorm:"column:to_user_id;index;not null"`
	ToUser     User      `gorm:"foreignKey:ToUserID"`
	ListingID  *uint64   `gorm:"column:listing_id;index"`
	Listing    *Listing  `gorm:"foreignKey:ListingID"`
	Rating     int       `gorm:"not null"`
	Comments   string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Feedback) TableName() string {
	return "feedback"
}
