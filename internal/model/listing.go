package model

import "time"

type ListingStatus string

const (
	ListingStatusAvailable ListingStatus = "Available"
	ListingStatusSold      ListingStatus = "Sold"
)

type Listing struct {
	ID            uint64        `gorm:"primaryKey;autoIncrement"`
	SellerID      uint64        `gorm:"column:seller_id;index;not null"`
	Seller        User          `gorm:"foreignKey:SellerID"`
	Title         string        `gorm:"size:120;not null"`
	Description   string        `gorm:"type:text"`
	Price         int64         `gorm:"not null"`
	ItemCondition string        `gorm:"column:item_condition;size:32;not null;default:Good"`
	Status        ListingStatus `gorm:"size:16;not null;default:Available"`
	CreatedAt     time.Time     `gorm:"autoCreateTime"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime"`
}

func (Listing) TableName() string {
	return "listings"
}
