package model

import "time"

// Transaction is an append-only record of a completed purchase. Rows are
// inserted inside the same database transaction that marks the listing Sold
// and are never updated or deleted afterwards.
type Transaction struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	ListingID     uint64    `gorm:"column:listing_id;index;not null"`
	Listing       Listing   `gorm:"foreignKey:ListingID"`
	BuyerID       uint64    `gorm:"column:buyer_id;index;not null"`
	Buyer         User      `gorm:"foreignKey:BuyerID"`
	SellerID      uint64    `gorm:"column:seller_id;index;not null"`
	Seller        User      `gorm:"foreignKey:SellerID"`
	Amount        int64     `gorm:"not null"`
	PaymentMethod string    `gorm:"column:payment_method;size:32;not null;default:UPI"`
	Reference     string    `gorm:"size:36;uniqueIndex;not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (Transaction) TableName() string {
	return "transactions"
}
